package grid

import (
	"errors"
	"time"
)

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrUnknownAction    = errors.New("unknown slot action")
)

// Config holds the geometry and gesture tuning of a Calendar.
type Config struct {
	Mapper          Mapper
	DragStep        int
	ResizeStep      int
	ResizeThreshold int
	// PreviewOffset keeps the floating drag card off the touch point.
	PreviewOffset Point
	// AreaLeft is the page x of the scroll area's left edge.
	AreaLeft float64
	Viewport Size
	MenuSize Size
}

func DefaultConfig() Config {
	return Config{
		Mapper:          DefaultMapper(),
		DragStep:        DefaultDragStep,
		ResizeStep:      DefaultResizeStep,
		ResizeThreshold: DefaultResizeThreshold,
		PreviewOffset:   Point{X: 12, Y: 12},
		MenuSize:        Size{Width: 200, Height: 132},
	}
}

// Calendar is the state container of one day view. It is owned by a single
// driver and is not safe for concurrent use.
type Calendar struct {
	cfg       Config
	drag      DragController
	resize    ResizeController
	pointer   PointerSource
	clock     *Clock
	callbacks Callbacks

	day       time.Time
	events    []Event
	resources []Resource

	gesture gesture
	menu    *Menu

	bodyScroll    float64
	header        ScrollPane
	scroll        ScrollSync
	releaseHeader func()
}

// New builds an empty calendar. A nil pointer source gets a private PointerBus;
// a nil clock disables the "now" line and past/ongoing flags.
func New(cfg Config, pointer PointerSource, clock *Clock, callbacks Callbacks) (*Calendar, error) {
	if err := cfg.Mapper.Validate(); err != nil {
		return nil, err
	}

	if pointer == nil {
		pointer = NewPointerBus()
	}

	cal := &Calendar{
		cfg:       cfg,
		drag:      DragController{Mapper: cfg.Mapper, Step: cfg.DragStep},
		resize:    ResizeController{Mapper: cfg.Mapper, Step: cfg.ResizeStep, Threshold: cfg.ResizeThreshold},
		pointer:   pointer,
		clock:     clock,
		callbacks: callbacks,
	}
	cal.releaseHeader = cal.scroll.Bind(&cal.header)

	return cal, nil
}

// Load replaces the snapshot. Resources keep their order; repeated ids after
// the first are dropped.
func (c *Calendar) Load(day time.Time, events []Event, resources []Resource) {
	c.day = StartOfDay(day)
	c.events = append([]Event(nil), events...)

	seen := make(map[string]struct{}, len(resources))
	c.resources = c.resources[:0]

	for _, resource := range resources {
		if _, ok := seen[resource.ID]; ok {
			continue
		}

		seen[resource.ID] = struct{}{}
		c.resources = append(c.resources, resource)
	}
}

func (c *Calendar) Day() time.Time {
	return c.day
}

func (c *Calendar) Mode() Mode {
	return c.gesture.mode
}

func (c *Calendar) Mapper() Mapper {
	return c.cfg.Mapper
}

// PressEvent starts dragging the event body under the pointer.
func (c *Calendar) PressEvent(eventID string, at Point) error {
	return c.begin(ModeDragging, eventID, at)
}

// PressHandle starts resizing from the event's bottom handle.
func (c *Calendar) PressHandle(eventID string, at Point) error {
	return c.begin(ModeResizing, eventID, at)
}

func (c *Calendar) begin(mode Mode, eventID string, at Point) error {
	if c.gesture.active() {
		return ErrGestureActive
	}

	event, ok := c.findEvent(eventID)
	if !ok {
		return ErrEventNotFound
	}

	box, ok := c.placement(event)
	if !ok {
		return ErrNotRendered
	}

	c.menu = nil
	c.gesture = gesture{
		mode:    mode,
		event:   event,
		box:     box,
		origin:  at,
		current: at,
	}
	c.gesture.unsubscribe = c.pointer.Subscribe(c.PointerMove, c.PointerUp)

	return nil
}

// PointerMove tracks the live pointer of the active gesture.
func (c *Calendar) PointerMove(at Point) {
	if !c.gesture.active() {
		return
	}

	c.gesture.current = at
}

// PointerUp finishes the active gesture. Transient state is gone before any
// callback runs.
func (c *Calendar) PointerUp(at Point) {
	if !c.gesture.active() {
		return
	}

	c.gesture.current = at
	finished := c.gesture
	c.gesture.release()

	_, dy := finished.delta()

	switch finished.mode {
	case ModeDragging:
		if len(c.resources) == 0 {
			return
		}

		column := c.cfg.Mapper.ColumnAt(at.X, c.cfg.AreaLeft, c.bodyScroll, len(c.resources))

		drop, ok := c.drag.Resolve(finished.event, c.day, dy, c.resources[column].ID)
		if ok && c.callbacks.OnEventDrop != nil {
			c.callbacks.OnEventDrop(drop)
		}
	case ModeResizing:
		resize, ok := c.resize.Resolve(finished.event, c.day, dy)
		if ok && c.callbacks.OnEventResize != nil {
			c.callbacks.OnEventResize(resize)
		}
	}
}

// Cancel abandons the active gesture without emitting anything.
func (c *Calendar) Cancel() {
	c.gesture.release()
}

// ClickEvent reports a tap on an event block.
func (c *Calendar) ClickEvent(eventID string) error {
	if c.gesture.active() {
		return ErrGestureActive
	}

	event, ok := c.findEvent(eventID)
	if !ok {
		return ErrEventNotFound
	}

	if c.callbacks.OnEventClick != nil {
		c.callbacks.OnEventClick(event)
	}

	return nil
}

// ClickCell handles a tap on the half-hour cell of resourceID. It reports
// whether the click opened the menu or emitted a slot click. Unavailable
// cells and clicks during a gesture do nothing.
func (c *Calendar) ClickCell(resourceID string, hour, half int, at Point) (bool, error) {
	if c.gesture.active() {
		return false, nil
	}

	resource, ok := c.findResource(resourceID)
	if !ok {
		return false, ErrResourceNotFound
	}

	if !c.cfg.Mapper.InRange(hour) || half < 0 || half > 1 {
		return false, nil
	}

	if !IsWorkingHour(resource, DayName(c.day), hour) {
		return false, nil
	}

	slot := SlotAt(c.day, resourceID, hour, half)

	switch {
	case c.callbacks.OnSlotAction != nil:
		menu := openMenu(slot, at, c.cfg.Viewport, c.cfg.MenuSize)
		c.menu = &menu
	case c.callbacks.OnSlotClick != nil:
		c.callbacks.OnSlotClick(slot)
	default:
		return false, nil
	}

	return true, nil
}

// Menu returns the open slot menu.
func (c *Calendar) Menu() (Menu, bool) {
	if c.menu == nil {
		return Menu{}, false
	}

	return *c.menu, true
}

// ChooseAction emits the picked menu entry once and closes the menu.
func (c *Calendar) ChooseAction(action SlotActionType) error {
	if c.menu == nil {
		return ErrMenuClosed
	}

	if !action.Valid() {
		return ErrUnknownAction
	}

	slot := c.menu.Slot
	c.menu = nil

	if c.callbacks.OnSlotAction != nil {
		c.callbacks.OnSlotAction(SlotAction{Type: action, Slot: slot})
	}

	return nil
}

// DismissMenu closes the menu, as a click outside it does.
func (c *Calendar) DismissMenu() {
	c.menu = nil
}

// Scroll handles a horizontal scroll of the grid body.
func (c *Calendar) Scroll(left float64) {
	c.bodyScroll = left
	c.scroll.OnBodyScroll(left)
}

// Close releases every listener the calendar holds.
func (c *Calendar) Close() {
	c.gesture.release()
	c.menu = nil

	if c.releaseHeader != nil {
		c.releaseHeader()
		c.releaseHeader = nil
	}
}

func (c *Calendar) findEvent(id string) (Event, bool) {
	for _, event := range c.events {
		if event.ID == id {
			return event, true
		}
	}

	return Event{}, false
}

func (c *Calendar) findResource(id string) (Resource, bool) {
	if index := c.columnOf(id); index >= 0 {
		return c.resources[index], true
	}

	return Resource{}, false
}

func (c *Calendar) columnOf(resourceID string) int {
	if resourceID == "" {
		return -1
	}

	for i, resource := range c.resources {
		if resource.ID == resourceID {
			return i
		}
	}

	return -1
}

// placement returns where event is drawn, if it is drawn at all.
func (c *Calendar) placement(event Event) (Box, bool) {
	if !SameDay(event.Start, c.day) {
		return Box{}, false
	}

	column := c.columnOf(event.ResourceID)
	if column < 0 {
		return Box{}, false
	}

	box, ok := c.cfg.Mapper.Layout(event)
	if !ok {
		return Box{}, false
	}

	box.Left = c.cfg.Mapper.ColumnLeft(column)

	return box, true
}
