package grid

import (
	"fmt"
	"time"
)

// Board is everything a renderer needs to draw the day.
type Board struct {
	Date             time.Time
	Mode             Mode
	GridHeight       float64
	TimeColumnWidth  float64
	ColumnWidth      float64
	TimeLabels       []TimeLabel
	Columns          []Column
	Now              Indicator
	Preview          *Preview
	Menu             *Menu
	HeaderScrollLeft float64
	Week             []WeekDay
}

type TimeLabel struct {
	Hour  int
	Label string
	Top   float64
}

type Column struct {
	Resource Resource
	Colors   Colors
	Left     float64
	Cells    []Cell
	Blocks   []Block
}

// Cell is a half-hour row of a column.
type Cell struct {
	Hour      int
	Half      int
	Top       float64
	Available bool
	Slot      Slot
}

type Block struct {
	Event   Event
	Box     Box
	Colors  Colors
	Hidden  bool
	Past    bool
	Ongoing bool
	Blocked bool
}

// Preview is the floating card of an active gesture. During a drag it follows
// the pointer; during a resize it is the block with its live height.
type Preview struct {
	Mode           Mode
	Event          Event
	Box            Box
	Colors         Colors
	TargetResource string
}

// Board derives the render state from the snapshot and the transient state.
func (c *Calendar) Board() Board {
	mapper := c.cfg.Mapper

	board := Board{
		Date:             c.day,
		Mode:             c.gesture.mode,
		GridHeight:       mapper.GridHeight(),
		TimeColumnWidth:  mapper.TimeColumnWidth,
		ColumnWidth:      mapper.ColumnWidth,
		TimeLabels:       timeLabels(mapper),
		Columns:          make([]Column, len(c.resources)),
		HeaderScrollLeft: c.header.ScrollLeft(),
	}

	today := ""
	if c.clock != nil {
		board.Now = c.clock.Indicator(c.day, mapper)
		today = c.clock.Reading().Date
	}

	board.Week = Week(c.day, today)

	dayName := DayName(c.day)

	for i, resource := range c.resources {
		column := Column{
			Resource: resource,
			Colors:   Variants(resource.Color, DefaultResourceColor),
			Left:     mapper.ColumnLeft(i),
			Cells:    make([]Cell, 0, mapper.HalfHours()),
		}

		for hour := mapper.DayStart; hour < mapper.DayEnd; hour++ {
			available := IsWorkingHour(resource, dayName, hour)

			for half := range 2 {
				column.Cells = append(column.Cells, Cell{
					Hour:      hour,
					Half:      half,
					Top:       mapper.TimeToY(hour, half*halfHour),
					Available: available,
					Slot:      SlotAt(c.day, resource.ID, hour, half),
				})
			}
		}

		board.Columns[i] = column
	}

	for _, event := range c.events {
		box, ok := c.placement(event)
		if !ok {
			continue
		}

		block := Block{
			Event:   event,
			Box:     box,
			Colors:  Variants(event.BackgroundColor, DefaultEventColor),
			Blocked: event.Blocked(),
			Hidden:  c.gesture.mode == ModeDragging && c.gesture.event.ID == event.ID,
		}

		if c.clock != nil && c.clock.IsToday(c.day) {
			block.Past, block.Ongoing = c.clock.Timing(event)
		}

		index := c.columnOf(event.ResourceID)
		board.Columns[index].Blocks = append(board.Columns[index].Blocks, block)
	}

	board.Preview = c.preview()

	if c.menu != nil {
		menu := *c.menu
		board.Menu = &menu
	}

	return board
}

func (c *Calendar) preview() *Preview {
	if !c.gesture.active() {
		return nil
	}

	g := c.gesture
	_, dy := g.delta()
	preview := &Preview{
		Mode:           g.mode,
		Event:          g.event,
		Box:            g.box,
		Colors:         Variants(g.event.BackgroundColor, DefaultEventColor),
		TargetResource: g.event.ResourceID,
	}

	switch g.mode {
	case ModeDragging:
		preview.Box.Left = g.current.X + c.cfg.PreviewOffset.X
		preview.Box.Top = g.current.Y + c.cfg.PreviewOffset.Y

		if len(c.resources) > 0 {
			column := c.cfg.Mapper.ColumnAt(g.current.X, c.cfg.AreaLeft, c.bodyScroll, len(c.resources))
			preview.TargetResource = c.resources[column].ID
		}

	case ModeResizing:
		preview.Box.Height = c.resize.PreviewHeight(g.box, dy)
	}

	return preview
}

func timeLabels(mapper Mapper) []TimeLabel {
	labels := make([]TimeLabel, 0, mapper.DayEnd-mapper.DayStart)

	for hour := mapper.DayStart; hour < mapper.DayEnd; hour++ {
		labels = append(labels, TimeLabel{
			Hour:  hour,
			Label: fmt.Sprintf(clockLabel, hour, 0),
			Top:   mapper.TimeToY(hour, 0),
		})
	}

	return labels
}
