// Package grid is the interaction core of the day scheduling calendar.
//
// It maps wall-clock times to pixel offsets, masks cells outside a resource's
// working hours, lays out event blocks, runs the drag and resize gestures,
// drives the slot menu and the live "now" indicator. It performs no IO: the
// caller supplies events and resources as read-only snapshots and receives
// proposed changes through Callbacks.
package grid

import "time"

const (
	StatusBlocked = "blocked"
)

// Event is a booking block displayed in a resource column.
// Start and End are wall-clock times of the viewed day.
type Event struct {
	ID              string
	Title           string
	ClientName      string
	ClientPhone     string
	ServiceName     string
	MasterName      string
	Status          string
	Start           time.Time
	End             time.Time
	ResourceID      string
	BackgroundColor string
}

// Duration returns End-Start.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Blocked reports whether the event reserves time instead of serving a client.
func (e Event) Blocked() bool {
	return e.Status == StatusBlocked
}

// WorkingDay is a single weekday entry of a resource schedule. Start and End are "HH:MM".
type WorkingDay struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// WorkingHours maps lowercase English weekday names to schedules.
type WorkingHours map[string]WorkingDay

// Resource is a schedulable column, a staff member in practice.
type Resource struct {
	ID           string
	Title        string
	Color        string
	Avatar       string
	WorkingHours WorkingHours
}

// Slot is a half-hour cell of a resource column.
type Slot struct {
	Start      time.Time
	End        time.Time
	ResourceID string
}

type SlotActionType string

const (
	SlotActionBooking      SlotActionType = "booking"
	SlotActionGroupBooking SlotActionType = "group-booking"
	SlotActionBlockTime    SlotActionType = "block-time"
)

// SlotActions lists the menu entries in display order.
var SlotActions = []SlotActionType{
	SlotActionBooking,
	SlotActionGroupBooking,
	SlotActionBlockTime,
}

// Valid reports whether t is one of SlotActions.
func (t SlotActionType) Valid() bool {
	for _, action := range SlotActions {
		if action == t {
			return true
		}
	}

	return false
}

type SlotAction struct {
	Type SlotActionType
	Slot
}

// EventDrop is the proposed outcome of a drag. Duration is preserved.
type EventDrop struct {
	Event         Event
	NewStart      time.Time
	NewEnd        time.Time
	NewResourceID string
}

// EventResize is the proposed outcome of a resize. Start never changes.
type EventResize struct {
	Event  Event
	NewEnd time.Time
}

// Callbacks is the whole write surface of the core. Nil callbacks are skipped.
// When OnSlotAction is set, clicking a free cell opens the slot menu instead of
// calling OnSlotClick.
type Callbacks struct {
	OnEventClick  func(Event)
	OnSlotClick   func(Slot)
	OnSlotAction  func(SlotAction)
	OnEventDrop   func(EventDrop)
	OnEventResize func(EventResize)
}

// Point is a pointer position in page coordinates.
type Point struct {
	X float64
	Y float64
}

type Size struct {
	Width  float64
	Height float64
}
