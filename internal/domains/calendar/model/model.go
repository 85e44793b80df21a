package model

import (
	bookingModel "calgrid/internal/domains/booking/model"
	salonModel "calgrid/internal/domains/salon/model"
	staffModel "calgrid/internal/domains/staff/model"
	"calgrid/internal/grid"
	"calgrid/shared/timezone"
	"time"
)

const (
	IntentEventDrop   = "event-drop"
	IntentEventResize = "event-resize"
	IntentSlotClick   = "slot-click"
	IntentSlotAction  = "slot-action"
)

// Snapshot is everything one salon day view is built from. It is cached as JSON.
type Snapshot struct {
	Salon    salonModel.Salon       `json:"salon"`
	Masters  []staffModel.Master    `json:"masters"`
	Bookings []bookingModel.Booking `json:"bookings"`
}

// Resources maps masters to grid columns. avatars holds resolved avatar URLs by master id.
func (s Snapshot) Resources(avatars map[string]string) []grid.Resource {
	resources := make([]grid.Resource, 0, len(s.Masters))

	for _, master := range s.Masters {
		resources = append(resources, grid.Resource{
			ID:           master.ID,
			Title:        master.Name,
			Color:        master.Color,
			Avatar:       avatars[master.ID],
			WorkingHours: master.WorkingHours(),
		})
	}

	return resources
}

// Events maps bookings to grid events, naming the master of each.
func (s Snapshot) Events() []grid.Event {
	names := make(map[string]string, len(s.Masters))
	for _, master := range s.Masters {
		names[master.ID] = master.Name
	}

	events := make([]grid.Event, 0, len(s.Bookings))

	for _, booking := range s.Bookings {
		title := booking.Title
		if title == "" {
			title = booking.ServiceName
		}

		events = append(events, grid.Event{
			ID:              booking.ID,
			Title:           title,
			ClientName:      booking.ClientName,
			ClientPhone:     booking.ClientPhone,
			ServiceName:     booking.ServiceName,
			MasterName:      names[booking.Master()],
			Status:          booking.Status,
			Start:           timezone.Floating(booking.StartAt),
			End:             timezone.Floating(booking.EndAt),
			ResourceID:      booking.Master(),
			BackgroundColor: booking.Color,
		})
	}

	return events
}

// Intent is a change proposed by the calendar, published for downstream consumers.
type Intent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Action     string    `json:"action,omitempty"`
	SalonID    string    `json:"salon_id"`
	EventID    string    `json:"event_id,omitempty"`
	ResourceID string    `json:"resource_id,omitempty"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Actor      string    `json:"actor,omitempty"`
	EmittedAt  time.Time `json:"emitted_at"`
}

// BookingChanged is consumed from the booking system. Empty Dates means every cached day of the salon.
type BookingChanged struct {
	SalonID string   `json:"salon_id"`
	Dates   []string `json:"dates"`
}
