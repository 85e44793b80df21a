package model

import (
	"calgrid/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID       = "id"
	FieldSalonID  = "salon_id"
	FieldMasterID = "master_id"
	FieldStartAt  = "start_at"
	FieldEndAt    = "end_at"
	FieldStatus   = "status"
)

const (
	StatusNew       = "new"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusBlocked   = "blocked"
)

// Booking is one appointment or blocked interval. StartAt and EndAt are salon
// wall-clock times stored without a zone.
type Booking struct {
	ID          string    `db:"id"           json:"id"`
	SalonID     string    `db:"salon_id"     json:"salon_id"`
	MasterID    *string   `db:"master_id"    json:"master_id,omitempty"`
	Title       string    `db:"title"        json:"title"`
	ClientName  string    `db:"client_name"  json:"client_name"`
	ClientPhone string    `db:"client_phone" json:"client_phone"`
	ServiceName string    `db:"service_name" json:"service_name"`
	Status      string    `db:"status"       json:"status"`
	Color       string    `db:"color"        json:"color"`
	StartAt     time.Time `db:"start_at"     json:"start_at"`
	EndAt       time.Time `db:"end_at"       json:"end_at"`
	model.Metadata
}

func (b Booking) Master() string {
	if b.MasterID == nil {
		return ""
	}

	return *b.MasterID
}

// Slot is the set of columns a committed gesture rewrites. A zero field is left untouched.
type Slot struct {
	StartAt  time.Time `db:"start_at"`
	EndAt    time.Time `db:"end_at"`
	MasterID string    `db:"master_id"`
}
