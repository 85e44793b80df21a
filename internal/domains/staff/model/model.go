package model

import (
	"calgrid/internal/grid"
	"calgrid/shared/model"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	TableName  = "masters"
	EntityName = "master"

	FieldID        = "id"
	FieldSalonID   = "salon_id"
	FieldActive    = "active"
	FieldSortOrder = "sort_order"
	FieldName      = "name"
)

var errScheduleType = errors.New("unsupported schedule column type")

// Schedule is the weekly working-hours JSONB column keyed by lowercase weekday.
type Schedule grid.WorkingHours

// Scan implements sql.Scanner. NULL leaves the schedule nil, meaning always available.
func (s *Schedule) Scan(src any) error {
	var raw []byte

	switch value := src.(type) {
	case nil:
		*s = nil

		return nil
	case []byte:
		raw = value
	case string:
		raw = []byte(value)
	default:
		return fmt.Errorf("%w: %T", errScheduleType, src)
	}

	if err := json.Unmarshal(raw, s); err != nil {
		return fmt.Errorf("failed to decode schedule: %w", err)
	}

	return nil
}

// Value implements driver.Valuer.
func (s Schedule) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode schedule: %w", err)
	}

	return raw, nil
}

// Master is a staff member rendered as one calendar column.
type Master struct {
	ID        string   `db:"id"         json:"id"`
	SalonID   string   `db:"salon_id"   json:"salon_id"`
	Name      string   `db:"name"       json:"name"`
	Color     string   `db:"color"      json:"color"`
	AvatarKey string   `db:"avatar_key" json:"avatar_key"`
	Schedule  Schedule `db:"schedule"   json:"schedule"`
	SortOrder int      `db:"sort_order" json:"sort_order"`
	Active    bool     `db:"active"     json:"active"`
	model.Metadata
}

func (m Master) WorkingHours() grid.WorkingHours {
	return grid.WorkingHours(m.Schedule)
}
