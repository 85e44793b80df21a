package model

import (
	"calgrid/shared/model"
)

const (
	TableName  = "salons"
	EntityName = "salon"

	FieldID       = "id"
	FieldTimezone = "timezone"
)

// Salon is the tenant a calendar belongs to. Timezone drives the live clock.
type Salon struct {
	ID       string `db:"id"       json:"id"`
	Name     string `db:"name"     json:"name"`
	Timezone string `db:"timezone" json:"timezone"`
	model.Metadata
}
