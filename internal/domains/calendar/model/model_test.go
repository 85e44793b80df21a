package model_test

import (
	bookingModel "calgrid/internal/domains/booking/model"
	"calgrid/internal/domains/calendar/model"
	salonModel "calgrid/internal/domains/salon/model"
	staffModel "calgrid/internal/domains/staff/model"
	"calgrid/internal/grid"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

func snapshot() model.Snapshot {
	return model.Snapshot{
		Salon: salonModel.Salon{ID: "s1", Timezone: "Europe/Kyiv"},
		Masters: []staffModel.Master{
			{ID: "m1", Name: "Anna", Color: "#ff0000", Schedule: staffModel.Schedule{"monday": {Enabled: true, Start: "09:00", End: "18:00"}}},
			{ID: "m2", Name: "Olha"},
		},
		Bookings: []bookingModel.Booking{
			{
				ID:          "b1",
				MasterID:    ptr("m1"),
				ServiceName: "Haircut",
				ClientName:  "Ivan",
				Status:      bookingModel.StatusNew,
				Color:       "#00ff00",
				StartAt:     time.Date(2024, 3, 11, 10, 0, 0, 0, time.FixedZone("", 0)),
				EndAt:       time.Date(2024, 3, 11, 11, 0, 0, 0, time.FixedZone("", 0)),
			},
			{ID: "b2", Title: "Lunch", Status: bookingModel.StatusBlocked},
		},
	}
}

func TestSnapshot_Resources(t *testing.T) {
	resources := snapshot().Resources(map[string]string{"m1": "https://img/anna.png"})

	require.Len(t, resources, 2)
	assert.Equal(t, grid.Resource{
		ID:           "m1",
		Title:        "Anna",
		Color:        "#ff0000",
		Avatar:       "https://img/anna.png",
		WorkingHours: grid.WorkingHours{"monday": {Enabled: true, Start: "09:00", End: "18:00"}},
	}, resources[0])
	assert.Empty(t, resources[1].Avatar)
	assert.Nil(t, resources[1].WorkingHours)
}

func TestSnapshot_Events(t *testing.T) {
	events := snapshot().Events()

	require.Len(t, events, 2)

	first := events[0]
	assert.Equal(t, "Haircut", first.Title)
	assert.Equal(t, "Anna", first.MasterName)
	assert.Equal(t, "m1", first.ResourceID)
	assert.Equal(t, time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC), first.Start)
	assert.Equal(t, time.UTC, first.End.Location())

	second := events[1]
	assert.Equal(t, "Lunch", second.Title)
	assert.Empty(t, second.ResourceID)
	assert.Empty(t, second.MasterName)
	assert.True(t, second.Blocked())
}
