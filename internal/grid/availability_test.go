package grid_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"calgrid/internal/grid"
)

func TestIsWorkingHour(t *testing.T) {
	mondayOnly := grid.Resource{
		ID: "a",
		WorkingHours: grid.WorkingHours{
			"monday": {Enabled: true, Start: "09:00", End: "18:00"},
		},
	}

	tests := []struct {
		name     string
		resource grid.Resource
		day      string
		hour     int
		want     bool
	}{
		{name: "inside hours", resource: mondayOnly, day: "monday", hour: 10, want: true},
		{name: "start is inclusive", resource: mondayOnly, day: "monday", hour: 9, want: true},
		{name: "end is exclusive", resource: mondayOnly, day: "monday", hour: 18, want: false},
		{name: "before start", resource: mondayOnly, day: "monday", hour: 8, want: false},
		{name: "missing day", resource: mondayOnly, day: "tuesday", hour: 10, want: false},
		{name: "no schedule is always open", resource: grid.Resource{ID: "b"}, day: "sunday", hour: 3, want: true},
		{
			name: "disabled day",
			resource: grid.Resource{WorkingHours: grid.WorkingHours{
				"monday": {Enabled: false, Start: "09:00", End: "18:00"},
			}},
			day: "monday", hour: 10, want: false,
		},
		{
			name:     "empty schedule map closes every day",
			resource: grid.Resource{WorkingHours: grid.WorkingHours{}},
			day:      "monday", hour: 10, want: false,
		},
		{
			name: "missing start",
			resource: grid.Resource{WorkingHours: grid.WorkingHours{
				"monday": {Enabled: true, End: "18:00"},
			}},
			day: "monday", hour: 10, want: false,
		},
		{
			name: "malformed end",
			resource: grid.Resource{WorkingHours: grid.WorkingHours{
				"monday": {Enabled: true, Start: "09:00", End: "six"},
			}},
			day: "monday", hour: 10, want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, grid.IsWorkingHour(tt.resource, tt.day, tt.hour))
		})
	}
}

// Only the hour part of the boundaries counts: "09:30" opens the 09 row and
// "17:45" closes the 17 row.
func TestIsWorkingHour_IgnoresBoundaryMinutes(t *testing.T) {
	resource := grid.Resource{WorkingHours: grid.WorkingHours{
		"friday": {Enabled: true, Start: "09:30", End: "17:45"},
	}}

	assert.True(t, grid.IsWorkingHour(resource, "friday", 9))
	assert.True(t, grid.IsWorkingHour(resource, "friday", 16))
	assert.False(t, grid.IsWorkingHour(resource, "friday", 17))
}

func TestIsWorkingHour_MalformedBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{name: "single digit hour", start: "9:00", end: "18:00", want: true},
		{name: "end of day", start: "09:00", end: "24:00", want: true},
		{name: "surrounding spaces", start: " 09:00 ", end: "18:00", want: true},
		{name: "letters as minutes", start: "09:xx", end: "18:00"},
		{name: "minutes past 59", start: "9:99", end: "18:00"},
		{name: "single digit minutes", start: "09:0", end: "18:00"},
		{name: "three digit minutes", start: "09:000", end: "18:00"},
		{name: "signed minutes", start: "09:+5", end: "18:00"},
		{name: "no minutes", start: "09", end: "18:00"},
		{name: "empty minutes", start: "09:", end: "18:00"},
		{name: "signed hour", start: "+9:00", end: "18:00"},
		{name: "hour past 24", start: "09:00", end: "25:00"},
		{name: "past end of day", start: "09:00", end: "24:30"},
		{name: "seconds", start: "09:00:00", end: "18:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resource := grid.Resource{WorkingHours: grid.WorkingHours{
				"monday": {Enabled: true, Start: tt.start, End: tt.end},
			}}

			assert.Equal(t, tt.want, grid.IsWorkingHour(resource, "monday", 12))
		})
	}
}

func TestIsWorkingHour_NoScheduleCoversWholeGrid(t *testing.T) {
	mapper := grid.DefaultMapper()

	for hour := mapper.DayStart; hour < mapper.DayEnd; hour++ {
		assert.True(t, grid.IsWorkingHour(grid.Resource{}, "monday", hour))
	}
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "monday", grid.DayName(time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "sunday", grid.DayName(time.Date(2024, time.March, 17, 23, 59, 0, 0, time.UTC)))
}
