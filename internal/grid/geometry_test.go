package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"calgrid/internal/grid"
)

// px converts minutes into the vertical displacement of the default mapper.
func px(minutes float64) float64 {
	return minutes * grid.DefaultHourHeight / 60
}

func TestMapper_TimeToY(t *testing.T) {
	mapper := grid.DefaultMapper()

	assert.Equal(t, 0.0, mapper.TimeToY(8, 0))
	assert.Equal(t, 40.0, mapper.TimeToY(8, 30))
	assert.Equal(t, 160.0, mapper.TimeToY(10, 0))
	assert.Equal(t, -80.0, mapper.TimeToY(7, 0))
	assert.Equal(t, mapper.GridHeight(), mapper.TimeToY(21, 0))
}

func TestMapper_RoundTrip(t *testing.T) {
	mapper := grid.DefaultMapper()

	for hour := mapper.DayStart; hour < mapper.DayEnd; hour++ {
		for minute := range 60 {
			gotHour, gotMinute := mapper.YToTime(mapper.TimeToY(hour, minute))

			assert.Equal(t, hour, gotHour)
			assert.Equal(t, minute, gotMinute)
		}
	}
}

func TestMapper_YToTimeBeforeMidnight(t *testing.T) {
	mapper := grid.Mapper{DayStart: 0, DayEnd: 24, HourHeight: 60, ColumnWidth: 100}

	hour, minute := mapper.YToTime(-30)

	assert.Equal(t, -1, hour)
	assert.Equal(t, 30, minute)
}

func TestMapper_MinutesForDelta(t *testing.T) {
	mapper := grid.DefaultMapper()
	mapper.HourHeight = 60

	tests := []struct {
		name string
		dy   float64
		want int
	}{
		{name: "zero", dy: 0, want: 0},
		{name: "whole minutes", dy: 22, want: 22},
		{name: "upwards", dy: -45, want: -45},
		{name: "rounds half up", dy: 7.5, want: 8},
		{name: "negative half rounds up", dy: -7.5, want: -7},
		{name: "below half", dy: 0.4, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapper.MinutesForDelta(tt.dy))
		})
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		minutes int
		step    int
		want    int
	}{
		{minutes: 22, step: 15, want: 15},
		{minutes: 7, step: 15, want: 0},
		{minutes: 8, step: 15, want: 15},
		{minutes: -7, step: 15, want: 0},
		{minutes: -8, step: 15, want: -15},
		{minutes: 45, step: 15, want: 45},
		{minutes: 13, step: 5, want: 15},
		{minutes: 13, step: 0, want: 13},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, grid.Snap(tt.minutes, tt.step), "Snap(%d, %d)", tt.minutes, tt.step)
	}
}

func TestMapper_MinutesForDeltaDefaultHeight(t *testing.T) {
	mapper := grid.DefaultMapper()

	assert.Equal(t, 22, mapper.MinutesForDelta(px(22)))
	assert.Equal(t, -45, mapper.MinutesForDelta(px(-45)))
}

func TestMapper_ColumnAt(t *testing.T) {
	mapper := grid.DefaultMapper()

	tests := []struct {
		name       string
		pointerX   float64
		areaLeft   float64
		scrollLeft float64
		count      int
		want       int
	}{
		{name: "first column", pointerX: 100, count: 3, want: 0},
		{name: "second column", pointerX: 200, count: 3, want: 1},
		{name: "area offset", pointerX: 300, areaLeft: 100, count: 3, want: 1},
		{name: "scrolled", pointerX: 100, scrollLeft: 240, count: 3, want: 2},
		{name: "over time column clamps to first", pointerX: 10, count: 3, want: 0},
		{name: "past last column clamps", pointerX: 5000, count: 3, want: 2},
		{name: "no resources", pointerX: 500, count: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapper.ColumnAt(tt.pointerX, tt.areaLeft, tt.scrollLeft, tt.count))
		})
	}
}

func TestMapper_Validate(t *testing.T) {
	assert.NoError(t, grid.DefaultMapper().Validate())

	mapper := grid.DefaultMapper()
	mapper.DayEnd = mapper.DayStart
	assert.ErrorIs(t, mapper.Validate(), grid.ErrInvalidDayRange)

	mapper = grid.DefaultMapper()
	mapper.HourHeight = 0
	assert.ErrorIs(t, mapper.Validate(), grid.ErrInvalidHourHeight)

	mapper = grid.DefaultMapper()
	mapper.ColumnWidth = -1
	assert.ErrorIs(t, mapper.Validate(), grid.ErrInvalidColumn)
}
