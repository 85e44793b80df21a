package grid_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calgrid/internal/grid"
)

func TestWeek(t *testing.T) {
	wednesday := time.Date(2024, time.March, 13, 15, 0, 0, 0, time.UTC)

	days := grid.Week(wednesday, "2024-03-12")

	require.Len(t, days, 7)
	assert.Equal(t, "monday", days[0].Name)
	assert.Equal(t, "2024-03-11", grid.DateKey(days[0].Date))
	assert.Equal(t, "2024-03-17", grid.DateKey(days[6].Date))
	assert.True(t, days[1].IsToday)
	assert.True(t, days[2].IsSelected)
	assert.False(t, days[4].IsWeekend)
	assert.True(t, days[5].IsWeekend)
	assert.True(t, days[6].IsWeekend)
}

func TestWeek_SundayBelongsToPreviousMonday(t *testing.T) {
	sunday := time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC)

	days := grid.Week(sunday, "")

	assert.Equal(t, "2024-03-11", grid.DateKey(days[0].Date))
	assert.True(t, days[6].IsSelected)
}
