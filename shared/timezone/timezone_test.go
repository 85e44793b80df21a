package timezone_test

import (
	"calgrid/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	timezone.Init("Asia/Jakarta")
	assert.Equal(t, "Asia/Jakarta", timezone.GetLocation().String())
	assert.Equal(t, "Asia/Jakarta", timezone.Now().Location().String())

	timezone.Init("Mars/Olympus")
	assert.Equal(t, time.UTC, timezone.GetLocation())

	timezone.Init("")
	assert.Equal(t, time.UTC, timezone.GetLocation())
}

func TestLoad(t *testing.T) {
	loc, err := timezone.Load("Europe/Kyiv")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Kyiv", loc.String())

	again, err := timezone.Load("Europe/Kyiv")
	require.NoError(t, err)
	assert.Same(t, loc, again)

	_, err = timezone.Load("Not/AZone")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	day, err := timezone.ParseDate("2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), day)

	_, err = timezone.ParseDate("11/03/2024")
	assert.Error(t, err)

	_, err = timezone.ParseDate("2024-02-30")
	assert.Error(t, err)
}

func TestFloating(t *testing.T) {
	loc, err := timezone.Load("Europe/Kyiv")
	require.NoError(t, err)

	got := timezone.Floating(time.Date(2024, 3, 11, 9, 30, 0, 0, loc))
	assert.Equal(t, time.Date(2024, 3, 11, 9, 30, 0, 0, time.UTC), got)
}

func TestFormatAndParse(t *testing.T) {
	timezone.Init("UTC")

	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01 12:00", timezone.Format(testTime, "2006-01-02 15:04"))

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
}
