package grid

import (
	"errors"
	"math"
	"time"
)

const (
	DefaultDayStart        = 8
	DefaultDayEnd          = 21
	DefaultHourHeight      = 80
	DefaultColumnWidth     = 120
	DefaultTimeColumnWidth = 60

	minutesPerHour = 60
	halfHour       = 30
)

var (
	ErrInvalidDayRange   = errors.New("day end must be after day start within 0..24")
	ErrInvalidHourHeight = errors.New("hour height must be positive")
	ErrInvalidColumn     = errors.New("column width must be positive")
)

// Mapper converts between wall-clock time and grid pixels.
// DayStart is inclusive, DayEnd exclusive.
type Mapper struct {
	DayStart        int
	DayEnd          int
	HourHeight      float64
	ColumnWidth     float64
	TimeColumnWidth float64
}

func DefaultMapper() Mapper {
	return Mapper{
		DayStart:        DefaultDayStart,
		DayEnd:          DefaultDayEnd,
		HourHeight:      DefaultHourHeight,
		ColumnWidth:     DefaultColumnWidth,
		TimeColumnWidth: DefaultTimeColumnWidth,
	}
}

func (m Mapper) Validate() error {
	if m.DayStart < 0 || m.DayEnd > 24 || m.DayEnd <= m.DayStart {
		return ErrInvalidDayRange
	}

	if m.HourHeight <= 0 {
		return ErrInvalidHourHeight
	}

	if m.ColumnWidth <= 0 {
		return ErrInvalidColumn
	}

	return nil
}

func (m Mapper) pixelsPerMinute() float64 {
	return m.HourHeight / minutesPerHour
}

// TimeToY returns the vertical offset of hour:minute from the top of the grid.
// Values outside the visible range give offsets outside [0, GridHeight].
func (m Mapper) TimeToY(hour, minute int) float64 {
	return float64((hour-m.DayStart)*minutesPerHour+minute) / minutesPerHour * m.HourHeight
}

// YToTime is the inverse of TimeToY, rounded to the whole minute.
func (m Mapper) YToTime(y float64) (hour, minute int) {
	total := int(roundHalfUp(y/m.pixelsPerMinute())) + m.DayStart*minutesPerHour

	hour = floorDiv(total, minutesPerHour)
	minute = total - hour*minutesPerHour

	return hour, minute
}

// MinutesForDelta converts a vertical pointer displacement into whole minutes.
func (m Mapper) MinutesForDelta(dy float64) int {
	return int(roundHalfUp(dy / m.pixelsPerMinute()))
}

// ColumnAt returns the resource column under pointerX. The result is clamped
// to [0, count-1] and is 0 when there are no columns.
func (m Mapper) ColumnAt(pointerX, areaLeft, scrollLeft float64, count int) int {
	if count <= 0 {
		return 0
	}

	index := int(math.Floor((pointerX - areaLeft + scrollLeft - m.TimeColumnWidth) / m.ColumnWidth))

	return max(0, min(index, count-1))
}

// ColumnLeft returns the x offset of a column inside the scroll area.
func (m Mapper) ColumnLeft(index int) float64 {
	return m.TimeColumnWidth + float64(index)*m.ColumnWidth
}

// InRange reports whether hour is a visible row.
func (m Mapper) InRange(hour int) bool {
	return hour >= m.DayStart && hour < m.DayEnd
}

func (m Mapper) GridHeight() float64 {
	return float64(m.DayEnd-m.DayStart) * m.HourHeight
}

// HalfHours returns the number of half-hour rows.
func (m Mapper) HalfHours() int {
	return (m.DayEnd - m.DayStart) * 2
}

// Snap rounds minutes to the nearest multiple of step. Ties round up.
func Snap(minutes, step int) int {
	if step <= 0 {
		return minutes
	}

	return int(roundHalfUp(float64(minutes)/float64(step))) * step
}

// SameDay reports whether a and b share a calendar date in their own locations.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// StartOfDay returns midnight of t's date in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// minuteOfDay returns the wall-clock minutes from midnight of day to t.
// Times on later dates continue past 1440.
func minuteOfDay(day, t time.Time) int {
	dy, dm, dd := day.Date()
	ty, tm, td := t.Date()

	days := int(time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC).Sub(time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)).Hours() / 24)

	return days*24*minutesPerHour + t.Hour()*minutesPerHour + t.Minute()
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
