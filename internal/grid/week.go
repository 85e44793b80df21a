package grid

import "time"

const daysPerWeek = 7

// WeekDay is one entry of the week strip above the grid.
type WeekDay struct {
	Date       time.Time
	Name       string
	IsToday    bool
	IsSelected bool
	IsWeekend  bool
}

// Week returns the Monday-first week containing selected. today is a date key
// as produced by DateKey, usually Clock.Reading().Date.
func Week(selected time.Time, today string) []WeekDay {
	offset := (int(selected.Weekday()) + 6) % daysPerWeek
	y, m, d := selected.Date()

	days := make([]WeekDay, daysPerWeek)
	for i := range days {
		date := time.Date(y, m, d-offset+i, 0, 0, 0, 0, selected.Location())
		weekday := date.Weekday()

		days[i] = WeekDay{
			Date:       date,
			Name:       DayName(date),
			IsToday:    DateKey(date) == today,
			IsSelected: SameDay(date, selected),
			IsWeekend:  weekday == time.Saturday || weekday == time.Sunday,
		}
	}

	return days
}
