package grid

import "time"

const (
	DefaultResizeStep      = 15
	DefaultResizeThreshold = 5
	MinEventDuration       = 15 * time.Minute
)

// ResizeController resolves a finished bottom-edge drag into a resize intent.
type ResizeController struct {
	Mapper    Mapper
	Step      int
	Threshold int
}

// Resolve extends or shortens event by dy. Displacements under the threshold
// are ignored. The unsnapped end must stay more than MinEventDuration after
// the start; the minute part of the end is then snapped to the step. Ends past
// the last visible hour are rejected.
func (r ResizeController) Resolve(event Event, day time.Time, dy float64) (EventResize, bool) {
	step := r.Step
	if step <= 0 {
		step = DefaultResizeStep
	}

	threshold := r.Threshold
	if threshold <= 0 {
		threshold = DefaultResizeThreshold
	}

	total := r.Mapper.MinutesForDelta(dy)
	if total < threshold && total > -threshold {
		return EventResize{}, false
	}

	startMinute := minuteOfDay(day, event.Start)
	endMinute := minuteOfDay(day, event.End) + total

	if endMinute <= startMinute+int(MinEventDuration.Minutes()) {
		return EventResize{}, false
	}

	hour := floorDiv(endMinute, minutesPerHour)
	snapped := hour*minutesPerHour + Snap(endMinute-hour*minutesPerHour, step)

	if snapped > r.Mapper.DayEnd*minutesPerHour {
		return EventResize{}, false
	}

	shift := time.Duration(snapped-minuteOfDay(day, event.End)) * time.Minute

	return EventResize{
		Event:  event,
		NewEnd: event.End.Add(shift),
	}, true
}

// PreviewHeight is the live block height while the handle is dragged by dy.
func (r ResizeController) PreviewHeight(box Box, dy float64) float64 {
	return max(box.Height+dy, r.Mapper.MinBlockHeight())
}
