package grid

import "time"

const DefaultDragStep = 15

// DragController resolves a finished drag into a drop intent.
type DragController struct {
	Mapper Mapper
	Step   int
}

func (d DragController) step() int {
	if d.Step <= 0 {
		return DefaultDragStep
	}

	return d.Step
}

// Resolve moves event by the vertical displacement dy, snapped to the drag
// step, into targetResourceID. It returns false when the drag should snap
// back: nothing moved by at least one step, or the block would leave the
// visible hours of day.
func (d DragController) Resolve(event Event, day time.Time, dy float64, targetResourceID string) (EventDrop, bool) {
	step := d.step()
	snapped := Snap(d.Mapper.MinutesForDelta(dy), step)
	moved := snapped >= step || snapped <= -step

	if !moved && targetResourceID == event.ResourceID {
		return EventDrop{}, false
	}

	startMinute := minuteOfDay(day, event.Start) + snapped
	endMinute := minuteOfDay(day, event.End) + snapped

	if startMinute < d.Mapper.DayStart*minutesPerHour || endMinute > d.Mapper.DayEnd*minutesPerHour {
		return EventDrop{}, false
	}

	shift := time.Duration(snapped) * time.Minute

	return EventDrop{
		Event:         event,
		NewStart:      event.Start.Add(shift),
		NewEnd:        event.End.Add(shift),
		NewResourceID: targetResourceID,
	}, true
}
