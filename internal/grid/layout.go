package grid

import "time"

// MinVisualDuration is the shortest duration an event block is drawn with.
const MinVisualDuration = 30 * time.Minute

// Box is the geometry of a block inside the scroll area.
type Box struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Layout places an event vertically. It returns false when the event starts
// outside the visible hours. Concurrent events in one column overlap.
func (m Mapper) Layout(event Event) (Box, bool) {
	if !m.InRange(event.Start.Hour()) {
		return Box{}, false
	}

	duration := max(event.Duration(), MinVisualDuration)

	return Box{
		Top:    m.TimeToY(event.Start.Hour(), event.Start.Minute()),
		Width:  m.ColumnWidth,
		Height: duration.Minutes() * m.pixelsPerMinute(),
	}, true
}

// MinBlockHeight is the pixel height of MinVisualDuration.
func (m Mapper) MinBlockHeight() float64 {
	return MinVisualDuration.Minutes() * m.pixelsPerMinute()
}
