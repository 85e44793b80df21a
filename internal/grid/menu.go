package grid

import (
	"errors"
	"time"
)

var ErrMenuClosed = errors.New("slot menu is not open")

// Menu is the open slot action menu.
type Menu struct {
	Slot    Slot
	Anchor  Point
	Actions []SlotActionType
}

// SlotAt returns the half-hour cell of resourceID at hour and half (0 or 1) on day.
func SlotAt(day time.Time, resourceID string, hour, half int) Slot {
	y, m, d := day.Date()
	start := time.Date(y, m, d, hour, half*halfHour, 0, 0, day.Location())

	return Slot{
		Start:      start,
		End:        start.Add(halfHour * time.Minute),
		ResourceID: resourceID,
	}
}

// openMenu anchors the menu at the pointer, kept inside the viewport when one is known.
func openMenu(slot Slot, at Point, viewport, size Size) Menu {
	anchor := at

	if viewport.Width > 0 {
		anchor.X = max(0, min(anchor.X, viewport.Width-size.Width))
	}

	if viewport.Height > 0 {
		anchor.Y = max(0, min(anchor.Y, viewport.Height-size.Height))
	}

	actions := make([]SlotActionType, len(SlotActions))
	copy(actions, SlotActions)

	return Menu{
		Slot:    slot,
		Anchor:  anchor,
		Actions: actions,
	}
}
