package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"calgrid/internal/grid"
)

func TestDragController_Resolve(t *testing.T) {
	drag := grid.DragController{Mapper: grid.DefaultMapper(), Step: grid.DefaultDragStep}
	event := grid.Event{ID: "e1", ResourceID: "a", Start: at(10, 0), End: at(10, 30)}

	tests := []struct {
		name   string
		event  grid.Event
		dy     float64
		target string
		want   grid.EventDrop
		wantOK bool
	}{
		{
			name:   "22 minutes snaps to 15",
			event:  event,
			dy:     px(22),
			target: "a",
			want:   grid.EventDrop{Event: event, NewStart: at(10, 15), NewEnd: at(10, 45), NewResourceID: "a"},
			wantOK: true,
		},
		{
			name:   "7 minutes snaps to zero and is discarded",
			event:  event,
			dy:     px(7),
			target: "a",
		},
		{
			name:   "resource change without time change",
			event:  event,
			dy:     px(5),
			target: "b",
			want:   grid.EventDrop{Event: event, NewStart: at(10, 0), NewEnd: at(10, 30), NewResourceID: "b"},
			wantOK: true,
		},
		{
			name:   "upwards",
			event:  event,
			dy:     px(-60),
			target: "a",
			want:   grid.EventDrop{Event: event, NewStart: at(9, 0), NewEnd: at(9, 30), NewResourceID: "a"},
			wantOK: true,
		},
		{
			name:   "end past day end",
			event:  grid.Event{ID: "e2", ResourceID: "a", Start: at(20, 0), End: at(20, 45)},
			dy:     px(30),
			target: "a",
		},
		{
			name:   "end exactly at day end",
			event:  grid.Event{ID: "e2", ResourceID: "a", Start: at(20, 0), End: at(20, 30)},
			dy:     px(30),
			target: "a",
			want: grid.EventDrop{
				Event:         grid.Event{ID: "e2", ResourceID: "a", Start: at(20, 0), End: at(20, 30)},
				NewStart:      at(20, 30),
				NewEnd:        at(21, 0),
				NewResourceID: "a",
			},
			wantOK: true,
		},
		{
			name:   "start before day start",
			event:  grid.Event{ID: "e3", ResourceID: "a", Start: at(8, 15), End: at(9, 0)},
			dy:     px(-30),
			target: "b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := drag.Resolve(tt.event, monday, tt.dy, tt.target)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDragController_PreservesDuration(t *testing.T) {
	drag := grid.DragController{Mapper: grid.DefaultMapper()}
	event := grid.Event{ID: "e1", ResourceID: "a", Start: at(11, 10), End: at(12, 25)}

	got, ok := drag.Resolve(event, monday, px(50), "a")

	assert.True(t, ok)
	assert.Equal(t, event.Duration(), got.NewEnd.Sub(got.NewStart))
	assert.Equal(t, at(11, 55), got.NewStart)
}

func TestDragController_CoarserStep(t *testing.T) {
	drag := grid.DragController{Mapper: grid.DefaultMapper(), Step: 30}
	event := grid.Event{ID: "e1", ResourceID: "a", Start: at(10, 0), End: at(10, 30)}

	_, ok := drag.Resolve(event, monday, px(14), "a")
	assert.False(t, ok)

	got, ok := drag.Resolve(event, monday, px(16), "a")
	assert.True(t, ok)
	assert.Equal(t, at(10, 30), got.NewStart)
}
