package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"calgrid/internal/grid"
)

func TestResizeController_Resolve(t *testing.T) {
	resize := grid.ResizeController{
		Mapper:    grid.DefaultMapper(),
		Step:      grid.DefaultResizeStep,
		Threshold: grid.DefaultResizeThreshold,
	}
	event := grid.Event{ID: "e1", ResourceID: "a", Start: at(10, 0), End: at(10, 30)}

	tests := []struct {
		name    string
		event   grid.Event
		dy      float64
		wantEnd grid.EventResize
		wantOK  bool
	}{
		{
			name:  "new end 10:10 is under the minimum duration",
			event: event,
			dy:    px(-20),
		},
		{
			name:    "new end 10:20 snaps to 10:15",
			event:   event,
			dy:      px(-10),
			wantEnd: grid.EventResize{Event: event, NewEnd: at(10, 15)},
			wantOK:  true,
		},
		{
			name:  "new end exactly at the minimum",
			event: event,
			dy:    px(-15),
		},
		{
			name:  "under the displacement threshold",
			event: event,
			dy:    px(4),
		},
		{
			name:    "extend by 20 minutes snaps to 10:45",
			event:   event,
			dy:      px(20),
			wantEnd: grid.EventResize{Event: event, NewEnd: at(10, 45)},
			wantOK:  true,
		},
		{
			name:    "crossing the hour",
			event:   event,
			dy:      px(38),
			wantEnd: grid.EventResize{Event: event, NewEnd: at(11, 15)},
			wantOK:  true,
		},
		{
			name:  "past day end",
			event: grid.Event{ID: "e2", Start: at(20, 0), End: at(20, 30)},
			dy:    px(45),
		},
		{
			name:    "up to day end",
			event:   grid.Event{ID: "e2", Start: at(20, 0), End: at(20, 30)},
			dy:      px(28),
			wantEnd: grid.EventResize{Event: grid.Event{ID: "e2", Start: at(20, 0), End: at(20, 30)}, NewEnd: at(21, 0)},
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resize.Resolve(tt.event, monday, tt.dy)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantEnd, got)

			if ok {
				assert.Equal(t, tt.event.Start, got.Event.Start)
			}
		})
	}
}

func TestResizeController_PreviewHeight(t *testing.T) {
	resize := grid.ResizeController{Mapper: grid.DefaultMapper()}
	box := grid.Box{Top: 160, Height: 80}

	assert.Equal(t, 120.0, resize.PreviewHeight(box, 40))
	assert.Equal(t, resize.Mapper.MinBlockHeight(), resize.PreviewHeight(box, -200))
}
