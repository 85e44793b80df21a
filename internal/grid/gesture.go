package grid

import (
	"errors"
	"sync"
)

var (
	ErrGestureActive = errors.New("another gesture is in progress")
	ErrEventNotFound = errors.New("event not found")
	ErrNotRendered   = errors.New("event is not on the grid")
)

// Mode is the gesture the calendar is in. Drag and resize are exclusive.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizing
)

func (m Mode) String() string {
	switch m {
	case ModeDragging:
		return "dragging"
	case ModeResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// PointerSource delivers global pointer move and release notifications.
// Subscribe returns the function that removes both listeners.
type PointerSource interface {
	Subscribe(onMove, onUp func(Point)) (unsubscribe func())
}

// gesture is the transient state of an active drag or resize.
type gesture struct {
	mode        Mode
	event       Event
	box         Box
	origin      Point
	current     Point
	unsubscribe func()
}

func (g *gesture) active() bool {
	return g.mode != ModeIdle
}

func (g *gesture) delta() (dx, dy float64) {
	return g.current.X - g.origin.X, g.current.Y - g.origin.Y
}

// release drops the listeners and returns to idle.
func (g *gesture) release() {
	if g.unsubscribe != nil {
		g.unsubscribe()
	}

	*g = gesture{}
}

type listener struct {
	onMove func(Point)
	onUp   func(Point)
}

// PointerBus is an in-process PointerSource. Drivers feed it pointer
// positions and it fans them out to the current subscribers.
type PointerBus struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]listener
}

func NewPointerBus() *PointerBus {
	return &PointerBus{listeners: map[int]listener{}}
}

func (b *PointerBus) Subscribe(onMove, onUp func(Point)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners[id] = listener{onMove: onMove, onUp: onUp}

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		delete(b.listeners, id)
	}
}

func (b *PointerBus) Move(p Point) {
	for _, l := range b.snapshot() {
		if l.onMove != nil {
			l.onMove(p)
		}
	}
}

func (b *PointerBus) Up(p Point) {
	for _, l := range b.snapshot() {
		if l.onUp != nil {
			l.onUp(p)
		}
	}
}

// Listeners returns the number of live subscriptions.
func (b *PointerBus) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.listeners)
}

func (b *PointerBus) snapshot() []listener {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]listener, 0, len(b.listeners))
	for _, l := range b.listeners {
		out = append(out, l)
	}

	return out
}
