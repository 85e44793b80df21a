package grid

import "sync"

// Scrollable is a horizontally scrollable pane.
type Scrollable interface {
	ScrollLeft() float64
	SetScrollLeft(left float64)
}

// ScrollPane is a Scrollable that only remembers its offset.
type ScrollPane struct {
	left float64
}

func (p *ScrollPane) ScrollLeft() float64 {
	return p.left
}

func (p *ScrollPane) SetScrollLeft(left float64) {
	p.left = left
}

// ScrollSync mirrors the body's horizontal offset into the header.
// The header never drives the body.
type ScrollSync struct {
	mu     sync.Mutex
	header Scrollable
}

// Bind attaches the header. The returned function detaches it.
func (s *ScrollSync) Bind(header Scrollable) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.header = header

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.header == header {
			s.header = nil
		}
	}
}

// OnBodyScroll handles a scroll event of the body.
func (s *ScrollSync) OnBodyScroll(left float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.header != nil {
		s.header.SetScrollLeft(left)
	}
}
