package service

import (
	"context"
	"sync"
	"time"

	"calgrid/infras/metrics"
	"calgrid/internal/grid"

	"github.com/rs/zerolog/log"
)

// ClockRegistry shares one running clock per timezone across requests.
type ClockRegistry struct {
	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	now     func() time.Time
	clocks  map[string]*grid.Clock
	metrics *metrics.Metrics
}

// NewClockRegistry creates an empty registry. A nil now uses time.Now.
func NewClockRegistry(m *metrics.Metrics, now func() time.Time) *ClockRegistry {
	ctx, cancel := context.WithCancel(context.Background())

	return &ClockRegistry{
		ctx:     ctx,
		cancel:  cancel,
		now:     now,
		clocks:  map[string]*grid.Clock{},
		metrics: m,
	}
}

// Get returns the started clock of zone. Unknown zones share the UTC clock.
func (r *ClockRegistry) Get(zone string) *grid.Clock {
	zone, _ = grid.LoadLocation(zone)

	r.mu.Lock()
	defer r.mu.Unlock()

	if clock, ok := r.clocks[zone]; ok {
		return clock
	}

	clock := grid.NewClock(zone, r.now)
	if r.ctx.Err() == nil {
		clock.Start(r.ctx)
	}

	r.clocks[zone] = clock

	if r.metrics != nil {
		r.metrics.SetClocks(len(r.clocks))
	}

	log.Debug().Str("timezone", zone).Msg("clock started")

	return clock
}

func (r *ClockRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.clocks)
}

// Close stops every clock. Clocks handed out afterwards are never started.
func (r *ClockRegistry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cancel()

	for zone, clock := range r.clocks {
		clock.Stop()
		delete(r.clocks, zone)
	}

	if r.metrics != nil {
		r.metrics.SetClocks(0)
	}
}
