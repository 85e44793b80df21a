package grid

import (
	"context"
	"fmt"
	"sync"
	"time"

	// Embedded zone database so salon zones resolve on minimal images.
	_ "time/tzdata"

	"github.com/rs/zerolog/log"
)

const (
	DefaultTimezone = "Europe/Kyiv"
	DateLayout      = "2006-01-02"
	clockLabel      = "%02d:%02d"
)

// Reading is the wall-clock time of the clock zone at the last refresh.
type Reading struct {
	Date    string
	Hours   int
	Minutes int
}

func (r Reading) Label() string {
	return fmt.Sprintf(clockLabel, r.Hours, r.Minutes)
}

// Indicator is the horizontal "now" line across the grid.
type Indicator struct {
	Visible bool
	Top     float64
	Label   string
}

// Clock keeps the current time of an IANA zone, refreshed once per minute
// while started.
type Clock struct {
	mu       sync.RWMutex
	zone     string
	location *time.Location
	now      func() time.Time
	interval time.Duration
	reading  Reading
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewClock creates a stopped clock. A nil now uses time.Now.
func NewClock(zone string, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}

	clock := &Clock{
		now:      now,
		interval: time.Minute,
	}
	clock.zone, clock.location = LoadLocation(zone)
	clock.refresh()

	return clock
}

// LoadLocation resolves zone, falling back to UTC on unknown names.
func LoadLocation(zone string) (string, *time.Location) {
	if zone == "" {
		zone = DefaultTimezone
	}

	location, err := time.LoadLocation(zone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", zone).Msg("unknown timezone, falling back to UTC")

		return time.UTC.String(), time.UTC
	}

	return zone, location
}

// Start refreshes immediately and then on every tick until ctx ends or Stop is called.
func (c *Clock) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.startLocked(ctx)
}

func (c *Clock) startLocked(ctx context.Context) {
	c.stopLocked()
	c.refreshLocked()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done

	go func() {
		defer close(done)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.refresh()
			}
		}
	}()
}

// Stop cancels the ticker and waits for it to exit.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()
}

func (c *Clock) stopLocked() {
	if c.cancel == nil {
		return
	}

	c.cancel()
	done := c.done
	c.cancel = nil
	c.done = nil

	c.mu.Unlock()
	<-done
	c.mu.Lock()
}

// Running reports whether the ticker goroutine is alive.
func (c *Clock) Running() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.cancel != nil
}

// SetTimezone switches zone. A running clock is restarted so the old ticker never outlives the change.
func (c *Clock) SetTimezone(ctx context.Context, zone string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	running := c.cancel != nil
	c.stopLocked()

	c.zone, c.location = LoadLocation(zone)

	if running {
		c.startLocked(ctx)

		return
	}

	c.refreshLocked()
}

func (c *Clock) Zone() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.zone
}

func (c *Clock) Location() *time.Location {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.location
}

func (c *Clock) Reading() Reading {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.reading
}

func (c *Clock) refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.refreshLocked()
}

func (c *Clock) refreshLocked() {
	now := c.now().In(c.location)

	c.reading = Reading{
		Date:    now.Format(DateLayout),
		Hours:   now.Hour(),
		Minutes: now.Minute(),
	}
}

// IsToday reports whether the wall date of day is today in the clock zone.
// day is a floating wall date: its year, month and day are compared as they are,
// in whatever location day carries, and never converted into the clock zone.
func (c *Clock) IsToday(day time.Time) bool {
	return DateKey(day) == c.Reading().Date
}

// Indicator positions the "now" line for the viewed day. day is a floating wall
// date, read the same way as in IsToday.
func (c *Clock) Indicator(day time.Time, mapper Mapper) Indicator {
	reading := c.Reading()

	if DateKey(day) != reading.Date || !mapper.InRange(reading.Hours) {
		return Indicator{}
	}

	return Indicator{
		Visible: true,
		Top:     mapper.TimeToY(reading.Hours, reading.Minutes),
		Label:   reading.Label(),
	}
}

// Timing classifies event against the clock reading. Wall times are compared
// as they are, events carry no zone of their own.
func (c *Clock) Timing(event Event) (past, ongoing bool) {
	reading := c.Reading()

	today, err := time.Parse(DateLayout, reading.Date)
	if err != nil {
		return false, false
	}

	now := reading.Hours*minutesPerHour + reading.Minutes
	start := minuteOfDay(today, event.Start)
	end := minuteOfDay(today, event.End)

	return end <= now, start <= now && now < end
}

// DateKey formats the wall date of t in its own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}
