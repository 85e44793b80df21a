package timezone

import (
	"calgrid/shared/constant"
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog/log"
)

var (
	mu          sync.RWMutex
	appLocation *time.Location
	locations   sync.Map
)

// Init sets the application location. An empty or unknown zone falls back to UTC.
func Init(zone string) {
	if zone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		zone = "UTC"
	}

	loc, err := Load(zone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", zone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")

		loc = time.UTC
	}

	mu.Lock()
	appLocation = loc
	mu.Unlock()

	log.Info().
		Str("timezone", zone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Load resolves an IANA zone name, caching successful lookups.
func Load(zone string) (*time.Location, error) {
	if cached, ok := locations.Load(zone); ok {
		return cached.(*time.Location), nil //nolint:forcetypeassert
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %q: %w", zone, err)
	}

	locations.Store(zone, loc)

	return loc, nil
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	mu.RLock()
	defer mu.RUnlock()

	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// ParseDate parses a YYYY-MM-DD calendar day as a floating UTC midnight.
func ParseDate(value string) (time.Time, error) {
	day, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return day, nil
}

// Floating strips the zone from t, keeping its wall clock reading.
func Floating(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
