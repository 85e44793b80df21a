// Package timezone provides timezone utilities for the application.
//
// Two clocks live here. The application location (APP_TIMEZONE, set once
// through Init) stamps audit columns such as modified_at. Calendar days are
// different: bookings are stored as floating wall-clock timestamps, so a day
// is parsed with ParseDate into a UTC midnight that carries no zone meaning.
//
// Usage:
//
//	timezone.Init("Asia/Jakarta")
//	now := timezone.Now()
//	day, err := timezone.ParseDate("2024-03-11")
//	loc, err := timezone.Load("Europe/Kyiv")
package timezone
