package analytics

import "time"

const secondsPerDay = 86400

// AccountAgeYears returns the calendar-year difference between now and the
// account creation time. Month and day are ignored on purpose: an account
// created in December reads as one year old the following January, matching
// how the dashboard has always displayed it.
func AccountAgeYears(createdAt, now time.Time) int {
	return now.Year() - createdAt.Year()
}

// WithinWindow reports whether ts falls strictly inside the last `days` days
// relative to now. A record exactly `days`*86400 seconds old is excluded.
func WithinWindow(ts, now time.Time, days int) bool {
	cutoff := now.Add(-time.Duration(days) * secondsPerDay * time.Second)
	return ts.After(cutoff)
}
