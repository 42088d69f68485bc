package billing

import "time"

// Clock supplies "today" so date math stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production clock, already day-normalized.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return Day(time.Now()) }

// Day strips the time-of-day so day-difference math is exact.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole days from a to b; negative when b is before a.
func daysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)) / (24 * time.Hour))
}
