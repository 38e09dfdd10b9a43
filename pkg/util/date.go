package util

import "time"

// StartOfDayUTC truncates t to midnight UTC. Daily usage windows reset on this boundary.
func StartOfDayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
