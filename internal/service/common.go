package service

import "time"

// All day bucketing uses UTC calendar days. Events are stored as RFC3339
// UTC, so a day is [00:00:00Z, 24:00:00Z) and lexicographic comparison on
// logged_at matches chronological order.

func beginningOfDayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
