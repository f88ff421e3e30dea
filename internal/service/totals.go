package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jashithrathod04-star/waterbuddy/internal/model"
)

// DailyTotals returns one entry per UTC calendar day for the nDays days
// ending on now's day inclusive, oldest first. Days without events carry a
// zero total. Totals are always recomputed from the event log.
func DailyTotals(db *sql.DB, nDays int, now time.Time) ([]model.DailyTotal, error) {
	if nDays < 1 {
		return nil, fmt.Errorf("day window must be >= 1, got %d", nDays)
	}
	end := beginningOfDayUTC(now).AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -nDays)

	rows, err := db.Query(`
SELECT substr(logged_at, 1, 10) AS day, SUM(amount_ml)
FROM intake_events
WHERE logged_at >= ? AND logged_at < ?
GROUP BY day
ORDER BY day ASC
`, start.Format(time.RFC3339), end.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("query daily totals: %w", err)
	}
	defer rows.Close()

	byDay := make(map[string]int, nDays)
	for rows.Next() {
		var day string
		var total int
		if err := rows.Scan(&day, &total); err != nil {
			return nil, fmt.Errorf("scan daily total: %w", err)
		}
		byDay[day] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily totals: %w", err)
	}

	totals := make([]model.DailyTotal, 0, nDays)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		key := dayKey(d)
		totals = append(totals, model.DailyTotal{Date: key, TotalML: byDay[key]})
	}
	return totals, nil
}

// TodayTotal is the last element of DailyTotals(1).
func TodayTotal(db *sql.DB, now time.Time) (int, error) {
	totals, err := DailyTotals(db, 1, now)
	if err != nil {
		return 0, err
	}
	return totals[len(totals)-1].TotalML, nil
}
