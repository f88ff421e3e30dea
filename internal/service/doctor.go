package service

import (
	"database/sql"
	"fmt"
	"time"
)

type DoctorReport struct {
	MalformedTimestamps int
	NonPositiveAmounts  int
	DuplicateBadgeNames int
}

// RunDoctor scans for rows that violate the store's invariants. The schema
// CHECK and UNIQUE constraints make these unreachable through the engine,
// so any hit points at external edits to the database file.
func RunDoctor(db *sql.DB) (DoctorReport, error) {
	var report DoctorReport

	for _, q := range []struct {
		table  string
		column string
	}{
		{"intake_events", "logged_at"},
		{"profiles", "created_at"},
		{"badges", "earned_at"},
	} {
		rows, err := db.Query(fmt.Sprintf(`SELECT %s FROM %s`, q.column, q.table))
		if err != nil {
			return report, fmt.Errorf("scan %s timestamps: %w", q.table, err)
		}
		for rows.Next() {
			var raw string
			if err := rows.Scan(&raw); err != nil {
				rows.Close()
				return report, fmt.Errorf("scan %s.%s: %w", q.table, q.column, err)
			}
			if _, err := time.Parse(time.RFC3339, raw); err != nil {
				report.MalformedTimestamps++
			}
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return report, fmt.Errorf("iterate %s timestamps: %w", q.table, err)
		}
		rows.Close()
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM intake_events WHERE amount_ml <= 0`).Scan(&report.NonPositiveAmounts); err != nil {
		return report, fmt.Errorf("count non-positive amounts: %w", err)
	}

	if err := db.QueryRow(`
SELECT IFNULL(SUM(cnt - 1), 0)
FROM (SELECT COUNT(*) AS cnt FROM badges GROUP BY name)
WHERE cnt > 1
`).Scan(&report.DuplicateBadgeNames); err != nil {
		return report, fmt.Errorf("count duplicate badge names: %w", err)
	}

	return report, nil
}

func (r DoctorReport) Clean() bool {
	return r.MalformedTimestamps == 0 && r.NonPositiveAmounts == 0 && r.DuplicateBadgeNames == 0
}
