package service

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ExportIntakeCSV writes every intake event as (logged_at, amount_ml) rows,
// header included, ordered by logged_at ascending. Pure serialization of
// the event log.
func ExportIntakeCSV(db *sql.DB, w io.Writer) error {
	rows, err := db.Query(`
SELECT logged_at, amount_ml
FROM intake_events
ORDER BY logged_at ASC, id ASC
`)
	if err != nil {
		return fmt.Errorf("query intake events for export: %w", err)
	}
	defer rows.Close()

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"logged_at", "amount_ml"}); err != nil {
		return fmt.Errorf("write export csv header: %w", err)
	}
	for rows.Next() {
		var loggedAt string
		var amount int
		if err := rows.Scan(&loggedAt, &amount); err != nil {
			return fmt.Errorf("scan intake event for export: %w", err)
		}
		if err := cw.Write([]string{loggedAt, strconv.Itoa(amount)}); err != nil {
			return fmt.Errorf("write export csv row: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate intake events for export: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush export csv: %w", err)
	}
	return nil
}
