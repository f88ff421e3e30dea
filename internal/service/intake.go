package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jashithrathod04-star/waterbuddy/internal/model"
)

// QuickLogML is the volume logged from a reminder prompt.
const QuickLogML = 250

// LogIntake appends an intake event and synchronously runs the badge
// evaluator. Validation happens before the write; an invalid amount never
// touches the store.
func LogIntake(db *sql.DB, amountML int, at time.Time) (int64, error) {
	if amountML <= 0 {
		return 0, fmt.Errorf("%w: amount must be > 0 ml, got %d", ErrInvalidAmount, amountML)
	}
	if at.IsZero() {
		at = time.Now()
	}
	at = at.UTC()

	res, err := db.Exec(`
INSERT INTO intake_events(logged_at, amount_ml)
VALUES(?, ?)
`, at.Format(time.RFC3339), amountML)
	if err != nil {
		return 0, fmt.Errorf("insert intake event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted intake event id: %w", err)
	}

	if _, err := EvaluateBadges(db, at); err != nil {
		return 0, fmt.Errorf("evaluate badges after intake event %d: %w", id, err)
	}
	return id, nil
}

// ListIntakeEvents returns recent events, newest first.
func ListIntakeEvents(db *sql.DB, limit int) ([]model.IntakeEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`
SELECT id, logged_at, amount_ml
FROM intake_events
ORDER BY logged_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list intake events: %w", err)
	}
	defer rows.Close()

	events := make([]model.IntakeEvent, 0)
	for rows.Next() {
		var e model.IntakeEvent
		var loggedAtRaw string
		if err := rows.Scan(&e.ID, &loggedAtRaw, &e.AmountML); err != nil {
			return nil, fmt.Errorf("scan intake event: %w", err)
		}
		loggedAt, err := time.Parse(time.RFC3339, loggedAtRaw)
		if err != nil {
			return nil, fmt.Errorf("parse logged_at for event %d: %w", e.ID, err)
		}
		e.LoggedAt = loggedAt
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate intake events: %w", err)
	}
	return events, nil
}

func countIntakeEvents(db *sql.DB) (int64, error) {
	var count int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM intake_events`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count intake events: %w", err)
	}
	return count, nil
}
