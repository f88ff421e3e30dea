package service

import (
	"database/sql"
	"time"
)

// CadenceFactor compares recent intake against the current goal and returns
// a multiplier >= 1.0 that divides the reminder interval. It averages the
// last 3 entries of the 7-day window; with no profile there is nothing to
// adapt to and the factor stays 1.0.
func CadenceFactor(db *sql.DB, now time.Time) (float64, error) {
	totals, err := DailyTotals(db, 7, now)
	if err != nil {
		return 0, err
	}
	recent := totals[len(totals)-3:]
	sum := 0
	for _, t := range recent {
		sum += t.TotalML
	}
	avg := float64(sum) / 3

	profile, err := CurrentProfile(db)
	if err != nil {
		return 0, err
	}
	if profile == nil {
		return 1.0, nil
	}
	goal, err := GoalML(GoalInput{WeightKg: profile.WeightKg, Age: profile.Age, Activity: profile.Activity})
	if err != nil {
		return 0, err
	}

	switch {
	case avg < 0.70*float64(goal):
		return 1.20, nil
	case avg < 0.90*float64(goal):
		return 1.05, nil
	default:
		return 1.0, nil
	}
}

// Suggestion turns the cadence factor into user-facing nudge text.
func Suggestion(db *sql.DB, now time.Time) (string, error) {
	factor, err := CadenceFactor(db, now)
	if err != nil {
		return "", err
	}
	switch {
	case factor > 1.05:
		return "Your recent intake is low. Reminders will nudge you more often; try adding small 250 ml logs after chores.", nil
	case factor > 1.0:
		return "You're close to your goal most days. A glass with each meal would close the gap.", nil
	default:
		return "You're doing well! Maintain your streak and try eco mode for sustainability tips.", nil
	}
}
