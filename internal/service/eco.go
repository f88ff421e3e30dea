package service

import (
	"database/sql"
	"fmt"
	"time"
)

// DefaultBottleSizeML is the refillable bottle used for the eco estimate.
const DefaultBottleSizeML = 500

type EcoReport struct {
	WeekTotalML  int
	BottleSizeML int
	BottlesSaved float64
}

// BottlesSaved estimates how many single-use bottles a volume replaces when
// the user refills instead.
func BottlesSaved(totalML, bottleSizeML int) float64 {
	if bottleSizeML <= 0 {
		bottleSizeML = DefaultBottleSizeML
	}
	return float64(totalML) / float64(bottleSizeML)
}

// WeeklyEco sums the 7-day window and converts it to a bottle equivalence.
func WeeklyEco(db *sql.DB, bottleSizeML int, now time.Time) (EcoReport, error) {
	totals, err := DailyTotals(db, 7, now)
	if err != nil {
		return EcoReport{}, err
	}
	total := 0
	for _, t := range totals {
		total += t.TotalML
	}
	if bottleSizeML <= 0 {
		bottleSizeML = DefaultBottleSizeML
	}
	return EcoReport{
		WeekTotalML:  total,
		BottleSizeML: bottleSizeML,
		BottlesSaved: BottlesSaved(total, bottleSizeML),
	}, nil
}

type StatsReport struct {
	Days       int
	AverageML  float64
	GoalML     int
	HasProfile bool
}

// Stats reports the N-day average intake against the current goal.
func Stats(db *sql.DB, days int, now time.Time) (StatsReport, error) {
	if days < 1 {
		return StatsReport{}, fmt.Errorf("stats window must be >= 1 day, got %d", days)
	}
	totals, err := DailyTotals(db, days, now)
	if err != nil {
		return StatsReport{}, err
	}
	sum := 0
	for _, t := range totals {
		sum += t.TotalML
	}

	profile, err := CurrentProfile(db)
	if err != nil {
		return StatsReport{}, err
	}
	goal := DefaultGoalML
	if profile != nil {
		goal, err = GoalML(GoalInput{WeightKg: profile.WeightKg, Age: profile.Age, Activity: profile.Activity})
		if err != nil {
			return StatsReport{}, err
		}
	}
	return StatsReport{
		Days:       days,
		AverageML:  float64(sum) / float64(days),
		GoalML:     goal,
		HasProfile: profile != nil,
	}, nil
}
