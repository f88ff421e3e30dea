package model

import "time"

type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "low"
	ActivityNormal ActivityLevel = "normal"
	ActivityHigh   ActivityLevel = "high"
)

type Profile struct {
	ID        int64
	Name      string
	Age       int
	WeightKg  float64
	Activity  ActivityLevel
	CreatedAt time.Time
}

type IntakeEvent struct {
	ID       int64
	LoggedAt time.Time
	AmountML int
}

type Badge struct {
	ID       int64
	Name     string
	EarnedAt time.Time
}

// DailyTotal is derived, never stored. Date is a UTC calendar day in
// YYYY-MM-DD form.
type DailyTotal struct {
	Date    string
	TotalML int
}
