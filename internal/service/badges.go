package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jashithrathod04-star/waterbuddy/internal/model"
)

const (
	BadgeFirstLog     = "first-log"
	BadgeSevenDayGoal = "7-day-streak"
)

// streakGoalShare is the fraction of the daily goal a day must reach to
// count toward the 7-day streak.
const streakGoalShare = 0.75

// badgeSnapshot is the read-only state badge rules decide over.
type badgeSnapshot struct {
	profile    *model.Profile
	goalML     int
	totals     []model.DailyTotal
	eventCount int64
	earned     map[string]bool
}

type badgeRule struct {
	name      string
	qualifies func(s badgeSnapshot) bool
}

// Rules are independent and each checks its own award condition; order
// carries no semantics.
var badgeRules = []badgeRule{
	{
		name: BadgeFirstLog,
		qualifies: func(s badgeSnapshot) bool {
			return s.eventCount >= 1
		},
	},
	{
		name: BadgeSevenDayGoal,
		qualifies: func(s badgeSnapshot) bool {
			// Needs a goal to measure against; without a profile the rule
			// skips silently.
			if s.profile == nil {
				return false
			}
			threshold := streakGoalShare * float64(s.goalML)
			goodDays := 0
			for _, t := range s.totals {
				if float64(t.TotalML) >= threshold {
					goodDays++
				}
			}
			return goodDays == 7
		},
	},
}

// EvaluateBadges runs every badge rule against a fresh snapshot and inserts
// any newly earned badges. It is idempotent: each rule checks the earned
// set before inserting, and the UNIQUE constraint on badge names backstops
// concurrent triggering. Returns the names awarded by this call.
func EvaluateBadges(db *sql.DB, now time.Time) ([]string, error) {
	snapshot, err := loadBadgeSnapshot(db, now)
	if err != nil {
		return nil, err
	}

	awarded := make([]string, 0)
	for _, rule := range badgeRules {
		if snapshot.earned[rule.name] {
			continue
		}
		if !rule.qualifies(snapshot) {
			continue
		}
		if _, err := db.Exec(`
INSERT OR IGNORE INTO badges(name, earned_at)
VALUES(?, ?)
`, rule.name, now.UTC().Format(time.RFC3339)); err != nil {
			return nil, fmt.Errorf("award badge %q: %w", rule.name, err)
		}
		awarded = append(awarded, rule.name)
	}
	return awarded, nil
}

func ListBadges(db *sql.DB) ([]model.Badge, error) {
	rows, err := db.Query(`
SELECT id, name, earned_at
FROM badges
ORDER BY earned_at DESC, id DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	defer rows.Close()

	badges := make([]model.Badge, 0)
	for rows.Next() {
		var b model.Badge
		var earnedAtRaw string
		if err := rows.Scan(&b.ID, &b.Name, &earnedAtRaw); err != nil {
			return nil, fmt.Errorf("scan badge: %w", err)
		}
		earnedAt, err := time.Parse(time.RFC3339, earnedAtRaw)
		if err != nil {
			return nil, fmt.Errorf("parse earned_at for badge %d: %w", b.ID, err)
		}
		b.EarnedAt = earnedAt
		badges = append(badges, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate badges: %w", err)
	}
	return badges, nil
}

func loadBadgeSnapshot(db *sql.DB, now time.Time) (badgeSnapshot, error) {
	var s badgeSnapshot

	profile, err := CurrentProfile(db)
	if err != nil {
		return s, err
	}
	s.profile = profile
	if profile != nil {
		goal, err := GoalML(GoalInput{WeightKg: profile.WeightKg, Age: profile.Age, Activity: profile.Activity})
		if err != nil {
			return s, err
		}
		s.goalML = goal
	}

	totals, err := DailyTotals(db, 7, now)
	if err != nil {
		return s, err
	}
	s.totals = totals

	count, err := countIntakeEvents(db)
	if err != nil {
		return s, err
	}
	s.eventCount = count

	earned, err := ListBadges(db)
	if err != nil {
		return s, err
	}
	s.earned = make(map[string]bool, len(earned))
	for _, b := range earned {
		s.earned[b.Name] = true
	}
	return s, nil
}
