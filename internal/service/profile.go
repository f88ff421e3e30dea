package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jashithrathod04-star/waterbuddy/internal/model"
)

type SetProfileInput struct {
	Name     string
	Age      int
	WeightKg float64
	Activity string
}

// SetProfile appends a new profile row. Profiles are never updated in
// place; the most recently created row is authoritative.
func SetProfile(db *sql.DB, in SetProfileInput) (int64, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		in.Name = "You"
	}
	if in.Age < 0 {
		return 0, fmt.Errorf("%w: age must be >= 0", ErrInvalidProfile)
	}
	if in.WeightKg <= 0 {
		return 0, fmt.Errorf("%w: weight must be > 0 kg", ErrInvalidProfile)
	}
	activity, err := parseActivity(in.Activity)
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(`
INSERT INTO profiles(name, age, weight_kg, activity, created_at)
VALUES(?, ?, ?, ?, ?)
`, in.Name, in.Age, in.WeightKg, string(activity), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("insert profile: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted profile id: %w", err)
	}
	return id, nil
}

// CurrentProfile returns the latest profile, or nil when none has been
// created yet.
func CurrentProfile(db *sql.DB) (*model.Profile, error) {
	var p model.Profile
	var activity, createdAtRaw string
	err := db.QueryRow(`
SELECT id, name, age, weight_kg, activity, created_at
FROM profiles
ORDER BY id DESC
LIMIT 1
`).Scan(&p.ID, &p.Name, &p.Age, &p.WeightKg, &activity, &createdAtRaw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("current profile: %w", err)
	}
	p.Activity = model.ActivityLevel(activity)
	createdAt, err := time.Parse(time.RFC3339, createdAtRaw)
	if err != nil {
		return nil, fmt.Errorf("parse created_at for profile %d: %w", p.ID, err)
	}
	p.CreatedAt = createdAt
	return &p, nil
}

func ProfileHistory(db *sql.DB) ([]model.Profile, error) {
	rows, err := db.Query(`
SELECT id, name, age, weight_kg, activity, created_at
FROM profiles
ORDER BY id DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list profile history: %w", err)
	}
	defer rows.Close()

	profiles := make([]model.Profile, 0)
	for rows.Next() {
		var p model.Profile
		var activity, createdAtRaw string
		if err := rows.Scan(&p.ID, &p.Name, &p.Age, &p.WeightKg, &activity, &createdAtRaw); err != nil {
			return nil, fmt.Errorf("scan profile history: %w", err)
		}
		p.Activity = model.ActivityLevel(activity)
		createdAt, err := time.Parse(time.RFC3339, createdAtRaw)
		if err != nil {
			return nil, fmt.Errorf("parse created_at for profile %d: %w", p.ID, err)
		}
		p.CreatedAt = createdAt
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profile history: %w", err)
	}
	return profiles, nil
}

func parseActivity(value string) (model.ActivityLevel, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", string(model.ActivityNormal):
		return model.ActivityNormal, nil
	case string(model.ActivityLow):
		return model.ActivityLow, nil
	case string(model.ActivityHigh):
		return model.ActivityHigh, nil
	default:
		return "", fmt.Errorf("%w: activity must be low, normal, or high", ErrInvalidProfile)
	}
}
