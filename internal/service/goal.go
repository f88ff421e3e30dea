package service

import (
	"database/sql"
	"fmt"

	"github.com/jashithrathod04-star/waterbuddy/internal/model"
)

// BaseMLPerKg is the baseline daily intake guideline.
const BaseMLPerKg = 35

type GoalInput struct {
	WeightKg     float64
	Age          int
	Activity     model.ActivityLevel
	AmbientTempC *float64
}

// GoalML computes the daily target volume. Base is weight x 35 ml; activity,
// age, and ambient temperature stack multiplicatively; the result is floored
// to an integer.
func GoalML(in GoalInput) (int, error) {
	if in.WeightKg <= 0 {
		return 0, fmt.Errorf("%w: weight must be > 0 kg", ErrInvalidProfile)
	}
	base := in.WeightKg * BaseMLPerKg
	multiplier := 1.0
	switch in.Activity {
	case model.ActivityLow:
		multiplier *= 0.95
	case model.ActivityHigh:
		multiplier *= 1.20
	case model.ActivityNormal, "":
	default:
		return 0, fmt.Errorf("%w: unrecognized activity %q", ErrInvalidProfile, in.Activity)
	}
	if in.Age >= 65 {
		multiplier *= 0.90
	}
	if in.AmbientTempC != nil {
		// Higher threshold wins; the two temperature bumps never stack.
		switch {
		case *in.AmbientTempC >= 30:
			multiplier *= 1.25
		case *in.AmbientTempC >= 25:
			multiplier *= 1.10
		}
	}
	return int(base * multiplier), nil
}

// GoalForCurrentProfile resolves the current profile's goal. When no
// profile exists it returns DefaultGoalML so callers always have a
// renderable target.
func GoalForCurrentProfile(db *sql.DB, ambientTempC *float64) (int, error) {
	profile, err := CurrentProfile(db)
	if err != nil {
		return 0, err
	}
	if profile == nil {
		return DefaultGoalML, nil
	}
	return GoalML(GoalInput{
		WeightKg:     profile.WeightKg,
		Age:          profile.Age,
		Activity:     profile.Activity,
		AmbientTempC: ambientTempC,
	})
}
