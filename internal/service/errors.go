package service

import "errors"

var (
	// ErrInvalidProfile covers non-positive weight, negative age, and
	// unrecognized activity levels.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrInvalidAmount covers non-positive logged volumes.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNoProfile marks operations that strictly require a profile.
	// Goal reads fall back to DefaultGoalML instead of returning it.
	ErrNoProfile = errors.New("no profile set")
)

// DefaultGoalML keeps goal-dependent output renderable before the first
// profile is created.
const DefaultGoalML = 2000
