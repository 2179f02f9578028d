package repository

import "errors"

// Sentinel kinds for roster and library errors.
var (
	ErrPlayerNotFound      = errors.New("player not found")
	ErrDuplicatePlayer     = errors.New("player id already exists")
	ErrInvalidPlayer       = errors.New("invalid player")
	ErrCustomSkillNotFound = errors.New("custom skill not found")
	ErrUnknownCategory     = errors.New("unknown skill category")
	ErrDuplicateCategory   = errors.New("skill category already registered")
	ErrPlanNotFound        = errors.New("plan not found")
	ErrUnenrichedPlan      = errors.New("plan has no id")
)
