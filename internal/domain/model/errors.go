package model

import "errors"

// Sentinel kinds for domain validation errors.
var (
	ErrInvalidSkillLevel = errors.New("invalid skill level")
	ErrInvalidPosition   = errors.New("invalid position")
	ErrInvalidMode       = errors.New("invalid generation mode")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)
