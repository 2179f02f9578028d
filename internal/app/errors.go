package service

import "errors"

// Sentinel kinds for orchestration errors.
var (
	ErrGenerationInProgress = errors.New("a plan is already being generated")
	ErrUnexpected           = errors.New("unexpected generation error")
	ErrNoCurrentPlan        = errors.New("no current plan")
)

// User-facing messages for failures that do not carry their own text.
const (
	MsgGenerationFailed = "Failed to generate plan. Please check your API key or try again."
	MsgUnexpected       = "An unexpected error occurred."
)
