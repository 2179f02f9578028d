package llm

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is a configuration error raised before any request is sent.
var ErrMissingAPIKey = errors.New("generation api key not configured")

// ErrService is matched by every failure on the service side of a call.
var ErrService = errors.New("generation service failure")

// Service failure kinds. Both match ErrService.
var (
	ErrEmptyResponse   = fmt.Errorf("%w: empty response", ErrService)
	ErrSchemaViolation = fmt.Errorf("%w: response does not match schema", ErrService)
)
