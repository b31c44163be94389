package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrDatabaseError       = errors.New("database error")
	ErrDatabaseReadError   = errors.New("database read error")
	ErrPreferencesNotFound = errors.New("preferences not found")
	ErrPlaceNotFound       = errors.New("place not found")
	ErrGenerationFailed    = errors.New("text generation failed")
	ErrEmptyGeneration     = errors.New("no response generated")
	ErrIncompleteStream    = errors.New("generation stream ended before completion")
	ErrUpstreamStatus      = errors.New("upstream returned non-2xx status")
	ErrMissingUserAgent    = errors.New("place lookup requires a client identifier (User-Agent)")
	ErrMissingAPIKey       = errors.New("api key is not configured")
)
