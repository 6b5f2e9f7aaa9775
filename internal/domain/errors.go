package domain

import "errors"

var (
	ErrInvalidTransition       = errors.New("invalid transition")
	ErrInvalidDuration         = errors.New("invalid duration")
	ErrNonMonotonicLap         = errors.New("lap time earlier than previous lap")
	ErrUnknownTheme            = errors.New("unknown theme")
	ErrPreferenceNotFound      = errors.New("preference not found")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)
