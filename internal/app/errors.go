package service

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrEmptyUserID rejects requests without a user identifier.
	ErrEmptyUserID = errors.New("user id is required")

	// ErrPersistSurvey marks a survey that was scored but whose record
	// could not be written. The computed result is still returned.
	ErrPersistSurvey = errors.New("survey record not persisted")
)
