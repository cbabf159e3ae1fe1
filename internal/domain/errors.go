package domain

import "errors"

// Sentinel errors shared by repositories and services.
var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateEmail   = errors.New("email already in use")
	ErrHasInterviews    = errors.New("record is referenced by interviews")
	ErrInvalidInput     = errors.New("invalid input")
	ErrScheduleConflict = errors.New("schedule conflict")
)
