package apperrors

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrFixtureMissing = errors.New("fixture file missing")
	ErrAlreadySeeded  = errors.New("group already seeded")
)
