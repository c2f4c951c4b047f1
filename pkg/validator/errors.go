package validator

import "errors"

var (
	// ErrValidationFailed matches any ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownDateFormat is returned when a value matches none of the supported date layouts.
	ErrUnknownDateFormat = errors.New("unknown date format")

	// ErrDateFormatMismatch is returned when a value is in a different layout than expected.
	ErrDateFormatMismatch = errors.New("date format mismatch")

	// ErrInvalidDate is returned when a value is well-formed but not a calendar date.
	ErrInvalidDate = errors.New("invalid date")
)
