package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldRequired is returned when a required field is empty.
	ErrFieldRequired = errors.New("field is required")

	// ErrInvalidDocument is returned when a tax identifier fails its checksum.
	ErrInvalidDocument = errors.New("invalid document number")

	// ErrOutOfRange is returned when a numeric value is out of the allowed range.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidFormat is returned when a field has an invalid format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidDate is returned when a value cannot be read as a calendar date.
	ErrInvalidDate = errors.New("invalid date")
)
