// Package domain holds types shared across the service's domain packages:
// the typed error taxonomy and generic pagination.
package domain

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a known failure outcome. Codes are stable across the
// API boundary; message text is informational only.
type ErrorCode string

const (
	CodeValidation       ErrorCode = "VALIDATION_ERROR"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeCapacityExceeded ErrorCode = "CAPACITY_EXCEEDED"
	CodeInvalidDate      ErrorCode = "INVALID_DATE"
	CodeInvalidRange     ErrorCode = "INVALID_RANGE"
	CodeBookingConflict  ErrorCode = "BOOKING_CONFLICT"
	CodeStorageConflict  ErrorCode = "STORAGE_CONFLICT"
	CodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// Error is a domain error carrying a stable code and, for field-level
// validation failures, the offending field name.
type Error struct {
	Code    ErrorCode
	Message string
	Field   string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError reports malformed or missing input.
func NewValidationError(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

// NewFieldValidationError reports malformed input attached to a specific field.
func NewFieldValidationError(field, message string) *Error {
	return &Error{Code: CodeValidation, Message: message, Field: field}
}

// NewNotFoundError reports a missing entity.
func NewNotFoundError(entity, id string) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf("%s with ID %s not found", entity, id)}
}

// NewCapacityExceededError reports an attendee count above the venue capacity.
func NewCapacityExceededError(attendees, capacity int) *Error {
	return &Error{
		Code:    CodeCapacityExceeded,
		Message: fmt.Sprintf("attendee count %d exceeds venue capacity %d", attendees, capacity),
	}
}

// NewInvalidDateError reports an unparseable date value.
func NewInvalidDateError(field, value string) *Error {
	return &Error{Code: CodeInvalidDate, Message: fmt.Sprintf("invalid date %q", value), Field: field}
}

// NewInvalidRangeError reports a date range whose end does not follow its start.
func NewInvalidRangeError() *Error {
	return &Error{Code: CodeInvalidRange, Message: "end date must be after start date", Field: "endDate"}
}

// NewBookingConflictError reports an overlap with an existing inquiry.
func NewBookingConflictError() *Error {
	return &Error{Code: CodeBookingConflict, Message: "venue is not available for the selected dates"}
}

// NewStorageConflictError reports a transaction-level serialization abort.
// Unlike a booking conflict this is transient and eligible for one retry.
func NewStorageConflictError(cause error) *Error {
	return &Error{Code: CodeStorageConflict, Message: fmt.Sprintf("transaction aborted: %v", cause)}
}

// NewInternalError reports an unexpected store or infrastructure failure.
func NewInternalError(message string) *Error {
	return &Error{Code: CodeInternal, Message: message}
}

// CodeOf extracts the error code from err, or CodeInternal for untyped errors.
func CodeOf(err error) ErrorCode {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// IsCode reports whether err is a domain error with the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
