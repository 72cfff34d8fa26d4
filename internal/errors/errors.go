package errors

import "fmt"

// ErrorCode represents a Lockin error code.
type ErrorCode string

const (
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"  // 400
	ErrInvalidTime     ErrorCode = "INVALID_TIME"     // 400
	ErrInvalidInterval ErrorCode = "INVALID_INTERVAL" // 400
	ErrNotFound        ErrorCode = "NOT_FOUND"        // 404
	ErrOverlap         ErrorCode = "OVERLAP"          // 409
	ErrBusy            ErrorCode = "BUSY"             // 409
	ErrDigitizeFailed  ErrorCode = "DIGITIZE_FAILED"  // 502
	ErrInternal        ErrorCode = "INTERNAL"         // 500
)

// PlanError represents a structured error with code, status, and details.
type PlanError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *PlanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *PlanError {
	return &PlanError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewInvalidTime creates a 400 error for a time string that fails strict HH:MM parsing.
func NewInvalidTime(value string) *PlanError {
	return &PlanError{
		Code:    ErrInvalidTime,
		Status:  400,
		Message: fmt.Sprintf("invalid time %q: expected HH:MM (hour 0-23, minute 00-59)", value),
		Details: map[string]any{"value": value},
	}
}

// NewInvalidInterval creates a 400 error for an inverted or zero-length interval.
func NewInvalidInterval(start, end string) *PlanError {
	return &PlanError{
		Code:    ErrInvalidInterval,
		Status:  400,
		Message: fmt.Sprintf("invalid interval %s-%s: start must be before end", start, end),
		Details: map[string]any{"start": start, "end": end},
	}
}

// NewNotFound creates a 404 error for a missing block or todo.
func NewNotFound(kind, id string) *PlanError {
	return &PlanError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("%s not found: %s", kind, id),
		Details: map[string]any{"kind": kind, "id": id},
	}
}

// NewOverlap creates a 409 error when a block collides with a fixed timetable entry.
func NewOverlap(day, title string) *PlanError {
	return &PlanError{
		Code:    ErrOverlap,
		Status:  409,
		Message: fmt.Sprintf("block overlaps fixed entry %q on %s", title, day),
		Details: map[string]any{"day": day, "fixed_title": title},
	}
}

// NewBusy creates a 409 error when an exclusive operation is already in flight.
func NewBusy(msg string) *PlanError {
	return &PlanError{
		Code:    ErrBusy,
		Status:  409,
		Message: msg,
	}
}

// NewDigitizeFailed creates a 502 error for a failed timetable digitization.
func NewDigitizeFailed(err error) *PlanError {
	msg := "digitization failed"
	if err != nil {
		msg = fmt.Sprintf("digitization failed: %v", err)
	}
	return &PlanError{
		Code:    ErrDigitizeFailed,
		Status:  502,
		Message: msg,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *PlanError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &PlanError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a PlanError with the given code.
func Is(err error, code ErrorCode) bool {
	if pErr, ok := err.(*PlanError); ok {
		return pErr.Code == code
	}
	return false
}
