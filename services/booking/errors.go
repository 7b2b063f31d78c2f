package booking

import "fmt"

// BookingError is a typed error for conditions the handler layer maps to
// specific HTTP responses.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionNotFoundError(sessionID string) error {
	return &BookingError{Code: "sessionNotFound", Message: fmt.Sprintf("booking session %s not found or expired", sessionID)}
}

func NewStageError(msg string) error {
	return &BookingError{Code: "invalidStage", Message: msg}
}

func NewStaffUnavailableError(staffID string) error {
	return &BookingError{Code: "staffUnavailable", Message: fmt.Sprintf("staff member %s is not currently available for the selected time", staffID)}
}

func NewValidationError(msg string) error {
	return &BookingError{Code: "validation", Message: msg}
}

func NewCooldownError() error {
	return &BookingError{Code: "cooldown", Message: "a confirmation was just submitted, please wait a moment before retrying"}
}

// IsBookingError reports whether err is a BookingError with the given code.
func IsBookingError(err error, code string) bool {
	be, ok := err.(*BookingError)
	return ok && be.Code == code
}
