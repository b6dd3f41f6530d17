package errors

import (
	"net/http"
)

// Error is the user-facing error carried across service and handler layers.
// Message is safe to show to the caller; Status is the HTTP status it maps to.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *Error) Error() string {
	return e.Message
}

// New creates a new Error
func New(message string, status int) *Error {
	return &Error{
		Message: message,
		Status:  status,
	}
}

var (
	ErrInternalServerError = New("internal server error", http.StatusInternalServerError)
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrNotFound            = New("Page not found", http.StatusNotFound)

	// ErrUnauthorized is returned whenever a protected route is hit without a
	// valid session token.
	ErrUnauthorized = New("Please log in to access this page.", http.StatusUnauthorized)

	// ErrInvalidCredentials deliberately does not reveal whether the
	// identifier or the password was wrong.
	ErrInvalidCredentials = New("Invalid credentials. Please try again.", http.StatusUnauthorized)

	ErrInvalidRegNumberFormat = New("Invalid registration number format. Use format: H200000A", http.StatusBadRequest)
	ErrDuplicateEmail         = New("Email already registered.", http.StatusConflict)
	ErrDuplicateRegNumber     = New("Registration number already registered.", http.StatusConflict)

	ErrProductNotFound = New("Product not found", http.StatusNotFound)
	ErrSelfMessaging   = New("You cannot message yourself about your own product.", http.StatusBadRequest)
	ErrEmptyMessage    = New("Message cannot be empty", http.StatusBadRequest)
)

// GetUniqueContraintError passes repository uniqueness sentinels through
// and collapses anything else to a generic internal error, so raw database
// failures never reach the caller.
func GetUniqueContraintError(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return ErrInternalServerError
}
