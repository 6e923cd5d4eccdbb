package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when signing up with an already registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrInactiveUser is returned when the account has been deactivated.
	ErrInactiveUser = errors.New("inactive user")
	// ErrAdminRequired is returned when the caller lacks the admin role.
	ErrAdminRequired = errors.New("admin privileges required")
	// ErrUserNotFound is returned when a token subject has no stored user.
	ErrUserNotFound = errors.New("user not found")
	// ErrEventNotFound is returned when an event id does not exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrInvalidEventTime is returned when the event time is not a valid HH:MM value.
	ErrInvalidEventTime = errors.New("invalid time format, expected HH:MM")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrEmailTaken:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrInactiveUser:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INACTIVE_USER")
	case ErrAdminRequired:
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_REQUIRED")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "USER_NOT_FOUND")
	case ErrEventNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "EVENT_NOT_FOUND")
	case ErrInvalidEventTime:
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "INVALID_TIME_FORMAT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
