package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotAuthenticated is returned when a request carries no usable session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrInvalidToken is returned when an access token fails verification.
	ErrInvalidToken = errors.New("invalid access token")
	// ErrProfileNotFound is returned when no profile row exists for an identity.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileExists is returned when a profile insert hits the user_id unique key.
	ErrProfileExists = errors.New("profile already exists")
	// ErrAuthRejected is returned when the auth service answers with a non-success status.
	ErrAuthRejected = errors.New("auth service rejected request")
	// ErrInvalidConfirmation is returned when a confirmation link is malformed.
	ErrInvalidConfirmation = errors.New("invalid confirmation request")
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

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors are matched with errors.Is.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return NewHTTPError(http.StatusUnauthorized, ErrNotAuthenticated.Error(), "NOT_AUTHENTICATED")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidToken.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrProfileNotFound):
		return NewHTTPError(http.StatusNotFound, ErrProfileNotFound.Error(), "PROFILE_NOT_FOUND")
	case errors.Is(err, ErrProfileExists):
		return NewHTTPError(http.StatusConflict, ErrProfileExists.Error(), "PROFILE_EXISTS")
	case errors.Is(err, ErrInvalidConfirmation):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidConfirmation.Error(), "INVALID_CONFIRMATION")
	case errors.Is(err, ErrAuthRejected):
		return NewHTTPError(http.StatusBadGateway, ErrAuthRejected.Error(), "AUTH_REJECTED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
