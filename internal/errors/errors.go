package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserExists is returned when signing up with an email that already has an account.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrUserNotFound is returned when the authenticated user no longer exists.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidAmount is returned when a money field is negative or malformed.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidDate is returned when a date field is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
	// ErrEmptyName is returned when a required name field is blank.
	ErrEmptyName = errors.New("name must not be empty")
	// ErrAdminOnly is returned when a non-admin calls an admin resource.
	ErrAdminOnly = errors.New("admin access required")
	// ErrNoBillingHistory is returned when no billing customer exists for the caller.
	ErrNoBillingHistory = errors.New("no billing history found")
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
	switch {
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_REFRESH_TOKEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusForbidden, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	case errors.Is(err, ErrInvalidDate):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATE")
	case errors.Is(err, ErrEmptyName):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_NAME")
	case errors.Is(err, ErrAdminOnly):
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_ONLY")
	case errors.Is(err, ErrNoBillingHistory):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_BILLING_HISTORY")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
