package apperrors

import (
	"errors"
	"net/http"
)

// Sentinel errors for every failure mode the API surfaces. Usecases wrap
// these with fmt.Errorf("%w: detail") and handlers map them to HTTP statuses
// via StatusCode.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrValidation         = errors.New("validation failed")
	ErrInvalidMonthFormat = errors.New("Invalid month format. Use YYYY-MM")
	ErrUnknownCategory    = errors.New("category does not exist for this user")

	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrGoalNotFound        = errors.New("savings goal not found")
	ErrUserNotFound        = errors.New("user not found")

	ErrCategoryReserved = errors.New("category name is reserved by a predefined category")
	ErrCategoryExists   = errors.New("category already exists")
	ErrEmailExists      = errors.New("email is already registered")
)

// StatusCode maps a domain error to its HTTP status. Anything unrecognized
// is an internal error.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidMonthFormat),
		errors.Is(err, ErrUnknownCategory):
		return http.StatusBadRequest
	case errors.Is(err, ErrTransactionNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrGoalNotFound),
		errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrCategoryReserved),
		errors.Is(err, ErrCategoryExists),
		errors.Is(err, ErrEmailExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
