package common

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound        = errors.New("requested resource not found")
	ErrBadRequest      = errors.New("bad request")
	ErrInternalServer  = errors.New("internal server error")
	ErrTooManyRequests = errors.New("too many requests")

	// ErrDuplicateIdentity covers both the advisory pre-check and a lost
	// race against the unique index; callers cannot tell them apart.
	ErrDuplicateIdentity = errors.New("email or username already registered")

	// ErrInvalidCredentials is returned for an unknown username and for a
	// wrong password alike. Keeping the two cases identical denies account
	// enumeration through error codes.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountDisabled is only reachable after the password verified.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrUnauthorized is the single outcome for any unusable token:
	// malformed, bad signature, expired, or unknown subject. The specific
	// cause is logged server-side, never returned.
	ErrUnauthorized = errors.New("unauthorized")
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrAccountDisabled) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrBadRequest) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrDuplicateIdentity) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrTooManyRequests) {
		return http.StatusTooManyRequests
	}

	// Unique violations that escaped the repository mapping.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}
