package errors

import "errors"

// Sentinel errors shared across usecases and repositories. Deliveries never
// build HTTP responses from anything else: unknown errors become a generic
// 500 in the fiber error handler.
var (
	// auth
	ErrUserNotFound         = errors.New("user not found")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrWrongLoginOrPassword = errors.New("wrong login or password")
	ErrGetHashedPassword    = errors.New("failed to hash password")

	// sessions
	ErrSessionNotFound = errors.New("session not found")
	ErrAdminRequired   = errors.New("admin role required")
	ErrAccessDenied    = errors.New("access denied")

	// catalog
	ErrCarNotFound = errors.New("car not found")

	// bookings
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidBookingParams = errors.New("invalid booking params")
	// ErrBookingConflict is reserved for a future per-car date-overlap
	// check at creation time; nothing returns it yet.
	ErrBookingConflict = errors.New("booking dates conflict")

	// contact
	ErrInvalidContactParams = errors.New("invalid contact params")

	// storage
	ErrDb = errors.New("database error")
)
