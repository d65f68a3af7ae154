package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Booking / availability errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrRoomConflict    = errors.New("room conflict")
	ErrInvalidWindow   = errors.New("invalid booking window")

	// Operation errors
	ErrStoreUnavailable = errors.New("store unavailable")
)
