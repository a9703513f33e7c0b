package usecase

import "reservation-service/internal/pkg/errs"

// Error kinds. Specific errors are marked with one of these so callers can branch
// on the kind with errs.Is.
var (
	ErrNotFound                = errs.New("not found")
	ErrValidation              = errs.New("validation failed")
	ErrInvalidStatusTransition = errs.New("invalid status transition")
	// ErrNotificationFailed means the store write succeeded but the guest was not notified.
	ErrNotificationFailed = errs.New("notification failed")
)

var (
	ErrRestaurantNotFound  = errs.Mark(errs.New("restaurant not found"), ErrNotFound)
	ErrReservationNotFound = errs.Mark(errs.New("reservation not found"), ErrNotFound)
)
