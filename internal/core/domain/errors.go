package domain

import "errors"

var (
	ErrTourNotFound         = errors.New("tour not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrReviewNotFound       = errors.New("review not found")
	ErrUserNotFound         = errors.New("user not found")

	// ErrInsufficientSlots is returned by the inventory ledger when a
	// reservation asks for more slots than the tour currently has.
	ErrInsufficientSlots = errors.New("not enough available slots")

	// ErrIllegalTransition is returned when a status update is not allowed
	// by the booking transition table.
	ErrIllegalTransition = errors.New("illegal booking status transition")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotRecipient       = errors.New("caller is not the notification recipient")
	ErrAlreadyReviewed    = errors.New("tour already reviewed by this customer")
	ErrReviewNotAllowed   = errors.New("only completed tours can be reviewed")
)
