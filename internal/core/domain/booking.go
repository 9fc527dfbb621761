package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingPaid      BookingStatus = "paid"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingPaid, BookingCancelled:
		return true
	}
	return false
}

// transitions is the booking lifecycle table. paid and cancelled are
// terminal; pending may be cancelled directly by the admin.
var transitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingPaid, BookingCancelled},
}

// CanTransition reports whether a booking in status s may move to next.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	ID             uuid.UUID     `json:"id"`
	Code           string        `json:"bookingId"`
	CustomerID     uuid.UUID     `json:"customerId"`
	TourID         uuid.UUID     `json:"tourId"`
	NumberOfPeople int           `json:"numberOfPeople"`
	TotalAmount    float64       `json:"totalAmount"`
	Status         BookingStatus `json:"status"`
	Notes          string        `json:"notes,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`

	// Populated on reads, never stored inline.
	Tour     *Tour `json:"tour,omitempty"`
	Customer *User `json:"customer,omitempty"`
}
