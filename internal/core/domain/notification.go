package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifNewBooking          NotificationType = "new_booking"
	NotifBookingConfirmation NotificationType = "booking_confirmation"
	NotifCancellation        NotificationType = "cancellation"
	NotifPaymentConfirmation NotificationType = "payment_confirmation"
	NotifNewReview           NotificationType = "new_review"
	NotifSystemUpdate        NotificationType = "system_update"
)

// Notification is the durable record; it outlives any live delivery attempt
// and is never auto-deleted.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	Recipient PartyRef         `json:"recipient"`
	Sender    PartyRef         `json:"sender"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	Link      string           `json:"link,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`

	// SenderName is joined in on reads for display.
	SenderName string `json:"senderName,omitempty"`
}
