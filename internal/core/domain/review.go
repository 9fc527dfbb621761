package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewPending, ReviewApproved, ReviewRejected:
		return true
	}
	return false
}

type Review struct {
	ID         uuid.UUID    `json:"id"`
	Code       string       `json:"reviewId"`
	CustomerID uuid.UUID    `json:"customerId"`
	TourID     uuid.UUID    `json:"tourId"`
	Rating     int          `json:"rating"`
	Comment    string       `json:"comment"`
	Status     ReviewStatus `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`

	CustomerName string `json:"customerName,omitempty"`
	Tour         *Tour  `json:"tour,omitempty"`
}
