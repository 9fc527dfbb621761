package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
)

func TestBookingStatus_CanTransition(t *testing.T) {
	cases := []struct {
		from    domain.BookingStatus
		to      domain.BookingStatus
		allowed bool
	}{
		{domain.BookingPending, domain.BookingConfirmed, true},
		{domain.BookingPending, domain.BookingCancelled, true},
		{domain.BookingPending, domain.BookingPaid, false},
		{domain.BookingConfirmed, domain.BookingPaid, true},
		{domain.BookingConfirmed, domain.BookingCancelled, true},
		{domain.BookingConfirmed, domain.BookingPending, false},
		{domain.BookingPaid, domain.BookingConfirmed, false},
		{domain.BookingPaid, domain.BookingCancelled, false},
		{domain.BookingCancelled, domain.BookingPending, false},
		{domain.BookingCancelled, domain.BookingCancelled, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestBookingStatus_Valid(t *testing.T) {
	assert.True(t, domain.BookingPending.Valid())
	assert.True(t, domain.BookingPaid.Valid())
	assert.False(t, domain.BookingStatus("shipped").Valid())
	assert.False(t, domain.BookingStatus("").Valid())
}

func TestNewCode(t *testing.T) {
	code := domain.NewCode("BOOK")
	assert.True(t, strings.HasPrefix(code, "BOOK"))
	assert.Greater(t, len(code), len("BOOK"))

	other := domain.NewCode("TOUR")
	assert.True(t, strings.HasPrefix(other, "TOUR"))
}
