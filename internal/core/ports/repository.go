package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phuocthien2304/TourManagement/internal/core/domain"
)

type TourRepository interface {
	Create(ctx context.Context, tour *domain.Tour) error
	Update(ctx context.Context, tour *domain.Tour) error
	Delete(ctx context.Context, tourID uuid.UUID) error
	GetByID(ctx context.Context, tourID uuid.UUID) (*domain.Tour, error)
	List(ctx context.Context, filter domain.TourFilter) ([]domain.Tour, int64, error)

	// ReserveSlots atomically decrements available_slots by count, failing
	// with domain.ErrInsufficientSlots when fewer than count remain. The
	// check and the decrement must be a single storage operation.
	ReserveSlots(ctx context.Context, tourID uuid.UUID, count int) error

	// ReleaseSlots increments available_slots by count, clamped to
	// total_slots.
	ReleaseSlots(ctx context.Context, tourID uuid.UUID, count int) error

	// RefreshRating recomputes rating and review_count from approved reviews.
	RefreshRating(ctx context.Context, tourID uuid.UUID) error

	// ListRelated returns bookable tours sharing a destination, excluding the
	// tour being viewed, newest first.
	ListRelated(ctx context.Context, excludeID uuid.UUID, destination string, limit int) ([]domain.Tour, error)

	// PopularDestinations groups bookable tours by destination, busiest first.
	PopularDestinations(ctx context.Context, category string, limit int) ([]domain.DestinationStat, error)

	// ListRecommended returns bookable tours for the suggestion feed:
	// featured first, then best rated, most reviewed, newest.
	ListRecommended(ctx context.Context, filter domain.RecommendationFilter) ([]domain.Tour, error)
}

type BookingFilter struct {
	Status domain.BookingStatus
	Page   int
	Limit  int
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]domain.Booking, int64, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error
	HasPaidBooking(ctx context.Context, customerID, tourID uuid.UUID) (bool, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	ListByRecipient(ctx context.Context, recipient domain.PartyRef) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, kind domain.PartyKind, user *domain.User) error
	FindByEmail(ctx context.Context, kind domain.PartyKind, email string) (*domain.User, error)
	FindByID(ctx context.Context, kind domain.PartyKind, id uuid.UUID) (*domain.User, error)

	// FindAdmin returns the admin employee that receives marketplace-wide
	// notifications.
	FindAdmin(ctx context.Context) (*domain.User, error)
}

type ReviewFilter struct {
	Status domain.ReviewStatus
	Page   int
	Limit  int
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	ListApprovedByTour(ctx context.Context, tourID uuid.UUID) ([]domain.Review, error)
	List(ctx context.Context, filter ReviewFilter) ([]domain.Review, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReviewStatus) error
	ExistsForCustomer(ctx context.Context, customerID, tourID uuid.UUID) (bool, error)
}

type StatsRepository interface {
	BookingStats(ctx context.Context, from, to *time.Time) (*domain.BookingStats, error)
	TopTours(ctx context.Context, limit int) ([]domain.TourStat, error)
}
