package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
	"github.com/phuocthien2304/TourManagement/internal/core/ports"
)

type CreateBookingRequest struct {
	TourID         string `json:"tourId" binding:"required"`
	NumberOfPeople int    `json:"numberOfPeople" binding:"required,min=1"`
	Notes          string `json:"notes"`
}

type BookingListResult struct {
	Bookings    []domain.Booking `json:"bookings"`
	TotalPages  int64            `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	Total       int64            `json:"total"`
}

type BookingService struct {
	tourRepo    ports.TourRepository
	bookingRepo ports.BookingRepository
	userRepo    ports.UserRepository
	notifier    *NotificationService
	cache       *redis.Client
}

func NewBookingService(
	tourRepo ports.TourRepository,
	bookingRepo ports.BookingRepository,
	userRepo ports.UserRepository,
	notifier *NotificationService,
	cache *redis.Client,
) *BookingService {
	return &BookingService{
		tourRepo:    tourRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		cache:       cache,
	}
}

// Create reserves inventory and persists a pending booking. The reservation
// is a single conditional decrement, so two concurrent callers cannot both
// take the last slot. Nothing is written when the reservation fails, and the
// reservation is released if the booking insert itself fails.
func (s *BookingService) Create(ctx context.Context, customer *domain.User, req CreateBookingRequest) (*domain.Booking, error) {
	tourID, err := uuid.Parse(req.TourID)
	if err != nil {
		return nil, domain.ErrTourNotFound
	}

	tour, err := s.tourRepo.GetByID(ctx, tourID)
	if err != nil {
		return nil, err
	}

	if err := s.tourRepo.ReserveSlots(ctx, tour.ID, req.NumberOfPeople); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:             uuid.New(),
		Code:           domain.NewCode("BOOK"),
		CustomerID:     customer.ID,
		TourID:         tour.ID,
		NumberOfPeople: req.NumberOfPeople,
		TotalAmount:    tour.Price * float64(req.NumberOfPeople),
		Status:         domain.BookingPending,
		Notes:          req.Notes,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if relErr := s.tourRepo.ReleaseSlots(ctx, tour.ID, req.NumberOfPeople); relErr != nil {
			log.Printf("rollback release for tour %s failed: %v", tour.ID, relErr)
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidateTour(ctx, tour.ID)
	s.notifyAdminNewBooking(ctx, customer, tour, booking)

	booking.Tour = tour
	return booking, nil
}

// SetStatus applies an admin lifecycle transition. Illegal moves are
// rejected against the transition table; cancellation releases the booked
// slots exactly once, which the table guarantees because cancelled is
// terminal.
func (s *BookingService) SetStatus(ctx context.Context, bookingID string, status domain.BookingStatus, actor *domain.User) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, domain.ErrIllegalTransition
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, domain.ErrBookingNotFound
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransition(status) {
		return nil, domain.ErrIllegalTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	if status == domain.BookingCancelled {
		if err := s.tourRepo.ReleaseSlots(ctx, booking.TourID, booking.NumberOfPeople); err != nil {
			log.Printf("release slots for tour %s failed: %v", booking.TourID, err)
		}
		s.invalidateTour(ctx, booking.TourID)
	}

	booking.Status = status
	s.notifyCustomerStatusUpdate(ctx, actor, booking, status)

	return booking, nil
}

// ListMine returns the customer's own bookings, tour populated, newest first.
func (s *BookingService) ListMine(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error) {
	return s.bookingRepo.ListByCustomer(ctx, customerID)
}

// ListAll is the admin view with optional status filter and pagination.
func (s *BookingService) ListAll(ctx context.Context, filter ports.BookingFilter) (*BookingListResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	bookings, total, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := (total + int64(filter.Limit) - 1) / int64(filter.Limit)
	return &BookingListResult{
		Bookings:    bookings,
		TotalPages:  totalPages,
		CurrentPage: filter.Page,
		Total:       total,
	}, nil
}

func (s *BookingService) invalidateTour(ctx context.Context, tourID uuid.UUID) {
	key := fmt.Sprintf("tour:%s", tourID)
	if err := s.cache.Del(ctx, key).Err(); err != nil {
		log.Printf("failed to invalidate cache key %s: %v", key, err)
	}
}

// notifyAdminNewBooking alerts the admin party. Notification problems never
// fail the booking that triggered them.
func (s *BookingService) notifyAdminNewBooking(ctx context.Context, customer *domain.User, tour *domain.Tour, booking *domain.Booking) {
	admin, err := s.userRepo.FindAdmin(ctx)
	if err != nil {
		log.Printf("no admin to notify for booking %s: %v", booking.ID, err)
		return
	}

	message := fmt.Sprintf("Khách hàng %s vừa đặt tour %q.", customer.FullName, tour.Name)
	_, err = s.notifier.Notify(ctx, NotifyInput{
		Recipient: domain.PartyRef{Kind: domain.PartyEmployee, ID: admin.ID},
		Sender:    domain.PartyRef{Kind: domain.PartyCustomer, ID: customer.ID},
		Type:      domain.NotifNewBooking,
		Message:   message,
		Link:      "/admin?tab=bookings",
		Event:     "new_booking",
		Data: map[string]any{
			"bookingId":    booking.ID,
			"tourName":     tour.Name,
			"customerName": customer.FullName,
			"message":      message,
		},
	})
	if err != nil {
		log.Printf("failed to notify admin about booking %s: %v", booking.ID, err)
	}
}

func (s *BookingService) notifyCustomerStatusUpdate(ctx context.Context, actor *domain.User, booking *domain.Booking, status domain.BookingStatus) {
	tourName := ""
	if booking.Tour != nil {
		tourName = booking.Tour.Name
	}

	var notifType domain.NotificationType
	var verb string
	switch status {
	case domain.BookingConfirmed:
		notifType = domain.NotifBookingConfirmation
		verb = "xác nhận"
	case domain.BookingCancelled:
		notifType = domain.NotifCancellation
		verb = "hủy"
	case domain.BookingPaid:
		notifType = domain.NotifPaymentConfirmation
		verb = "đánh dấu đã thanh toán"
	default:
		return
	}

	message := fmt.Sprintf("Đơn đặt tour %q của bạn đã được %s.", tourName, verb)
	_, err := s.notifier.Notify(ctx, NotifyInput{
		Recipient: domain.PartyRef{Kind: domain.PartyCustomer, ID: booking.CustomerID},
		Sender:    domain.PartyRef{Kind: domain.PartyEmployee, ID: actor.ID},
		Type:      notifType,
		Message:   message,
		Link:      "/bookings",
		Event:     "booking_status_update",
		Data: map[string]any{
			"bookingId": booking.ID,
			"tourName":  tourName,
			"status":    string(status),
			"message":   message,
		},
	})
	if err != nil {
		log.Printf("failed to notify customer about booking %s: %v", booking.ID, err)
	}
}
