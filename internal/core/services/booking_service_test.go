package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
	"github.com/phuocthien2304/TourManagement/internal/core/ports/mocks"
	"github.com/phuocthien2304/TourManagement/internal/core/services"
)

func newCustomer() *domain.User {
	return &domain.User{
		ID:       uuid.New(),
		FullName: "Nguyen Van A",
		Email:    "a@example.com",
		Role:     domain.RoleCustomer,
	}
}

func newAdmin() *domain.User {
	return &domain.User{
		ID:       uuid.New(),
		FullName: "Admin",
		Email:    "admin@example.com",
		Role:     domain.RoleAdmin,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	mockTourRepo := mocks.NewTourRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockNotifRepo := mocks.NewNotificationRepository(t)

	db, mockRedis := redismock.NewClientMock()

	presence := services.NewPresenceRegistry()
	notifier := services.NewNotificationService(mockNotifRepo, presence)
	service := services.NewBookingService(mockTourRepo, mockBookingRepo, mockUserRepo, notifier, db)

	ctx := context.Background()
	customer := newCustomer()
	admin := newAdmin()

	tour := &domain.Tour{
		ID:             uuid.New(),
		Name:           "Đà Nẵng 3N2Đ",
		Price:          1500000,
		AvailableSlots: 10,
		TotalSlots:     20,
	}

	req := services.CreateBookingRequest{
		TourID:         tour.ID.String(),
		NumberOfPeople: 3,
	}

	mockTourRepo.On("GetByID", ctx, tour.ID).Return(tour, nil)
	mockTourRepo.On("ReserveSlots", ctx, tour.ID, 3).Return(nil)
	mockBookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
	mockUserRepo.On("FindAdmin", ctx).Return(admin, nil)
	mockNotifRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

	cacheKey := fmt.Sprintf("tour:%s", tour.ID.String())
	mockRedis.ExpectDel(cacheKey).SetVal(1)

	booking, err := service.Create(ctx, customer, req)

	assert.NoError(t, err)
	if assert.NotNil(t, booking) {
		assert.Equal(t, 4500000.0, booking.TotalAmount)
		assert.Equal(t, domain.BookingPending, booking.Status)
		assert.Equal(t, customer.ID, booking.CustomerID)
		assert.True(t, strings.HasPrefix(booking.Code, "BOOK"))
	}

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestCreateBooking_Fail_InsufficientSlots(t *testing.T) {
	mockTourRepo := mocks.NewTourRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockNotifRepo := mocks.NewNotificationRepository(t)
	db, _ := redismock.NewClientMock()

	presence := services.NewPresenceRegistry()
	notifier := services.NewNotificationService(mockNotifRepo, presence)
	service := services.NewBookingService(mockTourRepo, mockBookingRepo, mockUserRepo, notifier, db)

	ctx := context.Background()
	tour := &domain.Tour{ID: uuid.New(), Price: 1000000, AvailableSlots: 1, TotalSlots: 10}

	req := services.CreateBookingRequest{
		TourID:         tour.ID.String(),
		NumberOfPeople: 2,
	}

	mockTourRepo.On("GetByID", ctx, tour.ID).Return(tour, nil)
	mockTourRepo.On("ReserveSlots", ctx, tour.ID, 2).Return(domain.ErrInsufficientSlots)

	booking, err := service.Create(ctx, newCustomer(), req)

	assert.ErrorIs(t, err, domain.ErrInsufficientSlots)
	assert.Nil(t, booking)
	mockBookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockNotifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_Fail_TourNotFound(t *testing.T) {
	mockTourRepo := mocks.NewTourRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockNotifRepo := mocks.NewNotificationRepository(t)
	db, _ := redismock.NewClientMock()

	presence := services.NewPresenceRegistry()
	notifier := services.NewNotificationService(mockNotifRepo, presence)
	service := services.NewBookingService(mockTourRepo, mockBookingRepo, mockUserRepo, notifier, db)

	ctx := context.Background()
	tourID := uuid.New()

	mockTourRepo.On("GetByID", ctx, tourID).Return(nil, domain.ErrTourNotFound)

	booking, err := service.Create(ctx, newCustomer(), services.CreateBookingRequest{
		TourID:         tourID.String(),
		NumberOfPeople: 1,
	})

	assert.ErrorIs(t, err, domain.ErrTourNotFound)
	assert.Nil(t, booking)
}

func TestCreateBooking_ReleasesSlotsWhenInsertFails(t *testing.T) {
	mockTourRepo := mocks.NewTourRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockNotifRepo := mocks.NewNotificationRepository(t)
	db, _ := redismock.NewClientMock()

	presence := services.NewPresenceRegistry()
	notifier := services.NewNotificationService(mockNotifRepo, presence)
	service := services.NewBookingService(mockTourRepo, mockBookingRepo, mockUserRepo, notifier, db)

	ctx := context.Background()
	tour := &domain.Tour{ID: uuid.New(), Price: 500000, AvailableSlots: 5, TotalSlots: 5}

	mockTourRepo.On("GetByID", ctx, tour.ID).Return(tour, nil)
	mockTourRepo.On("ReserveSlots", ctx, tour.ID, 2).Return(nil)
	mockBookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(errors.New("insert failed"))
	mockTourRepo.On("ReleaseSlots", ctx, tour.ID, 2).Return(nil)

	booking, err := service.Create(ctx, newCustomer(), services.CreateBookingRequest{
		TourID:         tour.ID.String(),
		NumberOfPeople: 2,
	})

	assert.Error(t, err)
	assert.Nil(t, booking)
	assert.Contains(t, err.Error(), "failed to create booking")
}

func TestSetStatus_Confirm(t *testing.T) {
	mockTourRepo := mocks.NewTourRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockNotifRepo := mocks.NewNotificationRepository(t)
	db, _ := redismock.NewClientMock()

	presence := services.NewPresenceRegistry()
	notifier := services.NewNotificationService(mockNotifRepo, presence)
	service := services.NewBookingService(mockTourRepo, mockBookingRepo, mockUserRepo, notifier, db)

	ctx := context.Background()
	admin := newAdmin()

	booking := &domain.Booking{
		ID:             uuid.New(),
		CustomerID:     uuid.New(),
		TourID:         uuid.New(),
		NumberOfPeople: 2,
		Status:         domain.BookingPending,
		Tour:           &domain.Tour{Name: "Hạ Long 2N1Đ"},
	}

	mockBookingRepo.On("GetByID", ctx, booking.ID).Return(booking, nil)
	mockBookingRepo.On("UpdateStatus", ctx, booking.ID, domain.BookingConfirmed).Return(nil)
	mockNotifRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

	updated, err := service.SetStatus(ctx, booking.ID.String(), domain.BookingConfirmed, admin)

	assert.NoError(t, err)
	if assert.NotNil(t, updated) {
		assert.Equal(t, domain.BookingConfirmed, updated.Status)
	}
	mockTourRepo.AssertNotCalled(t, "ReleaseSlots", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetStatus_CancelReleasesSlotsOnce(t *testing.T) {
	mockTourRepo := mocks.NewTourRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockNotifRepo := mocks.NewNotificationRepository(t)
	db, mockRedis := redismock.NewClientMock()

	presence := services.NewPresenceRegistry()
	notifier := services.NewNotificationService(mockNotifRepo, presence)
	service := services.NewBookingService(mockTourRepo, mockBookingRepo, mockUserRepo, notifier, db)

	ctx := context.Background()
	admin := newAdmin()

	booking := &domain.Booking{
		ID:             uuid.New(),
		CustomerID:     uuid.New(),
		TourID:         uuid.New(),
		NumberOfPeople: 4,
		Status:         domain.BookingConfirmed,
		Tour:           &domain.Tour{Name: "Sapa 4N3Đ"},
	}

	mockBookingRepo.On("GetByID", ctx, booking.ID).Return(booking, nil)
	mockBookingRepo.On("UpdateStatus", ctx, booking.ID, domain.BookingCancelled).Return(nil)
	mockTourRepo.On("ReleaseSlots", ctx, booking.TourID, 4).Return(nil).Once()
	mockNotifRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

	mockRedis.ExpectDel(fmt.Sprintf("tour:%s", booking.TourID)).SetVal(1)

	updated, err := service.SetStatus(ctx, booking.ID.String(), domain.BookingCancelled, admin)

	assert.NoError(t, err)
	if assert.NotNil(t, updated) {
		assert.Equal(t, domain.BookingCancelled, updated.Status)
	}

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestSetStatus_Fail_IllegalTransitions(t *testing.T) {
	cases := []struct {
		name string
		from domain.BookingStatus
		to   domain.BookingStatus
	}{
		{"pending cannot jump to paid", domain.BookingPending, domain.BookingPaid},
		{"paid cannot go back to confirmed", domain.BookingPaid, domain.BookingConfirmed},
		{"cancelled is terminal", domain.BookingCancelled, domain.BookingCancelled},
		{"paid cannot be cancelled", domain.BookingPaid, domain.BookingCancelled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockTourRepo := mocks.NewTourRepository(t)
			mockBookingRepo := mocks.NewBookingRepository(t)
			mockUserRepo := mocks.NewUserRepository(t)
			mockNotifRepo := mocks.NewNotificationRepository(t)
			db, _ := redismock.NewClientMock()

			presence := services.NewPresenceRegistry()
			notifier := services.NewNotificationService(mockNotifRepo, presence)
			service := services.NewBookingService(mockTourRepo, mockBookingRepo, mockUserRepo, notifier, db)

			ctx := context.Background()
			booking := &domain.Booking{
				ID:             uuid.New(),
				TourID:         uuid.New(),
				NumberOfPeople: 2,
				Status:         tc.from,
			}

			mockBookingRepo.On("GetByID", ctx, booking.ID).Return(booking, nil)

			updated, err := service.SetStatus(ctx, booking.ID.String(), tc.to, newAdmin())

			assert.ErrorIs(t, err, domain.ErrIllegalTransition)
			assert.Nil(t, updated)
			mockBookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			mockTourRepo.AssertNotCalled(t, "ReleaseSlots", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

// inventoryTourRepo is an in-memory ledger with the same atomicity contract
// as the SQL implementation: reserve checks and decrements under one lock.
type inventoryTourRepo struct {
	mu   sync.Mutex
	tour *domain.Tour
}

func (r *inventoryTourRepo) Create(ctx context.Context, tour *domain.Tour) error { return nil }
func (r *inventoryTourRepo) Update(ctx context.Context, tour *domain.Tour) error { return nil }
func (r *inventoryTourRepo) Delete(ctx context.Context, tourID uuid.UUID) error  { return nil }

func (r *inventoryTourRepo) GetByID(ctx context.Context, tourID uuid.UUID) (*domain.Tour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tourID != r.tour.ID {
		return nil, domain.ErrTourNotFound
	}
	snapshot := *r.tour
	return &snapshot, nil
}

func (r *inventoryTourRepo) List(ctx context.Context, filter domain.TourFilter) ([]domain.Tour, int64, error) {
	return nil, 0, nil
}

func (r *inventoryTourRepo) ListRelated(ctx context.Context, excludeID uuid.UUID, destination string, limit int) ([]domain.Tour, error) {
	return nil, nil
}

func (r *inventoryTourRepo) PopularDestinations(ctx context.Context, category string, limit int) ([]domain.DestinationStat, error) {
	return nil, nil
}

func (r *inventoryTourRepo) ListRecommended(ctx context.Context, filter domain.RecommendationFilter) ([]domain.Tour, error) {
	return nil, nil
}

func (r *inventoryTourRepo) ReserveSlots(ctx context.Context, tourID uuid.UUID, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tour.AvailableSlots < count {
		return domain.ErrInsufficientSlots
	}
	r.tour.AvailableSlots -= count
	return nil
}

func (r *inventoryTourRepo) ReleaseSlots(ctx context.Context, tourID uuid.UUID, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tour.AvailableSlots += count
	if r.tour.AvailableSlots > r.tour.TotalSlots {
		r.tour.AvailableSlots = r.tour.TotalSlots
	}
	return nil
}

func (r *inventoryTourRepo) RefreshRating(ctx context.Context, tourID uuid.UUID) error { return nil }

func TestCreateBooking_ConcurrentLastSlot(t *testing.T) {
	tourRepo := &inventoryTourRepo{
		tour: &domain.Tour{
			ID:             uuid.New(),
			Name:           "Côn Đảo 3N2Đ",
			Price:          3000000,
			AvailableSlots: 1,
			TotalSlots:     10,
		},
	}

	mockBookingRepo := mocks.NewBookingRepository(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockNotifRepo := mocks.NewNotificationRepository(t)
	db, _ := redismock.NewClientMock()

	presence := services.NewPresenceRegistry()
	notifier := services.NewNotificationService(mockNotifRepo, presence)
	service := services.NewBookingService(tourRepo, mockBookingRepo, mockUserRepo, notifier, db)

	mockBookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	mockUserRepo.On("FindAdmin", mock.Anything).Return(newAdmin(), nil)
	mockNotifRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Notification")).Return(nil)

	req := services.CreateBookingRequest{
		TourID:         tourRepo.tour.ID.String(),
		NumberOfPeople: 1,
	}

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Create(context.Background(), newCustomer(), req)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		if err == nil {
			succeeded++
		} else if errors.Is(err, domain.ErrInsufficientSlots) {
			rejected++
		} else {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 0, tourRepo.tour.AvailableSlots)
}

func TestSetStatus_Fail_UnknownStatus(t *testing.T) {
	mockTourRepo := mocks.NewTourRepository(t)
	mockBookingRepo := mocks.NewBookingRepository(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockNotifRepo := mocks.NewNotificationRepository(t)
	db, _ := redismock.NewClientMock()

	presence := services.NewPresenceRegistry()
	notifier := services.NewNotificationService(mockNotifRepo, presence)
	service := services.NewBookingService(mockTourRepo, mockBookingRepo, mockUserRepo, notifier, db)

	updated, err := service.SetStatus(context.Background(), uuid.New().String(), "shipped", newAdmin())

	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
	assert.Nil(t, updated)
}
