package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
	"github.com/phuocthien2304/TourManagement/internal/core/ports/mocks"
	"github.com/phuocthien2304/TourManagement/internal/core/services"
)

type reviewFixture struct {
	reviewRepo  *mocks.ReviewRepository
	bookingRepo *mocks.BookingRepository
	tourRepo    *mocks.TourRepository
	userRepo    *mocks.UserRepository
	notifRepo   *mocks.NotificationRepository
	redis       redismock.ClientMock
	service     *services.ReviewService
}

func newReviewFixture(t *testing.T) *reviewFixture {
	f := &reviewFixture{
		reviewRepo:  mocks.NewReviewRepository(t),
		bookingRepo: mocks.NewBookingRepository(t),
		tourRepo:    mocks.NewTourRepository(t),
		userRepo:    mocks.NewUserRepository(t),
		notifRepo:   mocks.NewNotificationRepository(t),
	}

	db, mockRedis := redismock.NewClientMock()
	f.redis = mockRedis

	presence := services.NewPresenceRegistry()
	notifier := services.NewNotificationService(f.notifRepo, presence)
	f.service = services.NewReviewService(f.reviewRepo, f.bookingRepo, f.tourRepo, f.userRepo, notifier, db)
	return f
}

func TestCreateReview_Success(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	customer := newCustomer()
	admin := newAdmin()
	tour := &domain.Tour{ID: uuid.New(), Name: "Phú Quốc 3N2Đ"}

	f.tourRepo.On("GetByID", ctx, tour.ID).Return(tour, nil)
	f.bookingRepo.On("HasPaidBooking", ctx, customer.ID, tour.ID).Return(true, nil)
	f.reviewRepo.On("ExistsForCustomer", ctx, customer.ID, tour.ID).Return(false, nil)
	f.reviewRepo.On("Create", ctx, mock.AnythingOfType("*domain.Review")).Return(nil)
	f.userRepo.On("FindAdmin", ctx).Return(admin, nil)
	f.notifRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

	review, err := f.service.Create(ctx, customer, services.CreateReviewRequest{
		TourID:  tour.ID.String(),
		Rating:  5,
		Comment: "Tuyệt vời!",
	})

	assert.NoError(t, err)
	if assert.NotNil(t, review) {
		assert.Equal(t, domain.ReviewPending, review.Status)
		assert.Equal(t, 5, review.Rating)
		assert.True(t, strings.HasPrefix(review.Code, "REV"))
	}
}

func TestCreateReview_Fail_NoPaidBooking(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	customer := newCustomer()
	tour := &domain.Tour{ID: uuid.New(), Name: "Phú Quốc 3N2Đ"}

	f.tourRepo.On("GetByID", ctx, tour.ID).Return(tour, nil)
	f.bookingRepo.On("HasPaidBooking", ctx, customer.ID, tour.ID).Return(false, nil)

	review, err := f.service.Create(ctx, customer, services.CreateReviewRequest{
		TourID: tour.ID.String(),
		Rating: 4,
	})

	assert.ErrorIs(t, err, domain.ErrReviewNotAllowed)
	assert.Nil(t, review)
	f.reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReview_Fail_AlreadyReviewed(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	customer := newCustomer()
	tour := &domain.Tour{ID: uuid.New(), Name: "Phú Quốc 3N2Đ"}

	f.tourRepo.On("GetByID", ctx, tour.ID).Return(tour, nil)
	f.bookingRepo.On("HasPaidBooking", ctx, customer.ID, tour.ID).Return(true, nil)
	f.reviewRepo.On("ExistsForCustomer", ctx, customer.ID, tour.ID).Return(true, nil)

	review, err := f.service.Create(ctx, customer, services.CreateReviewRequest{
		TourID: tour.ID.String(),
		Rating: 3,
	})

	assert.ErrorIs(t, err, domain.ErrAlreadyReviewed)
	assert.Nil(t, review)
}

func TestReviewSetStatus_ApprovalRefreshesRating(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	review := &domain.Review{
		ID:     uuid.New(),
		TourID: uuid.New(),
		Rating: 4,
		Status: domain.ReviewPending,
	}

	f.reviewRepo.On("GetByID", ctx, review.ID).Return(review, nil)
	f.reviewRepo.On("UpdateStatus", ctx, review.ID, domain.ReviewApproved).Return(nil)
	f.tourRepo.On("RefreshRating", ctx, review.TourID).Return(nil)

	f.redis.ExpectDel(fmt.Sprintf("tour:%s", review.TourID)).SetVal(1)

	updated, err := f.service.SetStatus(ctx, review.ID.String(), domain.ReviewApproved)

	assert.NoError(t, err)
	if assert.NotNil(t, updated) {
		assert.Equal(t, domain.ReviewApproved, updated.Status)
	}

	if err := f.redis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestReviewSetStatus_RejectionSkipsRating(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	review := &domain.Review{
		ID:     uuid.New(),
		TourID: uuid.New(),
		Rating: 1,
		Status: domain.ReviewPending,
	}

	f.reviewRepo.On("GetByID", ctx, review.ID).Return(review, nil)
	f.reviewRepo.On("UpdateStatus", ctx, review.ID, domain.ReviewRejected).Return(nil)

	updated, err := f.service.SetStatus(ctx, review.ID.String(), domain.ReviewRejected)

	assert.NoError(t, err)
	assert.Equal(t, domain.ReviewRejected, updated.Status)
	f.tourRepo.AssertNotCalled(t, "RefreshRating", mock.Anything, mock.Anything)
}
