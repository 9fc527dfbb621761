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

type CreateReviewRequest struct {
	TourID  string `json:"tourId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type ReviewListResult struct {
	Reviews     []domain.Review `json:"reviews"`
	TotalPages  int64           `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
	Total       int64           `json:"total"`
}

type ReviewService struct {
	reviewRepo  ports.ReviewRepository
	bookingRepo ports.BookingRepository
	tourRepo    ports.TourRepository
	userRepo    ports.UserRepository
	notifier    *NotificationService
	cache       *redis.Client
}

func NewReviewService(
	reviewRepo ports.ReviewRepository,
	bookingRepo ports.BookingRepository,
	tourRepo ports.TourRepository,
	userRepo ports.UserRepository,
	notifier *NotificationService,
	cache *redis.Client,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		tourRepo:    tourRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		cache:       cache,
	}
}

// Create accepts one review per customer per completed (paid) tour. The
// review starts pending and only shows publicly after admin approval.
func (s *ReviewService) Create(ctx context.Context, customer *domain.User, req CreateReviewRequest) (*domain.Review, error) {
	tourID, err := uuid.Parse(req.TourID)
	if err != nil {
		return nil, domain.ErrTourNotFound
	}

	tour, err := s.tourRepo.GetByID(ctx, tourID)
	if err != nil {
		return nil, err
	}

	paid, err := s.bookingRepo.HasPaidBooking(ctx, customer.ID, tourID)
	if err != nil {
		return nil, err
	}
	if !paid {
		return nil, domain.ErrReviewNotAllowed
	}

	exists, err := s.reviewRepo.ExistsForCustomer(ctx, customer.ID, tourID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyReviewed
	}

	review := &domain.Review{
		ID:         uuid.New(),
		Code:       domain.NewCode("REV"),
		CustomerID: customer.ID,
		TourID:     tourID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Status:     domain.ReviewPending,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.notifyAdminNewReview(ctx, customer, tour, review)
	return review, nil
}

// ListByTour is the public feed of approved reviews.
func (s *ReviewService) ListByTour(ctx context.Context, tourID string) ([]domain.Review, error) {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return nil, domain.ErrTourNotFound
	}
	return s.reviewRepo.ListApprovedByTour(ctx, id)
}

// ListAll is the admin moderation queue.
func (s *ReviewService) ListAll(ctx context.Context, filter ports.ReviewFilter) (*ReviewListResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	reviews, total, err := s.reviewRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := (total + int64(filter.Limit) - 1) / int64(filter.Limit)
	return &ReviewListResult{
		Reviews:     reviews,
		TotalPages:  totalPages,
		CurrentPage: filter.Page,
		Total:       total,
	}, nil
}

// SetStatus moderates a review. Approval folds the rating into the tour's
// aggregate.
func (s *ReviewService) SetStatus(ctx context.Context, reviewID string, status domain.ReviewStatus) (*domain.Review, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid review status %q", status)
	}

	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, domain.ErrReviewNotFound
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	review.Status = status

	if status == domain.ReviewApproved {
		if err := s.tourRepo.RefreshRating(ctx, review.TourID); err != nil {
			log.Printf("failed to refresh rating for tour %s: %v", review.TourID, err)
		}
		key := fmt.Sprintf("tour:%s", review.TourID)
		if err := s.cache.Del(ctx, key).Err(); err != nil {
			log.Printf("failed to invalidate cache key %s: %v", key, err)
		}
	}

	return review, nil
}

func (s *ReviewService) notifyAdminNewReview(ctx context.Context, customer *domain.User, tour *domain.Tour, review *domain.Review) {
	admin, err := s.userRepo.FindAdmin(ctx)
	if err != nil {
		log.Printf("no admin to notify for review %s: %v", review.ID, err)
		return
	}

	message := fmt.Sprintf("Khách hàng %s vừa đánh giá tour %q.", customer.FullName, tour.Name)
	_, err = s.notifier.Notify(ctx, NotifyInput{
		Recipient: domain.PartyRef{Kind: domain.PartyEmployee, ID: admin.ID},
		Sender:    domain.PartyRef{Kind: domain.PartyCustomer, ID: customer.ID},
		Type:      domain.NotifNewReview,
		Message:   message,
		Link:      "/admin?tab=reviews",
		Event:     "new_review",
		Data: map[string]any{
			"reviewId":     review.ID,
			"tourName":     tour.Name,
			"rating":       review.Rating,
			"customerName": customer.FullName,
			"message":      message,
		},
	})
	if err != nil {
		log.Printf("failed to notify admin about review %s: %v", review.ID, err)
	}
}
