package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
	"github.com/phuocthien2304/TourManagement/internal/core/ports"
)

const tourCacheTTL = 5 * time.Minute

type TourInput struct {
	Name           string   `json:"tourName" binding:"required"`
	Departure      string   `json:"departure" binding:"required"`
	Destination    string   `json:"destination" binding:"required"`
	Category       string   `json:"category"`
	Country        string   `json:"country"`
	Itinerary      string   `json:"itinerary"`
	StartDate      string   `json:"startDate" binding:"required"`
	EndDate        string   `json:"endDate" binding:"required"`
	Duration       int      `json:"duration"`
	Transportation string   `json:"transportation"`
	Price          float64  `json:"price" binding:"required,gt=0"`
	TotalSlots     int      `json:"totalSlots" binding:"required,min=1"`
	Images         []string `json:"images"`
	Status         string   `json:"status"`
	Featured       bool     `json:"featured"`
}

type TourListResult struct {
	Tours       []domain.Tour `json:"tours"`
	TotalPages  int64         `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
	Total       int64         `json:"total"`
}

type TourService struct {
	tourRepo ports.TourRepository
	cache    *redis.Client
}

func NewTourService(tourRepo ports.TourRepository, cache *redis.Client) *TourService {
	return &TourService{tourRepo: tourRepo, cache: cache}
}

// Get serves the tour detail through the cache. Slot counts change under
// bookings, so every mutation path deletes the key and a short TTL bounds
// staleness either way.
func (s *TourService) Get(ctx context.Context, tourID string) (*domain.Tour, error) {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return nil, domain.ErrTourNotFound
	}

	key := fmt.Sprintf("tour:%s", id)
	if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
		var tour domain.Tour
		if err := json.Unmarshal([]byte(raw), &tour); err == nil {
			return &tour, nil
		}
	}

	tour, err := s.tourRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(tour); err == nil {
		if err := s.cache.Set(ctx, key, raw, tourCacheTTL).Err(); err != nil {
			log.Printf("failed to cache tour %s: %v", id, err)
		}
	}

	return tour, nil
}

func (s *TourService) List(ctx context.Context, filter domain.TourFilter) (*TourListResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	tours, total, err := s.tourRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := (total + int64(filter.Limit) - 1) / int64(filter.Limit)
	return &TourListResult{
		Tours:       tours,
		TotalPages:  totalPages,
		CurrentPage: filter.Page,
		Total:       total,
	}, nil
}

// Related suggests alternatives at the same destination for a tour detail
// page. The destination comes from the caller rather than a lookup so the
// detail page can pass along what it already has.
func (s *TourService) Related(ctx context.Context, tourID, destination string, limit int) ([]domain.Tour, error) {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return nil, domain.ErrTourNotFound
	}
	if limit < 1 {
		limit = 6
	}

	tours, err := s.tourRepo.ListRelated(ctx, id, destination, limit)
	if err != nil {
		return nil, err
	}
	if tours == nil {
		tours = []domain.Tour{}
	}
	return tours, nil
}

func (s *TourService) PopularDestinations(ctx context.Context, category string, limit int) ([]domain.DestinationStat, error) {
	if limit < 1 {
		limit = 10
	}

	stats, err := s.tourRepo.PopularDestinations(ctx, category, limit)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []domain.DestinationStat{}
	}
	return stats, nil
}

func (s *TourService) Recommendations(ctx context.Context, filter domain.RecommendationFilter) ([]domain.Tour, error) {
	if filter.Limit < 1 {
		filter.Limit = 6
	}

	tours, err := s.tourRepo.ListRecommended(ctx, filter)
	if err != nil {
		return nil, err
	}
	if tours == nil {
		tours = []domain.Tour{}
	}
	return tours, nil
}

// Create opens a new tour with a full inventory: available slots start equal
// to the capacity.
func (s *TourService) Create(ctx context.Context, in TourInput) (*domain.Tour, error) {
	tour, err := tourFromInput(in)
	if err != nil {
		return nil, err
	}
	tour.ID = uuid.New()
	tour.Code = domain.NewCode("TOUR")
	tour.AvailableSlots = in.TotalSlots

	if err := s.tourRepo.Create(ctx, tour); err != nil {
		return nil, fmt.Errorf("failed to create tour: %w", err)
	}
	return tour, nil
}

// Update edits tour fields. The repository clamps available_slots to the new
// total_slots in the same statement, so a shrunken capacity can never leave
// available above total.
func (s *TourService) Update(ctx context.Context, tourID string, in TourInput) (*domain.Tour, error) {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return nil, domain.ErrTourNotFound
	}

	tour, err := tourFromInput(in)
	if err != nil {
		return nil, err
	}
	tour.ID = id

	if err := s.tourRepo.Update(ctx, tour); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)

	return s.tourRepo.GetByID(ctx, id)
}

func (s *TourService) Delete(ctx context.Context, tourID string) error {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return domain.ErrTourNotFound
	}
	if err := s.tourRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *TourService) invalidate(ctx context.Context, tourID uuid.UUID) {
	key := fmt.Sprintf("tour:%s", tourID)
	if err := s.cache.Del(ctx, key).Err(); err != nil {
		log.Printf("failed to invalidate cache key %s: %v", key, err)
	}
}

func tourFromInput(in TourInput) (*domain.Tour, error) {
	start, err := time.Parse("2006-01-02", in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid startDate: %w", err)
	}
	end, err := time.Parse("2006-01-02", in.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid endDate: %w", err)
	}

	category := in.Category
	if category == "" {
		category = "domestic"
	}
	status := domain.TourStatus(in.Status)
	if status == "" {
		status = domain.TourActive
	}
	duration := in.Duration
	if duration == 0 {
		duration = int(end.Sub(start).Hours()/24) + 1
	}
	images := in.Images
	if images == nil {
		images = []string{}
	}

	return &domain.Tour{
		Name:           in.Name,
		Departure:      in.Departure,
		Destination:    in.Destination,
		Category:       category,
		Country:        in.Country,
		Itinerary:      in.Itinerary,
		StartDate:      start,
		EndDate:        end,
		Duration:       duration,
		Transportation: in.Transportation,
		Price:          in.Price,
		TotalSlots:     in.TotalSlots,
		Images:         images,
		Status:         status,
		Featured:       in.Featured,
	}, nil
}
