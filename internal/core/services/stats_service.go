package services

import (
	"context"
	"time"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
	"github.com/phuocthien2304/TourManagement/internal/core/ports"
)

type StatsService struct {
	statsRepo ports.StatsRepository
}

func NewStatsService(statsRepo ports.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

func (s *StatsService) BookingStats(ctx context.Context, from, to *time.Time) (*domain.BookingStats, error) {
	return s.statsRepo.BookingStats(ctx, from, to)
}

func (s *StatsService) TopTours(ctx context.Context) ([]domain.TourStat, error) {
	return s.statsRepo.TopTours(ctx, 10)
}
