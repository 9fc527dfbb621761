package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
)

type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) BookingStats(ctx context.Context, from, to *time.Time) (*domain.BookingStats, error) {
	rangeClause := ""
	args := []any{}
	if from != nil {
		args = append(args, *from)
		rangeClause += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		rangeClause += fmt.Sprintf(" AND created_at < $%d", len(args))
	}

	stats := &domain.BookingStats{BookingsByMonth: []domain.MonthlyBookingStat{}}

	countQuery := `SELECT COUNT(*) FROM bookings WHERE status IN ('confirmed', 'paid')` + rangeClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&stats.TotalBookings); err != nil {
		return nil, err
	}

	revenueQuery := `SELECT COALESCE(SUM(total_amount), 0) FROM bookings WHERE status = 'paid'` + rangeClause
	if err := r.db.QueryRowContext(ctx, revenueQuery, args...).Scan(&stats.TotalRevenue); err != nil {
		return nil, err
	}

	monthlyQuery := `
	SELECT EXTRACT(YEAR FROM created_at)::int AS year,
		EXTRACT(MONTH FROM created_at)::int AS month,
		COUNT(*),
		COALESCE(SUM(total_amount), 0)
	FROM bookings
	WHERE status IN ('confirmed', 'paid')` + rangeClause + `
	GROUP BY year, month
	ORDER BY year, month
	`

	rows, err := r.db.QueryContext(ctx, monthlyQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var m domain.MonthlyBookingStat
		if err := rows.Scan(&m.Year, &m.Month, &m.Count, &m.Revenue); err != nil {
			return nil, err
		}
		stats.BookingsByMonth = append(stats.BookingsByMonth, m)
	}
	return stats, rows.Err()
}

func (r *StatsRepository) TopTours(ctx context.Context, limit int) ([]domain.TourStat, error) {
	query := `
	SELECT t.code, t.name, COUNT(*), COALESCE(SUM(b.total_amount), 0)
	FROM bookings b
	JOIN tours t ON t.id = b.tour_id
	WHERE b.status IN ('confirmed', 'paid')
	GROUP BY t.id, t.code, t.name
	ORDER BY COUNT(*) DESC
	LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.TourStat
	for rows.Next() {
		var s domain.TourStat
		if err := rows.Scan(&s.TourID, &s.TourName, &s.BookingCount, &s.TotalRevenue); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
