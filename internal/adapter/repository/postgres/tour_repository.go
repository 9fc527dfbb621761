package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
)

type TourRepository struct {
	db *sql.DB
}

func NewTourRepository(db *sql.DB) *TourRepository {
	return &TourRepository{db: db}
}

const tourColumns = `id, code, name, departure, destination, category, country, itinerary,
	start_date, end_date, duration, transportation, price, available_slots, total_slots,
	images, status, featured, rating, review_count, created_at, updated_at`

func scanTour(row interface{ Scan(...any) error }) (*domain.Tour, error) {
	var t domain.Tour
	err := row.Scan(
		&t.ID,
		&t.Code,
		&t.Name,
		&t.Departure,
		&t.Destination,
		&t.Category,
		&t.Country,
		&t.Itinerary,
		&t.StartDate,
		&t.EndDate,
		&t.Duration,
		&t.Transportation,
		&t.Price,
		&t.AvailableSlots,
		&t.TotalSlots,
		pq.Array(&t.Images),
		&t.Status,
		&t.Featured,
		&t.Rating,
		&t.ReviewCount,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TourRepository) Create(ctx context.Context, tour *domain.Tour) error {
	query := `
	INSERT INTO tours (id, code, name, departure, destination, category, country, itinerary,
		start_date, end_date, duration, transportation, price, available_slots, total_slots,
		images, status, featured)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.db.ExecContext(ctx, query,
		tour.ID, tour.Code, tour.Name, tour.Departure, tour.Destination, tour.Category,
		tour.Country, tour.Itinerary, tour.StartDate, tour.EndDate, tour.Duration,
		tour.Transportation, tour.Price, tour.AvailableSlots, tour.TotalSlots,
		pq.Array(tour.Images), tour.Status, tour.Featured,
	)
	if err != nil {
		return fmt.Errorf("failed to insert tour: %w", err)
	}
	return nil
}

// Update edits tour fields. available_slots is clamped to the new
// total_slots inside the same statement, so shrinking the capacity can never
// leave available above total and no read-modify-write is involved.
func (r *TourRepository) Update(ctx context.Context, tour *domain.Tour) error {
	query := `
	UPDATE tours
	SET name = $2,
		departure = $3,
		destination = $4,
		category = $5,
		country = $6,
		itinerary = $7,
		start_date = $8,
		end_date = $9,
		duration = $10,
		transportation = $11,
		price = $12,
		total_slots = $13,
		available_slots = LEAST(available_slots, $13),
		images = $14,
		status = $15,
		featured = $16,
		updated_at = NOW()
	WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		tour.ID, tour.Name, tour.Departure, tour.Destination, tour.Category, tour.Country,
		tour.Itinerary, tour.StartDate, tour.EndDate, tour.Duration, tour.Transportation,
		tour.Price, tour.TotalSlots, pq.Array(tour.Images), tour.Status, tour.Featured,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrTourNotFound
	}
	return nil
}

func (r *TourRepository) Delete(ctx context.Context, tourID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tours WHERE id = $1`, tourID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrTourNotFound
	}
	return nil
}

func (r *TourRepository) GetByID(ctx context.Context, tourID uuid.UUID) (*domain.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours WHERE id = $1`

	tour, err := scanTour(r.db.QueryRowContext(ctx, query, tourID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrTourNotFound
		}
		return nil, err
	}
	return tour, nil
}

// tourSortClauses whitelists the catalog sort keys; filter input never
// reaches the ORDER BY directly.
var tourSortClauses = map[string]string{
	"price-asc":   "price ASC",
	"price-desc":  "price DESC",
	"date-asc":    "start_date ASC",
	"date-desc":   "start_date DESC",
	"name-asc":    "name ASC",
	"name-desc":   "name DESC",
	"rating-desc": "rating DESC, review_count DESC",
	"featured":    "featured DESC, created_at DESC",
}

func (r *TourRepository) List(ctx context.Context, filter domain.TourFilter) ([]domain.Tour, int64, error) {
	where := `WHERE status = 'active'`
	args := []any{}

	if filter.Destination != "" {
		args = append(args, "%"+filter.Destination+"%")
		where += fmt.Sprintf(" AND destination ILIKE $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		args = append(args, *filter.StartDate)
		where += fmt.Sprintf(" AND start_date >= $%d", len(args))
		args = append(args, *filter.EndDate)
		where += fmt.Sprintf(" AND start_date <= $%d", len(args))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		where += fmt.Sprintf(" AND price >= $%d", len(args))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		where += fmt.Sprintf(" AND price <= $%d", len(args))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tours `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy, ok := tourSortClauses[filter.SortBy]
	if !ok {
		orderBy = "created_at DESC"
	}

	args = append(args, filter.Limit)
	limitPos := len(args)
	args = append(args, (filter.Page-1)*filter.Limit)
	offsetPos := len(args)

	query := fmt.Sprintf(`SELECT %s FROM tours %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		tourColumns, where, orderBy, limitPos, offsetPos)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var tours []domain.Tour
	for rows.Next() {
		tour, err := scanTour(rows)
		if err != nil {
			return nil, 0, err
		}
		tours = append(tours, *tour)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return tours, total, nil
}

// ListRelated suggests alternatives for a tour detail page: bookable tours
// at the same destination, newest first, excluding the tour being viewed.
func (r *TourRepository) ListRelated(ctx context.Context, excludeID uuid.UUID, destination string, limit int) ([]domain.Tour, error) {
	query := fmt.Sprintf(`
	SELECT %s FROM tours
	WHERE id != $1
		AND destination ILIKE $2
		AND status = 'active'
		AND available_slots > 0
	ORDER BY created_at DESC
	LIMIT $3`, tourColumns)

	rows, err := r.db.QueryContext(ctx, query, excludeID, "%"+destination+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTours(rows)
}

func (r *TourRepository) PopularDestinations(ctx context.Context, category string, limit int) ([]domain.DestinationStat, error) {
	where := `WHERE status = 'active' AND available_slots > 0`
	args := []any{}

	if category != "" {
		args = append(args, category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}

	args = append(args, limit)
	query := fmt.Sprintf(`
	SELECT destination,
		MIN(country),
		COUNT(*) AS tour_count,
		ROUND(MIN(price)),
		ROUND(MAX(price)),
		ROUND(AVG(price)),
		ROUND(AVG(rating)::numeric, 1) AS avg_rating,
		SUM(review_count),
		COALESCE(MIN(images[1]), '')
	FROM tours
	%s
	GROUP BY destination
	ORDER BY tour_count DESC, avg_rating DESC
	LIMIT $%d`, where, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []domain.DestinationStat
	for rows.Next() {
		var s domain.DestinationStat
		if err := rows.Scan(
			&s.Destination, &s.Country, &s.TourCount, &s.MinPrice, &s.MaxPrice,
			&s.AvgPrice, &s.AvgRating, &s.TotalReviews, &s.SampleImage,
		); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *TourRepository) ListRecommended(ctx context.Context, filter domain.RecommendationFilter) ([]domain.Tour, error) {
	where := `WHERE status = 'active' AND available_slots > 0`
	args := []any{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		where += fmt.Sprintf(" AND price <= $%d", len(args))
	}

	args = append(args, filter.Limit)
	query := fmt.Sprintf(`
	SELECT %s FROM tours
	%s
	ORDER BY featured DESC, rating DESC, review_count DESC, created_at DESC
	LIMIT $%d`, tourColumns, where, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTours(rows)
}

func collectTours(rows *sql.Rows) ([]domain.Tour, error) {
	var tours []domain.Tour
	for rows.Next() {
		tour, err := scanTour(rows)
		if err != nil {
			return nil, err
		}
		tours = append(tours, *tour)
	}
	return tours, rows.Err()
}

// ReserveSlots is the ledger's single serialization point: the availability
// check and the decrement happen in one conditional UPDATE, so concurrent
// reservations against the same tour cannot both act on a stale count.
func (r *TourRepository) ReserveSlots(ctx context.Context, tourID uuid.UUID, count int) error {
	query := `
	UPDATE tours
	SET available_slots = available_slots - $2,
		updated_at = NOW()
	WHERE id = $1 AND available_slots >= $2
	`

	result, err := r.db.ExecContext(ctx, query, tourID, count)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM tours WHERE id = $1)`, tourID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrTourNotFound
		}
		return domain.ErrInsufficientSlots
	}
	return nil
}

// ReleaseSlots returns slots to the pool, clamped to total_slots so that a
// duplicate release cannot corrupt the counter.
func (r *TourRepository) ReleaseSlots(ctx context.Context, tourID uuid.UUID, count int) error {
	query := `
	UPDATE tours
	SET available_slots = LEAST(available_slots + $2, total_slots),
		updated_at = NOW()
	WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, tourID, count)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrTourNotFound
	}
	return nil
}

func (r *TourRepository) RefreshRating(ctx context.Context, tourID uuid.UUID) error {
	query := `
	UPDATE tours
	SET rating = COALESCE(sub.avg_rating, 0),
		review_count = COALESCE(sub.cnt, 0),
		updated_at = NOW()
	FROM (
		SELECT AVG(rating)::numeric(3,2) AS avg_rating, COUNT(*) AS cnt
		FROM reviews
		WHERE tour_id = $1 AND status = 'approved'
	) sub
	WHERE tours.id = $1
	`

	_, err := r.db.ExecContext(ctx, query, tourID)
	return err
}
