package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
	"github.com/phuocthien2304/TourManagement/internal/core/ports"
)

type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
	INSERT INTO reviews (id, code, customer_id, tour_id, rating, comment, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		review.ID, review.Code, review.CustomerID, review.TourID,
		review.Rating, review.Comment, review.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	query := `
	SELECT id, code, customer_id, tour_id, rating, comment, status, created_at
	FROM reviews
	WHERE id = $1
	`

	var review domain.Review
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&review.ID, &review.Code, &review.CustomerID, &review.TourID,
		&review.Rating, &review.Comment, &review.Status, &review.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) ListApprovedByTour(ctx context.Context, tourID uuid.UUID) ([]domain.Review, error) {
	query := `
	SELECT r.id, r.code, r.customer_id, r.tour_id, r.rating, r.comment, r.status, r.created_at,
		c.full_name
	FROM reviews r
	JOIN customers c ON c.id = r.customer_id
	WHERE r.tour_id = $1 AND r.status = 'approved'
	ORDER BY r.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, tourID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID, &review.Code, &review.CustomerID, &review.TourID,
			&review.Rating, &review.Comment, &review.Status, &review.CreatedAt,
			&review.CustomerName,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) List(ctx context.Context, filter ports.ReviewFilter) ([]domain.Review, int64, error) {
	where := ""
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where = fmt.Sprintf(" WHERE r.status = $%d", len(args))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews r`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit)
	limitPos := len(args)
	args = append(args, (filter.Page-1)*filter.Limit)
	offsetPos := len(args)

	query := fmt.Sprintf(`
	SELECT r.id, r.code, r.customer_id, r.tour_id, r.rating, r.comment, r.status, r.created_at,
		c.full_name
	FROM reviews r
	JOIN customers c ON c.id = r.customer_id
	%s
	ORDER BY r.created_at DESC LIMIT $%d OFFSET $%d`, where, limitPos, offsetPos)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID, &review.Code, &review.CustomerID, &review.TourID,
			&review.Rating, &review.Comment, &review.Status, &review.CreatedAt,
			&review.CustomerName,
		); err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, review)
	}
	return reviews, total, rows.Err()
}

func (r *ReviewRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ReviewStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE reviews SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepository) ExistsForCustomer(ctx context.Context, customerID, tourID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM reviews WHERE customer_id = $1 AND tour_id = $2)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, customerID, tourID).Scan(&exists)
	return exists, err
}
