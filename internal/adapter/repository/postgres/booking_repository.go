package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
	"github.com/phuocthien2304/TourManagement/internal/core/ports"
)

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
	INSERT INTO bookings (id, code, customer_id, tour_id, number_of_people, total_amount, status, notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID, booking.Code, booking.CustomerID, booking.TourID,
		booking.NumberOfPeople, booking.TotalAmount, booking.Status, booking.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

const bookingSelect = `
	SELECT b.id, b.code, b.customer_id, b.tour_id, b.number_of_people, b.total_amount,
		b.status, b.notes, b.created_at, b.updated_at,
		t.id, t.code, t.name, t.departure, t.destination, t.price,
		t.available_slots, t.total_slots, t.start_date, t.end_date,
		c.id, c.code, c.full_name, c.email, c.phone_number
	FROM bookings b
	JOIN tours t ON t.id = b.tour_id
	JOIN customers c ON c.id = b.customer_id
`

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	var b domain.Booking
	var t domain.Tour
	var c domain.User

	err := row.Scan(
		&b.ID, &b.Code, &b.CustomerID, &b.TourID, &b.NumberOfPeople, &b.TotalAmount,
		&b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
		&t.ID, &t.Code, &t.Name, &t.Departure, &t.Destination, &t.Price,
		&t.AvailableSlots, &t.TotalSlots, &t.StartDate, &t.EndDate,
		&c.ID, &c.Code, &c.FullName, &c.Email, &c.PhoneNumber,
	)
	if err != nil {
		return nil, err
	}

	c.Role = domain.RoleCustomer
	b.Tour = &t
	b.Customer = &c
	return &b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	booking, err := scanBooking(r.db.QueryRowContext(ctx, bookingSelect+` WHERE b.id = $1`, bookingID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error) {
	query := bookingSelect + ` WHERE b.customer_id = $1 ORDER BY b.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) List(ctx context.Context, filter ports.BookingFilter) ([]domain.Booking, int64, error) {
	where := ""
	args := []any{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where = fmt.Sprintf(" WHERE b.status = $%d", len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM bookings b` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit)
	limitPos := len(args)
	args = append(args, (filter.Page-1)*filter.Limit)
	offsetPos := len(args)

	query := fmt.Sprintf("%s%s ORDER BY b.created_at DESC LIMIT $%d OFFSET $%d",
		bookingSelect, where, limitPos, offsetPos)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings, err := collectBookings(rows)
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, bookingID, status)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) HasPaidBooking(ctx context.Context, customerID, tourID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM bookings WHERE customer_id = $1 AND tour_id = $2 AND status = 'paid')`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, customerID, tourID).Scan(&exists)
	return exists, err
}

func collectBookings(rows *sql.Rows) ([]domain.Booking, error) {
	var bookings []domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *booking)
	}
	return bookings, rows.Err()
}
