package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// tableFor maps a party kind to its backing table. Customers and employees
// are disjoint collections with identical shapes.
func tableFor(kind domain.PartyKind) string {
	if kind == domain.PartyEmployee {
		return "employees"
	}
	return "customers"
}

const userColumns = `id, code, full_name, date_of_birth, address, phone_number, email, password_hash, role, created_at`

func (r *UserRepository) Create(ctx context.Context, kind domain.PartyKind, user *domain.User) error {
	query := fmt.Sprintf(`
	INSERT INTO %s (id, code, full_name, date_of_birth, address, phone_number, email, password_hash, role)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, tableFor(kind))

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Code, user.FullName, user.DateOfBirth, user.Address,
		user.PhoneNumber, user.Email, user.PasswordHash, user.Role,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, kind domain.PartyKind, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE email = $1`, userColumns, tableFor(kind))
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) FindByID(ctx context.Context, kind domain.PartyKind, id uuid.UUID) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, userColumns, tableFor(kind))
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) FindAdmin(ctx context.Context) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM employees WHERE role = 'admin' ORDER BY created_at LIMIT 1`, userColumns)
	return r.scanUser(r.db.QueryRowContext(ctx, query))
}

func (r *UserRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Code, &u.FullName, &u.DateOfBirth, &u.Address,
		&u.PhoneNumber, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
