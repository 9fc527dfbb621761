package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
)

type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
	INSERT INTO notifications (id, recipient_kind, recipient_id, sender_kind, sender_id, type, message, read, link)
	VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.Recipient.Kind, n.Recipient.ID, n.Sender.Kind, n.Sender.ID,
		n.Type, n.Message, n.Link,
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	query := `
	SELECT id, recipient_kind, recipient_id, sender_kind, sender_id, type, message, read, link, created_at
	FROM notifications
	WHERE id = $1
	`

	var n domain.Notification
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&n.ID, &n.Recipient.Kind, &n.Recipient.ID, &n.Sender.Kind, &n.Sender.ID,
		&n.Type, &n.Message, &n.Read, &n.Link, &n.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}
	return &n, nil
}

// ListByRecipient resolves the sender's display name across both user
// collections: the sender_kind tag picks which join actually matches.
func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipient domain.PartyRef) ([]domain.Notification, error) {
	query := `
	SELECT n.id, n.recipient_kind, n.recipient_id, n.sender_kind, n.sender_id,
		n.type, n.message, n.read, n.link, n.created_at,
		COALESCE(c.full_name, e.full_name, '') AS sender_name
	FROM notifications n
	LEFT JOIN customers c ON n.sender_kind = 'customer' AND n.sender_id = c.id
	LEFT JOIN employees e ON n.sender_kind = 'employee' AND n.sender_id = e.id
	WHERE n.recipient_kind = $1 AND n.recipient_id = $2
	ORDER BY n.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, recipient.Kind, recipient.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(
			&n.ID, &n.Recipient.Kind, &n.Recipient.ID, &n.Sender.Kind, &n.Sender.ID,
			&n.Type, &n.Message, &n.Read, &n.Link, &n.CreatedAt, &n.SenderName,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
