package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/phuocthien2304/TourManagement/internal/core/domain"
	"github.com/phuocthien2304/TourManagement/internal/core/ports"
)

// NotifyInput describes one notification: the durable record fields plus the
// payload for a best-effort live push.
type NotifyInput struct {
	Recipient domain.PartyRef
	Sender    domain.PartyRef
	Type      domain.NotificationType
	Message   string
	Link      string

	// Event and Data shape the live "getNotification" payload. Data should
	// carry enough context for the client to render a toast and navigate
	// (bookingId, tourName, ...).
	Event string
	Data  map[string]any
}

type NotificationService struct {
	notifRepo ports.NotificationRepository
	presence  *PresenceRegistry
}

func NewNotificationService(notifRepo ports.NotificationRepository, presence *PresenceRegistry) *NotificationService {
	return &NotificationService{notifRepo: notifRepo, presence: presence}
}

// Notify persists the notification record first, then attempts live delivery
// to the recipient's registered channel. Persistence failure is the only
// fatal error; an offline recipient or a broken channel is logged and
// swallowed, because the durable record is the fallback.
func (s *NotificationService) Notify(ctx context.Context, in NotifyInput) (*domain.Notification, error) {
	n := &domain.Notification{
		ID:        uuid.New(),
		Recipient: in.Recipient,
		Sender:    in.Sender,
		Type:      in.Type,
		Message:   in.Message,
		Link:      in.Link,
	}

	if err := s.notifRepo.Create(ctx, n); err != nil {
		return nil, err
	}

	entry, online := s.presence.Lookup(in.Recipient.ID)
	if !online {
		log.Printf("notification %s: recipient %s offline, stored only", n.ID, in.Recipient.ID)
		return n, nil
	}

	data := in.Data
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["message"]; !ok {
		data["message"] = in.Message
	}

	payload := map[string]any{
		"type": in.Event,
		"data": data,
	}
	if err := entry.Channel.Send("getNotification", payload); err != nil {
		log.Printf("notification %s: live delivery to %s failed: %v", n.ID, in.Recipient.ID, err)
	}

	return n, nil
}

// ListForUser returns the caller's notifications, newest first, with sender
// display names populated.
func (s *NotificationService) ListForUser(ctx context.Context, recipient domain.PartyRef) ([]domain.Notification, error) {
	return s.notifRepo.ListByRecipient(ctx, recipient)
}

// MarkRead flips the read flag. Only the recipient may acknowledge; a second
// acknowledgement is a no-op, not an error.
func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID, caller domain.PartyRef) (*domain.Notification, error) {
	n, err := s.notifRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if n.Recipient.Kind != caller.Kind || n.Recipient.ID != caller.ID {
		return nil, domain.ErrNotRecipient
	}

	if n.Read {
		return n, nil
	}

	if err := s.notifRepo.MarkRead(ctx, id); err != nil {
		return nil, err
	}

	n.Read = true
	return n, nil
}
