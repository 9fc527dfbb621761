package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
	"github.com/phuocthien2304/TourManagement/internal/core/ports/mocks"
	"github.com/phuocthien2304/TourManagement/internal/core/services"
)

func TestNotify_OnlineRecipientGetsLivePush(t *testing.T) {
	mockNotifRepo := mocks.NewNotificationRepository(t)
	presence := services.NewPresenceRegistry()
	service := services.NewNotificationService(mockNotifRepo, presence)

	ctx := context.Background()
	recipientID := uuid.New()

	mockChannel := mocks.NewChannel(t)

	var pushed map[string]any
	mockChannel.On("Send", "getNotification", mock.Anything).Run(func(args mock.Arguments) {
		pushed = args.Get(1).(map[string]any)
	}).Return(nil)

	presence.Register(recipientID, "customer", mockChannel)

	mockNotifRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

	n, err := service.Notify(ctx, services.NotifyInput{
		Recipient: domain.PartyRef{Kind: domain.PartyCustomer, ID: recipientID},
		Sender:    domain.PartyRef{Kind: domain.PartyEmployee, ID: uuid.New()},
		Type:      domain.NotifBookingConfirmation,
		Message:   "Đơn đặt tour của bạn đã được xác nhận.",
		Event:     "booking_status_update",
		Data:      map[string]any{"status": "confirmed"},
	})

	assert.NoError(t, err)
	assert.NotNil(t, n)

	if assert.NotNil(t, pushed) {
		assert.Equal(t, "booking_status_update", pushed["type"])
		data := pushed["data"].(map[string]any)
		assert.Equal(t, "confirmed", data["status"])
		// The message is folded into the live payload when absent.
		assert.Equal(t, "Đơn đặt tour của bạn đã được xác nhận.", data["message"])
	}
}

func TestNotify_OfflineRecipientStoredOnly(t *testing.T) {
	mockNotifRepo := mocks.NewNotificationRepository(t)
	presence := services.NewPresenceRegistry()
	service := services.NewNotificationService(mockNotifRepo, presence)

	ctx := context.Background()

	mockNotifRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

	n, err := service.Notify(ctx, services.NotifyInput{
		Recipient: domain.PartyRef{Kind: domain.PartyCustomer, ID: uuid.New()},
		Sender:    domain.PartyRef{Kind: domain.PartyEmployee, ID: uuid.New()},
		Type:      domain.NotifCancellation,
		Message:   "Đơn đặt tour của bạn đã được hủy.",
		Event:     "booking_status_update",
	})

	assert.NoError(t, err)
	assert.NotNil(t, n)
	assert.False(t, n.Read)
}

func TestNotify_PushFailureDoesNotFail(t *testing.T) {
	mockNotifRepo := mocks.NewNotificationRepository(t)
	presence := services.NewPresenceRegistry()
	service := services.NewNotificationService(mockNotifRepo, presence)

	ctx := context.Background()
	recipientID := uuid.New()

	mockChannel := mocks.NewChannel(t)
	mockChannel.On("Send", "getNotification", mock.Anything).Return(errors.New("connection reset"))
	presence.Register(recipientID, "customer", mockChannel)

	mockNotifRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

	n, err := service.Notify(ctx, services.NotifyInput{
		Recipient: domain.PartyRef{Kind: domain.PartyCustomer, ID: recipientID},
		Type:      domain.NotifSystemUpdate,
		Message:   "Bảo trì hệ thống.",
		Event:     "system_update",
	})

	assert.NoError(t, err)
	assert.NotNil(t, n)
}

func TestNotify_PersistFailureIsFatal(t *testing.T) {
	mockNotifRepo := mocks.NewNotificationRepository(t)
	presence := services.NewPresenceRegistry()
	service := services.NewNotificationService(mockNotifRepo, presence)

	ctx := context.Background()

	mockNotifRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(errors.New("insert failed"))

	n, err := service.Notify(ctx, services.NotifyInput{
		Recipient: domain.PartyRef{Kind: domain.PartyCustomer, ID: uuid.New()},
		Type:      domain.NotifNewBooking,
		Message:   "test",
	})

	assert.Error(t, err)
	assert.Nil(t, n)
}

func TestMarkRead_OnlyRecipientMayAcknowledge(t *testing.T) {
	mockNotifRepo := mocks.NewNotificationRepository(t)
	presence := services.NewPresenceRegistry()
	service := services.NewNotificationService(mockNotifRepo, presence)

	ctx := context.Background()
	recipient := domain.PartyRef{Kind: domain.PartyCustomer, ID: uuid.New()}

	stored := &domain.Notification{
		ID:        uuid.New(),
		Recipient: recipient,
		Type:      domain.NotifBookingConfirmation,
	}

	mockNotifRepo.On("GetByID", ctx, stored.ID).Return(stored, nil)

	someoneElse := domain.PartyRef{Kind: domain.PartyCustomer, ID: uuid.New()}
	n, err := service.MarkRead(ctx, stored.ID, someoneElse)

	assert.ErrorIs(t, err, domain.ErrNotRecipient)
	assert.Nil(t, n)
	mockNotifRepo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
}

func TestMarkRead_Success(t *testing.T) {
	mockNotifRepo := mocks.NewNotificationRepository(t)
	presence := services.NewPresenceRegistry()
	service := services.NewNotificationService(mockNotifRepo, presence)

	ctx := context.Background()
	recipient := domain.PartyRef{Kind: domain.PartyCustomer, ID: uuid.New()}

	stored := &domain.Notification{
		ID:        uuid.New(),
		Recipient: recipient,
		Type:      domain.NotifBookingConfirmation,
	}

	mockNotifRepo.On("GetByID", ctx, stored.ID).Return(stored, nil)
	mockNotifRepo.On("MarkRead", ctx, stored.ID).Return(nil)

	n, err := service.MarkRead(ctx, stored.ID, recipient)

	assert.NoError(t, err)
	if assert.NotNil(t, n) {
		assert.True(t, n.Read)
	}
}

func TestMarkRead_SecondAckIsNoop(t *testing.T) {
	mockNotifRepo := mocks.NewNotificationRepository(t)
	presence := services.NewPresenceRegistry()
	service := services.NewNotificationService(mockNotifRepo, presence)

	ctx := context.Background()
	recipient := domain.PartyRef{Kind: domain.PartyCustomer, ID: uuid.New()}

	stored := &domain.Notification{
		ID:        uuid.New(),
		Recipient: recipient,
		Read:      true,
	}

	mockNotifRepo.On("GetByID", ctx, stored.ID).Return(stored, nil)

	n, err := service.MarkRead(ctx, stored.ID, recipient)

	assert.NoError(t, err)
	assert.True(t, n.Read)
	mockNotifRepo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
}
