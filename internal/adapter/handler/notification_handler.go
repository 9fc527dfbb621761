package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
	"github.com/phuocthien2304/TourManagement/internal/core/services"
)

type NotificationHandler struct {
	svc *services.NotificationService
}

func NewNotificationHandler(svc *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	user := CurrentUser(c)

	notifications, err := h.svc.ListForUser(c.Request.Context(), domain.PartyRef{Kind: user.Kind(), ID: user.ID})
	if err != nil {
		respondError(c, err)
		return
	}

	if notifications == nil {
		notifications = []domain.Notification{}
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkRead handles PUT /api/notifications/:id/read. Only the recipient may
// acknowledge their own notification.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Notification not found"})
		return
	}

	user := CurrentUser(c)
	notification, err := h.svc.MarkRead(c.Request.Context(), id, domain.PartyRef{Kind: user.Kind(), ID: user.ID})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}
