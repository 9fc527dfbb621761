package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
	"github.com/phuocthien2304/TourManagement/internal/core/ports"
	"github.com/phuocthien2304/TourManagement/internal/core/services"
)

type BookingHandler struct {
	svc *services.BookingService
}

func NewBookingHandler(svc *services.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// Create handles POST /api/bookings (customer only).
func (h *BookingHandler) Create(c *gin.Context) {
	var req services.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	booking, err := h.svc.Create(c.Request.Context(), CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// MyBookings handles GET /api/bookings/my-bookings.
func (h *BookingHandler) MyBookings(c *gin.Context) {
	bookings, err := h.svc.ListMine(c.Request.Context(), CurrentUser(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}

	if bookings == nil {
		bookings = []domain.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// List handles GET /api/bookings (admin only).
func (h *BookingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := ports.BookingFilter{
		Status: domain.BookingStatus(c.Query("status")),
		Page:   page,
		Limit:  limit,
	}

	result, err := h.svc.ListAll(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Bookings == nil {
		result.Bookings = []domain.Booking{}
	}
	c.JSON(http.StatusOK, result)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PUT /api/bookings/:id/status (admin only).
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	booking, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), domain.BookingStatus(req.Status), CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}
