package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
	"github.com/phuocthien2304/TourManagement/internal/core/ports"
	"github.com/phuocthien2304/TourManagement/internal/core/services"
)

type ReviewHandler struct {
	svc *services.ReviewService
}

func NewReviewHandler(svc *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// Create handles POST /api/reviews (customer only).
func (h *ReviewHandler) Create(c *gin.Context) {
	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	review, err := h.svc.Create(c.Request.Context(), CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// ListByTour handles GET /api/reviews/tour/:tourId (public, approved only).
func (h *ReviewHandler) ListByTour(c *gin.Context) {
	reviews, err := h.svc.ListByTour(c.Request.Context(), c.Param("tourId"))
	if err != nil {
		respondError(c, err)
		return
	}

	if reviews == nil {
		reviews = []domain.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// List handles GET /api/reviews (admin moderation queue).
func (h *ReviewHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := ports.ReviewFilter{
		Status: domain.ReviewStatus(c.Query("status")),
		Page:   page,
		Limit:  limit,
	}

	result, err := h.svc.ListAll(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Reviews == nil {
		result.Reviews = []domain.Review{}
	}
	c.JSON(http.StatusOK, result)
}

// UpdateStatus handles PUT /api/reviews/:id/status (admin only).
func (h *ReviewHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	status := domain.ReviewStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid review status"})
		return
	}

	review, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}
