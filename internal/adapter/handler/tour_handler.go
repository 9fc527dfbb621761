package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
	"github.com/phuocthien2304/TourManagement/internal/core/services"
)

type TourHandler struct {
	svc *services.TourService
}

func NewTourHandler(svc *services.TourService) *TourHandler {
	return &TourHandler{svc: svc}
}

// List handles GET /api/tours (public catalog).
func (h *TourHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := domain.TourFilter{
		Destination: c.Query("destination"),
		Page:        page,
		Limit:       limit,
	}

	if start, err := time.Parse("2006-01-02", c.Query("startDate")); err == nil {
		if end, err := time.Parse("2006-01-02", c.Query("endDate")); err == nil {
			filter.StartDate = &start
			filter.EndDate = &end
		}
	}
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		filter.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		filter.MaxPrice = &v
	}

	result, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Tours == nil {
		result.Tours = []domain.Tour{}
	}
	c.JSON(http.StatusOK, result)
}

// ByDestination handles GET /api/tours/by-destination: the catalog listing
// pinned to one destination, with the extended sort keys.
func (h *TourHandler) ByDestination(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Destination parameter is required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	result, err := h.svc.List(c.Request.Context(), domain.TourFilter{
		Destination: destination,
		Category:    c.Query("category"),
		SortBy:      c.Query("sortBy"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Tours == nil {
		result.Tours = []domain.Tour{}
	}
	c.JSON(http.StatusOK, result)
}

// PopularDestinations handles GET /api/tours/popular-destinations.
func (h *TourHandler) PopularDestinations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	stats, err := h.svc.PopularDestinations(c.Request.Context(), c.Query("category"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": stats})
}

// Recommendations handles GET /api/tours/recommendations for the signed-in
// user.
func (h *TourHandler) Recommendations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))

	filter := domain.RecommendationFilter{
		Category: c.Query("category"),
		Limit:    limit,
	}
	if v, err := strconv.ParseFloat(c.Query("priceMax"), 64); err == nil {
		filter.MaxPrice = &v
	}

	tours, err := h.svc.Recommendations(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": tours})
}

// Get handles GET /api/tours/:id.
func (h *TourHandler) Get(c *gin.Context) {
	tour, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tour)
}

// Related handles GET /api/tours/:id/related: bookable tours at the same
// destination, excluding the one being viewed.
func (h *TourHandler) Related(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Destination parameter is required"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))

	tours, err := h.svc.Related(c.Request.Context(), c.Param("id"), destination, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": tours})
}

// Create handles POST /api/tours (admin only).
func (h *TourHandler) Create(c *gin.Context) {
	var in services.TourInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	tour, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tour)
}

// Update handles PUT /api/tours/:id (admin only).
func (h *TourHandler) Update(c *gin.Context) {
	var in services.TourInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	tour, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tour)
}

// Delete handles DELETE /api/tours/:id (admin only).
func (h *TourHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tour deleted"})
}
