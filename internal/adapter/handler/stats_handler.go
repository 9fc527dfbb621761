package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/phuocthien2304/TourManagement/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Bookings handles GET /api/statistics/bookings (admin only). Optional
// startDate/endDate query params bound the reporting window; either side may
// be supplied on its own.
func (h *StatsHandler) Bookings(c *gin.Context) {
	var from, to *time.Time
	if v, err := time.Parse("2006-01-02", c.Query("startDate")); err == nil {
		from = &v
	}
	if v, err := time.Parse("2006-01-02", c.Query("endDate")); err == nil {
		end := v.AddDate(0, 0, 1)
		to = &end
	}

	stats, err := h.svc.BookingStats(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// TopTours handles GET /api/statistics/tours (admin only).
func (h *StatsHandler) TopTours(c *gin.Context) {
	tours, err := h.svc.TopTours(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tours)
}
