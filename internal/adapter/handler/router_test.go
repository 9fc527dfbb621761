package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/phuocthien2304/TourManagement/internal/adapter/handler"
	"github.com/phuocthien2304/TourManagement/internal/adapter/ws"
	"github.com/phuocthien2304/TourManagement/internal/core/ports/mocks"
	"github.com/phuocthien2304/TourManagement/internal/core/services"
)

func fullRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	redisClient, _ := redismock.NewClientMock()
	tourRepo := mocks.NewTourRepository(t)
	bookingRepo := mocks.NewBookingRepository(t)
	userRepo := mocks.NewUserRepository(t)
	notificationRepo := mocks.NewNotificationRepository(t)
	reviewRepo := mocks.NewReviewRepository(t)
	statsRepo := mocks.NewStatsRepository(t)

	presence := services.NewPresenceRegistry()
	notificationService := services.NewNotificationService(notificationRepo, presence)
	authService := services.NewAuthService(userRepo, "test-secret", time.Hour)

	return handler.NewRouter(
		handler.NewMiddleware(authService),
		handler.NewAuthHandler(authService),
		handler.NewTourHandler(services.NewTourService(tourRepo, redisClient)),
		handler.NewBookingHandler(services.NewBookingService(tourRepo, bookingRepo, userRepo, notificationService, redisClient)),
		handler.NewReviewHandler(services.NewReviewService(reviewRepo, bookingRepo, tourRepo, userRepo, notificationService, redisClient)),
		handler.NewNotificationHandler(notificationService),
		handler.NewStatsHandler(services.NewStatsService(statsRepo)),
		ws.NewHub(presence),
	)
}

func TestRouter_HealthCheck(t *testing.T) {
	router := fullRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tour Management API is running!")
}

func TestRouter_DiscoveryRoutesMounted(t *testing.T) {
	router := fullRouter(t)

	// Static catalog segments must resolve ahead of the :id parameter.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tours/by-destination", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Destination parameter is required")

	// Recommendations sit behind authentication.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/tours/recommendations", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
