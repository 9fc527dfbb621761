package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/phuocthien2304/TourManagement/internal/adapter/handler"
	"github.com/phuocthien2304/TourManagement/internal/core/domain"
	"github.com/phuocthien2304/TourManagement/internal/core/ports/mocks"
	"github.com/phuocthien2304/TourManagement/internal/core/services"
)

func tourRouter(repo *mocks.TourRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	db, _ := redismock.NewClientMock()
	h := handler.NewTourHandler(services.NewTourService(repo, db))

	router := gin.New()
	router.GET("/tours/by-destination", h.ByDestination)
	router.GET("/tours/popular-destinations", h.PopularDestinations)
	router.GET("/tours/:id/related", h.Related)
	return router
}

func TestByDestination_Fail_MissingDestination(t *testing.T) {
	mockTourRepo := mocks.NewTourRepository(t)
	router := tourRouter(mockTourRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tours/by-destination", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Destination parameter is required")
	mockTourRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestByDestination_PassesSortKey(t *testing.T) {
	mockTourRepo := mocks.NewTourRepository(t)
	router := tourRouter(mockTourRepo)

	mockTourRepo.On("List", mock.Anything, domain.TourFilter{
		Destination: "Hội An",
		SortBy:      "price-asc",
		Page:        1,
		Limit:       12,
	}).Return([]domain.Tour{{ID: uuid.New(), Destination: "Hội An"}}, int64(1), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tours/by-destination?destination=H%E1%BB%99i%20An&sortBy=price-asc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hội An")
}

func TestRelated_Fail_MissingDestination(t *testing.T) {
	mockTourRepo := mocks.NewTourRepository(t)
	router := tourRouter(mockTourRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tours/"+uuid.NewString()+"/related", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Destination parameter is required")
}

func TestPopularDestinations_ReturnsStats(t *testing.T) {
	mockTourRepo := mocks.NewTourRepository(t)
	router := tourRouter(mockTourRepo)

	mockTourRepo.On("PopularDestinations", mock.Anything, "", 10).
		Return([]domain.DestinationStat{
			{Destination: "Đà Lạt", Country: "Việt Nam", TourCount: 4, AvgRating: 4.5},
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tours/popular-destinations", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Đà Lạt")
	assert.Contains(t, w.Body.String(), "tourCount")
}
