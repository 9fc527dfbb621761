package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/phuocthien2304/TourManagement/internal/adapter/handler"
	"github.com/phuocthien2304/TourManagement/internal/core/domain"
	"github.com/phuocthien2304/TourManagement/internal/core/ports/mocks"
	"github.com/phuocthien2304/TourManagement/internal/core/services"
)

func protectedRouter(mw *handler.Middleware, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := append([]gin.HandlerFunc{mw.Authenticated()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, handler.CurrentUser(c))
	})
	router.GET("/protected", handlers...)
	return router
}

func TestAuthenticated_Fail_MissingToken(t *testing.T) {
	mockUserRepo := mocks.NewUserRepository(t)
	auth := services.NewAuthService(mockUserRepo, "test-secret", time.Hour)
	router := protectedRouter(handler.NewMiddleware(auth))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token")
}

func TestAuthenticated_Fail_GarbageToken(t *testing.T) {
	mockUserRepo := mocks.NewUserRepository(t)
	auth := services.NewAuthService(mockUserRepo, "test-secret", time.Hour)
	router := protectedRouter(handler.NewMiddleware(auth))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token is not valid")
}

func TestAuthenticated_Success(t *testing.T) {
	mockUserRepo := mocks.NewUserRepository(t)
	auth := services.NewAuthService(mockUserRepo, "test-secret", time.Hour)
	router := protectedRouter(handler.NewMiddleware(auth))

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	customer := &domain.User{
		ID:           uuid.New(),
		Email:        "a@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}

	mockUserRepo.On("FindByEmail", mock.Anything, domain.PartyCustomer, "a@example.com").
		Return(customer, nil)
	mockUserRepo.On("FindByID", mock.Anything, domain.PartyCustomer, customer.ID).
		Return(customer, nil)

	result, err := auth.Login(context.Background(), services.LoginRequest{
		Email:    "a@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), customer.ID.String())
}

func TestRequireAdmin_Fail_Customer(t *testing.T) {
	mockUserRepo := mocks.NewUserRepository(t)
	auth := services.NewAuthService(mockUserRepo, "test-secret", time.Hour)
	mw := handler.NewMiddleware(auth)
	router := protectedRouter(mw, mw.RequireAdmin())

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	customer := &domain.User{
		ID:           uuid.New(),
		Email:        "a@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}

	mockUserRepo.On("FindByEmail", mock.Anything, domain.PartyCustomer, "a@example.com").
		Return(customer, nil)
	mockUserRepo.On("FindByID", mock.Anything, domain.PartyCustomer, customer.ID).
		Return(customer, nil)

	result, err := auth.Login(context.Background(), services.LoginRequest{
		Email:    "a@example.com",
		Password: "secret123",
	})
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+result.Token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin only")
}
