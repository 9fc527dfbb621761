package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
	"github.com/phuocthien2304/TourManagement/internal/core/services"
)

const userContextKey = "currentUser"

type Middleware struct {
	auth *services.AuthService
}

func NewMiddleware(auth *services.AuthService) *Middleware {
	return &Middleware{auth: auth}
}

// Authenticated resolves the bearer token to a live user record and stores
// it on the context.
func (m *Middleware) Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		user, err := m.auth.UserFromToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func (m *Middleware) RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := CurrentUser(c); user == nil || user.Role != domain.RoleCustomer {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied. Customers only."})
			return
		}
		c.Next()
	}
}

func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := CurrentUser(c); user == nil || user.Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied. Admin only."})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil outside an
// Authenticated route.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}
