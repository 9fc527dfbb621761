package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phuocthien2304/TourManagement/internal/core/domain"
)

// respondError maps domain errors onto the API's conventional status codes.
// Anything unrecognized is a server error and only its presence is exposed.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTourNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Tour not found"})
	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
	case errors.Is(err, domain.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Notification not found"})
	case errors.Is(err, domain.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Review not found"})
	case errors.Is(err, domain.ErrInsufficientSlots):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Not enough available slots"})
	case errors.Is(err, domain.ErrIllegalTransition):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Illegal booking status transition"})
	case errors.Is(err, domain.ErrNotRecipient):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, domain.ErrAlreadyReviewed):
		c.JSON(http.StatusBadRequest, gin.H{"message": "You have already reviewed this tour"})
	case errors.Is(err, domain.ErrReviewNotAllowed):
		c.JSON(http.StatusBadRequest, gin.H{"message": "You can only review tours you have completed"})
	default:
		log.Printf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
