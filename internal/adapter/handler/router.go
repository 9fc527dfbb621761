package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/phuocthien2304/TourManagement/internal/adapter/ws"
)

// NewRouter mounts every HTTP route plus the websocket endpoint the live
// notification channel rides on.
func NewRouter(
	mw *Middleware,
	auth *AuthHandler,
	tours *TourHandler,
	bookings *BookingHandler,
	reviews *ReviewHandler,
	notifications *NotificationHandler,
	stats *StatsHandler,
	hub *ws.Hub,
) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware("tour-management-api"))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Tour Management API is running!"})
	})

	router.GET("/ws", hub.Serve)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", auth.Register)
			authGroup.POST("/login", auth.Login)
			authGroup.GET("/me", mw.Authenticated(), auth.Me)
		}

		tourGroup := api.Group("/tours")
		{
			tourGroup.GET("", tours.List)
			tourGroup.GET("/by-destination", tours.ByDestination)
			tourGroup.GET("/popular-destinations", tours.PopularDestinations)
			tourGroup.GET("/recommendations", mw.Authenticated(), tours.Recommendations)
			tourGroup.GET("/:id", tours.Get)
			tourGroup.GET("/:id/related", tours.Related)

			admin := tourGroup.Group("", mw.Authenticated(), mw.RequireAdmin())
			{
				admin.POST("", tours.Create)
				admin.PUT("/:id", tours.Update)
				admin.DELETE("/:id", tours.Delete)
			}
		}

		bookingGroup := api.Group("/bookings", mw.Authenticated())
		{
			bookingGroup.POST("", mw.RequireCustomer(), bookings.Create)
			bookingGroup.GET("/my-bookings", bookings.MyBookings)
			bookingGroup.GET("", mw.RequireAdmin(), bookings.List)
			bookingGroup.PUT("/:id/status", mw.RequireAdmin(), bookings.UpdateStatus)
		}

		reviewGroup := api.Group("/reviews")
		{
			reviewGroup.GET("/tour/:tourId", reviews.ListByTour)
			reviewGroup.POST("", mw.Authenticated(), mw.RequireCustomer(), reviews.Create)
			reviewGroup.GET("", mw.Authenticated(), mw.RequireAdmin(), reviews.List)
			reviewGroup.PUT("/:id/status", mw.Authenticated(), mw.RequireAdmin(), reviews.UpdateStatus)
		}

		notificationGroup := api.Group("/notifications", mw.Authenticated())
		{
			notificationGroup.GET("", notifications.List)
			notificationGroup.PUT("/:id/read", notifications.MarkRead)
		}

		statsGroup := api.Group("/statistics", mw.Authenticated(), mw.RequireAdmin())
		{
			statsGroup.GET("/bookings", stats.Bookings)
			statsGroup.GET("/tours", stats.TopTours)
		}
	}

	return router
}
