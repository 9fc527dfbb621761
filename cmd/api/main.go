package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/phuocthien2304/TourManagement/internal/adapter/handler"
	"github.com/phuocthien2304/TourManagement/internal/adapter/repository/postgres"
	"github.com/phuocthien2304/TourManagement/internal/adapter/ws"
	"github.com/phuocthien2304/TourManagement/internal/core/services"
	"github.com/phuocthien2304/TourManagement/internal/platform/config"
	"github.com/phuocthien2304/TourManagement/internal/platform/database"
	"github.com/phuocthien2304/TourManagement/internal/platform/obs"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using OS environment.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.OTelEnabled {
		shutdown := obs.InitTracer("tour-management-api")
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Tracer shutdown failed: %v", err)
			}
		}()
	}

	db, err := database.Connect(database.Config{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
	})
	if err != nil {
		log.Fatalf("Failed to connect to db after retries: %v", err)
	}
	defer db.Close()

	log.Printf("Connecting to Redis at %s...", cfg.RedisAddr)
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   0,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Redis connected successfully!")

	tourRepo := postgres.NewTourRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	userRepo := postgres.NewUserRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	presence := services.NewPresenceRegistry()

	notificationService := services.NewNotificationService(notificationRepo, presence)
	bookingService := services.NewBookingService(tourRepo, bookingRepo, userRepo, notificationService, redisClient)
	tourService := services.NewTourService(tourRepo, redisClient)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.JWTExpireHrs)*time.Hour)
	reviewService := services.NewReviewService(reviewRepo, bookingRepo, tourRepo, userRepo, notificationService, redisClient)
	statsService := services.NewStatsService(statsRepo)

	hub := ws.NewHub(presence)
	mw := handler.NewMiddleware(authService)

	router := handler.NewRouter(
		mw,
		handler.NewAuthHandler(authService),
		handler.NewTourHandler(tourService),
		handler.NewBookingHandler(bookingService),
		handler.NewReviewHandler(reviewService),
		handler.NewNotificationHandler(notificationService),
		handler.NewStatsHandler(statsService),
		hub,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
