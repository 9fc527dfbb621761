package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// HTTP
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	// DB
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:""`
	DBName     string `envconfig:"DB_NAME" default:"tour_management"`
	// Redis
	RedisAddr string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" default:"your-secret-key"`
	JWTExpireHrs int    `envconfig:"JWT_EXPIRE_HRS" default:"168"`
	// Tracing
	OTelEnabled bool `envconfig:"OTEL_ENABLED" default:"false"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
