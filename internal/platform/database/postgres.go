package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"
)

const (
	connectRetries = 10
	connectBackoff = 2 * time.Second

	// Pool sizing for a single API instance; the booking path holds a
	// connection only for one conditional UPDATE at a time.
	maxOpenConns    = 25
	maxIdleConns    = 25
	connMaxLifetime = 5 * time.Minute
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

func (c Config) dsn() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}

// Connect opens the Postgres pool, waiting for the database to come up,
// tunes the pool, and applies the schema. The retry loop covers the common
// compose case where the API container starts before the database accepts
// connections.
func Connect(cfg Config) (*sql.DB, error) {
	var db *sql.DB
	var err error

	for i := 1; i <= connectRetries; i++ {
		log.Printf("Connecting to database (attempt %d/%d)...", i, connectRetries)
		db, err = sql.Open("postgres", cfg.dsn())
		if err == nil {
			err = db.Ping()
		}
		if err == nil {
			break
		}

		log.Printf("Database not ready yet, retrying in %s...", connectBackoff)
		time.Sleep(connectBackoff)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	log.Println("Database connected successfully!")
	return db, nil
}
