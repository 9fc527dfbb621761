package database

import "database/sql"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL,
		date_of_birth TIMESTAMPTZ NOT NULL,
		address TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'customer',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id UUID PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL,
		date_of_birth TIMESTAMPTZ NOT NULL,
		address TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'admin',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS tours (
		id UUID PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		departure TEXT NOT NULL,
		destination TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT 'domestic',
		country TEXT NOT NULL DEFAULT '',
		itinerary TEXT NOT NULL DEFAULT '',
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		duration INT NOT NULL DEFAULT 1,
		transportation TEXT NOT NULL DEFAULT '',
		price NUMERIC(14,2) NOT NULL,
		available_slots INT NOT NULL CHECK (available_slots >= 0),
		total_slots INT NOT NULL CHECK (total_slots >= 0),
		images TEXT[] NOT NULL DEFAULT '{}',
		status TEXT NOT NULL DEFAULT 'active',
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		rating NUMERIC(3,2) NOT NULL DEFAULT 0,
		review_count INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (available_slots <= total_slots)
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		customer_id UUID NOT NULL REFERENCES customers(id),
		tour_id UUID NOT NULL REFERENCES tours(id),
		number_of_people INT NOT NULL CHECK (number_of_people > 0),
		total_amount NUMERIC(14,2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id UUID PRIMARY KEY,
		recipient_kind TEXT NOT NULL,
		recipient_id UUID NOT NULL,
		sender_kind TEXT NOT NULL,
		sender_id UUID NOT NULL,
		type TEXT NOT NULL,
		message TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT FALSE,
		link TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id UUID PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		customer_id UUID NOT NULL REFERENCES customers(id),
		tour_id UUID NOT NULL REFERENCES tours(id),
		rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (customer_id, tour_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_customer ON bookings(customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings(status)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_recipient ON notifications(recipient_kind, recipient_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tours_destination ON tours(destination)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_tour ON reviews(tour_id)`,
}

// Migrate applies the schema idempotently at startup.
func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
