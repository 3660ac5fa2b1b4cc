package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied idempotently at startup. gen_random_uuid is built in from Postgres 13.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	role          TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('admin', 'user')),
	password_hash TEXT NOT NULL,
	avatar        TEXT NOT NULL DEFAULT '',
	phone         TEXT NOT NULL DEFAULT '',
	date_of_birth TEXT NOT NULL DEFAULT '',
	location      TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS events (
	id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	title             TEXT NOT NULL,
	description       TEXT NOT NULL,
	event_date        TEXT NOT NULL,
	event_time        TEXT NOT NULL,
	location          TEXT NOT NULL,
	max_attendees     INTEGER NOT NULL CHECK (max_attendees >= 0),
	current_attendees INTEGER NOT NULL DEFAULT 0,
	price             DOUBLE PRECISION NOT NULL CHECK (price >= 0),
	image             TEXT NOT NULL,
	category          TEXT NOT NULL,
	organizer         TEXT NOT NULL,
	tags              TEXT[] NOT NULL DEFAULT '{}',
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT events_attendees_within_capacity
		CHECK (current_attendees >= 0 AND current_attendees <= max_attendees)
);

CREATE INDEX IF NOT EXISTS idx_events_category ON events (category);
CREATE INDEX IF NOT EXISTS idx_events_event_date ON events (event_date);

CREATE TABLE IF NOT EXISTS registrations (
	id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	event_id          UUID NOT NULL REFERENCES events (id) ON DELETE CASCADE,
	attendee_name     TEXT NOT NULL,
	attendee_email    TEXT NOT NULL,
	attendee_phone    TEXT NOT NULL,
	registration_date TEXT NOT NULL,
	status            TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('confirmed', 'pending', 'cancelled')),
	ticket_type       TEXT NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT registrations_event_email_key UNIQUE (event_id, attendee_email),
	CONSTRAINT registrations_event_phone_key UNIQUE (event_id, attendee_phone)
);

CREATE INDEX IF NOT EXISTS idx_registrations_attendee_email ON registrations (attendee_email);
CREATE INDEX IF NOT EXISTS idx_registrations_attendee_phone ON registrations (attendee_phone);
CREATE INDEX IF NOT EXISTS idx_registrations_status ON registrations (status);
`

// EnsureSchema creates the tables and indexes if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Open opens a Postgres connection pool and verifies it with a ping.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}
