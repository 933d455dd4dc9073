package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL,
	name          TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS donors (
	id                 TEXT PRIMARY KEY,
	name               TEXT NOT NULL,
	age                INTEGER NOT NULL,
	blood_type         TEXT NOT NULL,
	last_donation_date DATE,
	phone              TEXT NOT NULL,
	email              TEXT NOT NULL,
	created_at         TIMESTAMPTZ NOT NULL,
	updated_at         TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS blood_requests (
	id             TEXT PRIMARY KEY,
	hospital_name  TEXT NOT NULL,
	blood_type     TEXT NOT NULL,
	units          INTEGER NOT NULL,
	urgency        TEXT NOT NULL,
	reason         TEXT NOT NULL DEFAULT '',
	contact_person TEXT NOT NULL,
	phone          TEXT NOT NULL,
	status         TEXT NOT NULL,
	created_by     TEXT NOT NULL DEFAULT '',
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_donors_blood_type ON donors (blood_type);
CREATE INDEX IF NOT EXISTS idx_donors_created_at ON donors (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_requests_status ON blood_requests (status);
CREATE INDEX IF NOT EXISTS idx_requests_hospital ON blood_requests (hospital_name);
CREATE INDEX IF NOT EXISTS idx_requests_created_by ON blood_requests (created_by);
CREATE INDEX IF NOT EXISTS idx_requests_created_at ON blood_requests (created_at DESC);
`

// EnsureSchema creates the tables and indexes if they do not exist yet.
// Safe to run on every startup.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
