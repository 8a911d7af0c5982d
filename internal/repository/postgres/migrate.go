package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS patients (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	phone TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS doctors (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	phone TEXT NOT NULL DEFAULT '',
	specialization TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	hospital TEXT NOT NULL DEFAULT '',
	insurance TEXT[] NOT NULL DEFAULT '{}',
	rating DOUBLE PRECISION NOT NULL DEFAULT 0,
	years_experience INT NOT NULL DEFAULT 0,
	available_days TEXT NOT NULL DEFAULT '',
	price_per_minute DOUBLE PRECISION NOT NULL DEFAULT 0,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS appointments (
	id UUID PRIMARY KEY,
	patient_id UUID NOT NULL REFERENCES patients(id),
	doctor_id UUID NOT NULL REFERENCES doctors(id),
	doctor_name TEXT NOT NULL DEFAULT '',
	date TEXT NOT NULL,
	time TEXT NOT NULL,
	reason TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_appointments_patient ON appointments(patient_id);
CREATE INDEX IF NOT EXISTS idx_appointments_doctor ON appointments(doctor_id);

CREATE TABLE IF NOT EXISTS profiles (
	owner_id UUID PRIMARY KEY REFERENCES patients(id),
	name TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	due_date TEXT NOT NULL DEFAULT '',
	weeks_pregnant INT NOT NULL DEFAULT 0,
	doctor TEXT NOT NULL DEFAULT '',
	medical_history JSONB NOT NULL DEFAULT '{}',
	reminders JSONB NOT NULL DEFAULT '[]'
);
`

// Migrate creates the schema if it does not exist yet.
func Migrate(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
