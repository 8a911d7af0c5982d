package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AccountKind determines which route group and table an identity belongs to.
type AccountKind string

const (
	AccountKindPatient AccountKind = "patient"
	AccountKindDoctor  AccountKind = "doctor"
)

// Valid reports whether the kind is one of the known account kinds.
func (k AccountKind) Valid() bool {
	return k == AccountKindPatient || k == AccountKindDoctor
}

// Patient is a registered patient account. PasswordHash is a bcrypt hash;
// plaintext passwords are never stored or logged.
type Patient struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Doctor is a registered doctor account plus its directory listing fields.
type Doctor struct {
	ID              uuid.UUID      `json:"id" db:"id"`
	Name            string         `json:"name" db:"name"`
	Email           string         `json:"email" db:"email"`
	Phone           string         `json:"phone" db:"phone"`
	Specialization  string         `json:"specialty" db:"specialization"`
	Location        string         `json:"location" db:"location"`
	Hospital        string         `json:"hospital" db:"hospital"`
	Insurance       pq.StringArray `json:"insurance" db:"insurance"`
	Rating          float64        `json:"rating" db:"rating"`
	YearsExperience int            `json:"yearsExperience" db:"years_experience"`
	AvailableDays   string         `json:"availableDays" db:"available_days"`
	PricePerMinute  float64        `json:"pricePerMinute" db:"price_per_minute"`
	PasswordHash    string         `json:"-" db:"password_hash"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
}

// DoctorFilters narrows the public directory listing. Empty fields match
// everything.
type DoctorFilters struct {
	Location  string
	Specialty string
	Insurance string
}

// SessionAccount is the identity a successful login or registration returns.
type SessionAccount struct {
	ID    uuid.UUID   `json:"id"`
	Kind  AccountKind `json:"kind"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
}
