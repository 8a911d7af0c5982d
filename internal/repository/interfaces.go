package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/shewell/maternity-api/internal/model"
)

// ErrNotFound is returned by repositories when a lookup misses. Services
// translate it into their own taxonomy.
var ErrNotFound = NotFoundError{}

type NotFoundError struct{}

func (NotFoundError) Error() string { return "record not found" }

// PatientRepository stores patient accounts keyed by id with a unique email.
type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	GetByEmail(ctx context.Context, email string) (*model.Patient, error)
}

// DoctorRepository stores doctor accounts and the public directory.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
	GetByEmail(ctx context.Context, email string) (*model.Doctor, error)
	Update(ctx context.Context, doctor *model.Doctor) error
	List(ctx context.Context, filters model.DoctorFilters) ([]*model.Doctor, error)
	Count(ctx context.Context) (int, error)
}

// AppointmentRepository scopes every lookup by patient id so a foreign
// appointment id behaves exactly like a missing one.
type AppointmentRepository interface {
	Create(ctx context.Context, apt *model.Appointment) error
	GetForPatient(ctx context.Context, patientID, id uuid.UUID) (*model.Appointment, error)
	Update(ctx context.Context, apt *model.Appointment) error
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error)
	ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.Appointment, error)
}

// ProfileRepository stores one profile per patient account, reminders
// included.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	Get(ctx context.Context, ownerID uuid.UUID) (*model.Profile, error)
	Update(ctx context.Context, profile *model.Profile) error
}

// ChatHistoryRepository keeps the capped per-account conversation log.
// Append drops the oldest turn once the cap is exceeded; List returns turns
// oldest first.
type ChatHistoryRepository interface {
	Append(ctx context.Context, accountID uuid.UUID, turn model.ChatTurn) error
	List(ctx context.Context, accountID uuid.UUID) ([]model.ChatTurn, error)
	Clear(ctx context.Context, accountID uuid.UUID) error
}
