package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/repository"
)

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, apt *model.Appointment) error {
	query := `
		INSERT INTO appointments (id, patient_id, doctor_id, doctor_name, date, time,
			reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	apt.CreatedAt = time.Now()
	apt.UpdatedAt = apt.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		apt.ID,
		apt.PatientID,
		apt.DoctorID,
		apt.DoctorName,
		apt.Date,
		apt.Time,
		apt.Reason,
		apt.Status,
		apt.CreatedAt,
		apt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// GetForPatient deliberately filters on both id and patient_id so an id
// owned by another account is indistinguishable from a missing one.
func (r *appointmentRepository) GetForPatient(ctx context.Context, patientID, id uuid.UUID) (*model.Appointment, error) {
	query := `SELECT * FROM appointments WHERE id = $1 AND patient_id = $2`
	var apt model.Appointment
	err := r.db.GetContext(ctx, &apt, query, id, patientID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &apt, nil
}

func (r *appointmentRepository) Update(ctx context.Context, apt *model.Appointment) error {
	query := `
		UPDATE appointments
		SET date = $1, time = $2, reason = $3, status = $4, updated_at = $5
		WHERE id = $6 AND patient_id = $7
	`
	apt.UpdatedAt = time.Now()
	res, err := r.db.ExecContext(ctx, query,
		apt.Date, apt.Time, apt.Reason, apt.Status, apt.UpdatedAt, apt.ID, apt.PatientID)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *appointmentRepository) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error) {
	query := `SELECT * FROM appointments WHERE patient_id = $1 ORDER BY created_at`
	var apts []*model.Appointment
	if err := r.db.SelectContext(ctx, &apts, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return apts, nil
}

func (r *appointmentRepository) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.Appointment, error) {
	query := `SELECT * FROM appointments WHERE doctor_id = $1 ORDER BY created_at`
	var apts []*model.Appointment
	if err := r.db.SelectContext(ctx, &apts, query, doctorID); err != nil {
		return nil, fmt.Errorf("failed to list doctor appointments: %w", err)
	}
	return apts, nil
}
