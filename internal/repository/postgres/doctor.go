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

type doctorRepository struct {
	db *sqlx.DB
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (id, name, email, phone, specialization, location, hospital,
			insurance, rating, years_experience, available_days, price_per_minute,
			password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	doctor.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		doctor.ID,
		doctor.Name,
		doctor.Email,
		doctor.Phone,
		doctor.Specialization,
		doctor.Location,
		doctor.Hospital,
		doctor.Insurance,
		doctor.Rating,
		doctor.YearsExperience,
		doctor.AvailableDays,
		doctor.PricePerMinute,
		doctor.PasswordHash,
		doctor.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

func (r *doctorRepository) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	query := `SELECT * FROM doctors WHERE id = $1`
	var doctor model.Doctor
	err := r.db.GetContext(ctx, &doctor, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) GetByEmail(ctx context.Context, email string) (*model.Doctor, error) {
	query := `SELECT * FROM doctors WHERE email = $1`
	var doctor model.Doctor
	err := r.db.GetContext(ctx, &doctor, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor by email: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	query := `
		UPDATE doctors
		SET specialization = $1, location = $2, hospital = $3, insurance = $4,
			years_experience = $5, available_days = $6, price_per_minute = $7, phone = $8
		WHERE id = $9
	`
	_, err := r.db.ExecContext(ctx, query,
		doctor.Specialization,
		doctor.Location,
		doctor.Hospital,
		doctor.Insurance,
		doctor.YearsExperience,
		doctor.AvailableDays,
		doctor.PricePerMinute,
		doctor.Phone,
		doctor.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}
	return nil
}

func (r *doctorRepository) List(ctx context.Context, filters model.DoctorFilters) ([]*model.Doctor, error) {
	query := `SELECT * FROM doctors WHERE 1=1`
	args := []interface{}{}

	if filters.Location != "" {
		args = append(args, "%"+filters.Location+"%")
		query += fmt.Sprintf(" AND location ILIKE $%d", len(args))
	}
	if filters.Specialty != "" {
		args = append(args, filters.Specialty)
		query += fmt.Sprintf(" AND specialization = $%d", len(args))
	}
	if filters.Insurance != "" {
		args = append(args, filters.Insurance)
		query += fmt.Sprintf(" AND $%d = ANY(insurance)", len(args))
	}
	query += ` ORDER BY rating DESC`

	var doctors []*model.Doctor
	if err := r.db.SelectContext(ctx, &doctors, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM doctors`); err != nil {
		return 0, fmt.Errorf("failed to count doctors: %w", err)
	}
	return count, nil
}
