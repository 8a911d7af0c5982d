package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/repository"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// profileRow maps the profiles table; the nested documents live in JSONB
// columns.
type profileRow struct {
	OwnerID        uuid.UUID `db:"owner_id"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	DueDate        string    `db:"due_date"`
	WeeksPregnant  int       `db:"weeks_pregnant"`
	Doctor         string    `db:"doctor"`
	MedicalHistory []byte    `db:"medical_history"`
	Reminders      []byte    `db:"reminders"`
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	history, reminders, err := encodeDocs(profile)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO profiles (owner_id, name, email, due_date, weeks_pregnant, doctor,
			medical_history, reminders)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.ExecContext(ctx, query,
		profile.OwnerID,
		profile.Name,
		profile.Email,
		profile.DueDate,
		profile.WeeksPregnant,
		profile.Doctor,
		history,
		reminders,
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *profileRepository) Get(ctx context.Context, ownerID uuid.UUID) (*model.Profile, error) {
	query := `SELECT * FROM profiles WHERE owner_id = $1`
	var row profileRow
	err := r.db.GetContext(ctx, &row, query, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return decodeRow(&row)
}

func (r *profileRepository) Update(ctx context.Context, profile *model.Profile) error {
	history, reminders, err := encodeDocs(profile)
	if err != nil {
		return err
	}

	query := `
		UPDATE profiles
		SET name = $1, email = $2, due_date = $3, weeks_pregnant = $4, doctor = $5,
			medical_history = $6, reminders = $7
		WHERE owner_id = $8
	`
	res, err := r.db.ExecContext(ctx, query,
		profile.Name,
		profile.Email,
		profile.DueDate,
		profile.WeeksPregnant,
		profile.Doctor,
		history,
		reminders,
		profile.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func encodeDocs(profile *model.Profile) ([]byte, []byte, error) {
	history, err := json.Marshal(profile.MedicalHistory)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode medical history: %w", err)
	}
	if profile.Reminders == nil {
		profile.Reminders = []model.Reminder{}
	}
	reminders, err := json.Marshal(profile.Reminders)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode reminders: %w", err)
	}
	return history, reminders, nil
}

func decodeRow(row *profileRow) (*model.Profile, error) {
	profile := &model.Profile{
		OwnerID:       row.OwnerID,
		Name:          row.Name,
		Email:         row.Email,
		DueDate:       row.DueDate,
		WeeksPregnant: row.WeeksPregnant,
		Doctor:        row.Doctor,
	}
	if err := json.Unmarshal(row.MedicalHistory, &profile.MedicalHistory); err != nil {
		return nil, fmt.Errorf("failed to decode medical history: %w", err)
	}
	if err := json.Unmarshal(row.Reminders, &profile.Reminders); err != nil {
		return nil, fmt.Errorf("failed to decode reminders: %w", err)
	}
	return profile, nil
}
