package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/repository"
	apperrors "github.com/shewell/maternity-api/pkg/errors"
)

type Service struct {
	repo repository.ProfileRepository
}

func NewService(repo repository.ProfileRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, accountID uuid.UUID) (*model.Profile, error) {
	profile, err := s.repo.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("profile")
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// Update overwrites each supplied top-level field. medicalHistory merges one
// level deeper: each supplied sub-field is overwritten independently and
// siblings are untouched.
func (s *Service) Update(ctx context.Context, accountID uuid.UUID, patch model.ProfilePatch) (*model.Profile, error) {
	profile, err := s.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		profile.Name = *patch.Name
	}
	if patch.Email != nil {
		profile.Email = *patch.Email
	}
	if patch.DueDate != nil {
		profile.DueDate = *patch.DueDate
	}
	if patch.WeeksPregnant != nil {
		profile.WeeksPregnant = *patch.WeeksPregnant
	}
	if patch.Doctor != nil {
		profile.Doctor = *patch.Doctor
	}
	if patch.MedicalHistory != nil {
		if patch.MedicalHistory.PreviousPregnancies != nil {
			profile.MedicalHistory.PreviousPregnancies = *patch.MedicalHistory.PreviousPregnancies
		}
		if patch.MedicalHistory.Allergies != nil {
			profile.MedicalHistory.Allergies = *patch.MedicalHistory.Allergies
		}
		if patch.MedicalHistory.Conditions != nil {
			profile.MedicalHistory.Conditions = *patch.MedicalHistory.Conditions
		}
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// AddReminder appends a reminder with a generated id to the profile.
func (s *Service) AddReminder(ctx context.Context, accountID uuid.UUID, reminder model.Reminder) (*model.Reminder, error) {
	profile, err := s.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}

	reminder.ID = uuid.New()
	reminder.CreatedAt = time.Now()
	profile.Reminders = append(profile.Reminders, reminder)

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to add reminder: %w", err)
	}
	return &reminder, nil
}

func (s *Service) ListReminders(ctx context.Context, accountID uuid.UUID) ([]model.Reminder, error) {
	profile, err := s.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if profile.Reminders == nil {
		return []model.Reminder{}, nil
	}
	return profile.Reminders, nil
}

func (s *Service) RemoveReminder(ctx context.Context, accountID, reminderID uuid.UUID) error {
	profile, err := s.Get(ctx, accountID)
	if err != nil {
		return err
	}

	for i, reminder := range profile.Reminders {
		if reminder.ID == reminderID {
			profile.Reminders = append(profile.Reminders[:i], profile.Reminders[i+1:]...)
			if err := s.repo.Update(ctx, profile); err != nil {
				return fmt.Errorf("failed to remove reminder: %w", err)
			}
			return nil
		}
	}
	return apperrors.NewNotFound("reminder")
}
