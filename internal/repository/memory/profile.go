package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/repository"
)

type ProfileRepository struct {
	mu      sync.RWMutex
	byOwner map[uuid.UUID]*model.Profile
}

func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		byOwner: make(map[uuid.UUID]*model.Profile),
	}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byOwner[profile.OwnerID] = copyProfile(profile)
	return nil
}

func (r *ProfileRepository) Get(ctx context.Context, ownerID uuid.UUID) (*model.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.byOwner[ownerID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyProfile(profile), nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *model.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byOwner[profile.OwnerID]; !ok {
		return repository.ErrNotFound
	}
	r.byOwner[profile.OwnerID] = copyProfile(profile)
	return nil
}

func copyProfile(profile *model.Profile) *model.Profile {
	cp := *profile
	cp.MedicalHistory.Allergies = append([]string(nil), profile.MedicalHistory.Allergies...)
	cp.MedicalHistory.Conditions = append([]string(nil), profile.MedicalHistory.Conditions...)
	cp.Reminders = append([]model.Reminder(nil), profile.Reminders...)
	return &cp
}
