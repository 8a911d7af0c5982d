// Package memory holds mutex-guarded in-process implementations of the
// repository interfaces. They back unit tests and local development; the
// postgres implementations are the production store.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/repository"
)

type PatientRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*model.Patient
	byEmail map[string]uuid.UUID
}

func NewPatientRepository() *PatientRepository {
	return &PatientRepository{
		byID:    make(map[uuid.UUID]*model.Patient),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *PatientRepository) Create(ctx context.Context, patient *model.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *patient
	r.byID[cp.ID] = &cp
	r.byEmail[strings.ToLower(cp.Email)] = cp.ID
	return nil
}

func (r *PatientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patient, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *patient
	return &cp, nil
}

func (r *PatientRepository) GetByEmail(ctx context.Context, email string) (*model.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r.byID[id]
	return &cp, nil
}

type DoctorRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*model.Doctor
	byEmail map[string]uuid.UUID
	order   []uuid.UUID
}

func NewDoctorRepository() *DoctorRepository {
	return &DoctorRepository{
		byID:    make(map[uuid.UUID]*model.Doctor),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *doctor
	r.byID[cp.ID] = &cp
	r.byEmail[strings.ToLower(cp.Email)] = cp.ID
	r.order = append(r.order, cp.ID)
	return nil
}

func (r *DoctorRepository) Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doctor, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *doctor
	return &cp, nil
}

func (r *DoctorRepository) GetByEmail(ctx context.Context, email string) (*model.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *r.byID[id]
	return &cp, nil
}

func (r *DoctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[doctor.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *doctor
	r.byID[cp.ID] = &cp
	return nil
}

func (r *DoctorRepository) List(ctx context.Context, filters model.DoctorFilters) ([]*model.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var doctors []*model.Doctor
	for _, id := range r.order {
		doctor := r.byID[id]
		if !matchesFilters(doctor, filters) {
			continue
		}
		cp := *doctor
		doctors = append(doctors, &cp)
	}
	return doctors, nil
}

func (r *DoctorRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}

func matchesFilters(doctor *model.Doctor, filters model.DoctorFilters) bool {
	if filters.Location != "" &&
		!strings.Contains(strings.ToLower(doctor.Location), strings.ToLower(filters.Location)) {
		return false
	}
	if filters.Specialty != "" && doctor.Specialization != filters.Specialty {
		return false
	}
	if filters.Insurance != "" {
		found := false
		for _, ins := range doctor.Insurance {
			if ins == filters.Insurance {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
