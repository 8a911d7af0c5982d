package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/repository"
)

type AppointmentRepository struct {
	mu        sync.RWMutex
	byPatient map[uuid.UUID][]*model.Appointment
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{
		byPatient: make(map[uuid.UUID][]*model.Appointment),
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, apt *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *apt
	r.byPatient[cp.PatientID] = append(r.byPatient[cp.PatientID], &cp)
	return nil
}

func (r *AppointmentRepository) GetForPatient(ctx context.Context, patientID, id uuid.UUID) (*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, apt := range r.byPatient[patientID] {
		if apt.ID == id {
			cp := *apt
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *AppointmentRepository) Update(ctx context.Context, apt *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.byPatient[apt.PatientID] {
		if existing.ID == apt.ID {
			cp := *apt
			r.byPatient[apt.PatientID][i] = &cp
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *AppointmentRepository) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	apts := make([]*model.Appointment, 0, len(r.byPatient[patientID]))
	for _, apt := range r.byPatient[patientID] {
		cp := *apt
		apts = append(apts, &cp)
	}
	return apts, nil
}

func (r *AppointmentRepository) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var apts []*model.Appointment
	for _, patientApts := range r.byPatient {
		for _, apt := range patientApts {
			if apt.DoctorID == doctorID {
				cp := *apt
				apts = append(apts, &cp)
			}
		}
	}
	return apts, nil
}
