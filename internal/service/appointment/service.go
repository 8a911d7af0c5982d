package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/repository"
	"github.com/shewell/maternity-api/internal/service/notification"
	apperrors "github.com/shewell/maternity-api/pkg/errors"
)

type Service struct {
	repo     repository.AppointmentRepository
	doctors  repository.DoctorRepository
	patients repository.PatientRepository
	notifSvc *notification.Service
}

func NewService(
	repo repository.AppointmentRepository,
	doctors repository.DoctorRepository,
	patients repository.PatientRepository,
	notifSvc *notification.Service,
) *Service {
	return &Service{
		repo:     repo,
		doctors:  doctors,
		patients: patients,
		notifSvc: notifSvc,
	}
}

// Book inserts a new scheduled appointment. The doctor must exist and the
// date must be a YYYY-MM-DD calendar day. The confirmation SMS is
// best-effort; booking success does not depend on it.
func (s *Service) Book(ctx context.Context, patientID, doctorID uuid.UUID, date, timeOfDay, reason string) (*model.Appointment, error) {
	if _, err := time.Parse(model.DateFormat, date); err != nil {
		return nil, apperrors.NewInvalidInput("date must be in YYYY-MM-DD format", err)
	}

	doctor, err := s.doctors.Get(ctx, doctorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("doctor")
		}
		return nil, fmt.Errorf("failed to resolve doctor: %w", err)
	}

	apt := &model.Appointment{
		ID:         uuid.New(),
		PatientID:  patientID,
		DoctorID:   doctor.ID,
		DoctorName: doctor.Name,
		Date:       date,
		Time:       timeOfDay,
		Reason:     reason,
		Status:     model.AppointmentStatusScheduled,
	}
	if err := s.repo.Create(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.notify(ctx, patientID, model.NotificationConfirmation, apt)
	return apt, nil
}

// List returns the patient's active appointments. Cancelled records are
// kept for audit but never listed.
func (s *Service) List(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error) {
	apts, err := s.repo.ListForPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	active := make([]*model.Appointment, 0, len(apts))
	for _, apt := range apts {
		if apt.Status != model.AppointmentStatusCancelled {
			active = append(active, apt)
		}
	}
	return active, nil
}

// ListForDoctor returns every appointment booked with the doctor.
func (s *Service) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.Appointment, error) {
	apts, err := s.repo.ListForDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctor appointments: %w", err)
	}
	return apts, nil
}

// Update overwrites only the supplied patch fields. A date/time/status
// change triggers a reschedule SMS.
func (s *Service) Update(ctx context.Context, patientID, id uuid.UUID, patch model.AppointmentPatch) (*model.Appointment, error) {
	apt, err := s.getOwned(ctx, patientID, id)
	if err != nil {
		return nil, err
	}
	if apt.Status == model.AppointmentStatusCancelled {
		return nil, apperrors.NewNotFound("appointment")
	}

	if patch.Date != nil {
		if _, err := time.Parse(model.DateFormat, *patch.Date); err != nil {
			return nil, apperrors.NewInvalidInput("date must be in YYYY-MM-DD format", err)
		}
		apt.Date = *patch.Date
	}
	if patch.Time != nil {
		apt.Time = *patch.Time
	}
	if patch.Reason != nil {
		apt.Reason = *patch.Reason
	}
	if patch.Status != nil {
		apt.Status = *patch.Status
	}

	if err := s.repo.Update(ctx, apt); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("appointment")
		}
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	if patch.Reschedules() {
		s.notify(ctx, patientID, model.NotificationReschedule, apt)
	}
	return apt, nil
}

// Cancel marks the appointment cancelled and sends the cancellation SMS
// with the pre-cancel snapshot. The record is kept for audit.
func (s *Service) Cancel(ctx context.Context, patientID, id uuid.UUID) error {
	apt, err := s.getOwned(ctx, patientID, id)
	if err != nil {
		return err
	}
	if apt.Status == model.AppointmentStatusCancelled {
		return apperrors.NewNotFound("appointment")
	}

	snapshot := *apt
	apt.Status = model.AppointmentStatusCancelled
	if err := s.repo.Update(ctx, apt); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("appointment")
		}
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}

	s.notify(ctx, patientID, model.NotificationCancellation, &snapshot)
	return nil
}

// getOwned resolves an appointment within the calling patient's own ledger;
// foreign ids surface as NotFound by construction.
func (s *Service) getOwned(ctx context.Context, patientID, id uuid.UUID) (*model.Appointment, error) {
	apt, err := s.repo.GetForPatient(ctx, patientID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("appointment")
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return apt, nil
}

func (s *Service) notify(ctx context.Context, patientID uuid.UUID, event model.NotificationEvent, apt *model.Appointment) {
	patient, err := s.patients.Get(ctx, patientID)
	if err != nil {
		return
	}
	s.notifSvc.Dispatch(ctx, event, patient.Phone, notification.Params{
		Name:       patient.Name,
		DoctorName: apt.DoctorName,
		Date:       apt.Date,
		Time:       apt.Time,
	})
}
