package appointment

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/internal/repository/memory"
	"github.com/shewell/maternity-api/internal/service/notification"
	apperrors "github.com/shewell/maternity-api/pkg/errors"
)

type recordingSender struct {
	mu     sync.Mutex
	bodies []string
	err    error
}

func (s *recordingSender) Send(_ context.Context, _, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.bodies = append(s.bodies, body)
	return nil
}

type fixture struct {
	svc       *Service
	apts      *memory.AppointmentRepository
	sender    *recordingSender
	patientID uuid.UUID
	doctorID  uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	patients := memory.NewPatientRepository()
	doctors := memory.NewDoctorRepository()
	apts := memory.NewAppointmentRepository()
	sender := &recordingSender{}

	patient := &model.Patient{ID: uuid.New(), Name: "Jane", Email: "jane@example.com", Phone: "+15550001111"}
	require.NoError(t, patients.Create(ctx, patient))

	doctor := &model.Doctor{ID: uuid.New(), Name: "Dr. Sarah Johnson", Email: "sarah@example.com"}
	require.NoError(t, doctors.Create(ctx, doctor))

	svc := NewService(apts, doctors, patients, notification.NewService(sender, zerolog.Nop()))
	return &fixture{
		svc:       svc,
		apts:      apts,
		sender:    sender,
		patientID: patient.ID,
		doctorID:  doctor.ID,
	}
}

func TestBookCreatesScheduledAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	apt, err := f.svc.Book(ctx, f.patientID, f.doctorID, "2026-09-15", "10:00", "checkup")
	require.NoError(t, err)

	assert.Equal(t, model.AppointmentStatusScheduled, apt.Status)
	assert.Equal(t, "Dr. Sarah Johnson", apt.DoctorName)

	listed, err := f.svc.List(ctx, f.patientID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, apt.ID, listed[0].ID)

	require.Len(t, f.sender.bodies, 1)
	assert.Contains(t, f.sender.bodies[0], "Dr. Sarah Johnson")
	assert.Contains(t, f.sender.bodies[0], "2026-09-15")
}

func TestBookUnknownDoctorLeavesNoRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Book(ctx, f.patientID, uuid.New(), "2026-09-15", "10:00", "checkup")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	listed, err := f.svc.List(ctx, f.patientID)
	require.NoError(t, err)
	assert.Empty(t, listed)
	assert.Empty(t, f.sender.bodies)
}

func TestBookRejectsBadDate(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Book(context.Background(), f.patientID, f.doctorID, "15-09-2026", "10:00", "checkup")
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestBookSucceedsWhenSMSFails(t *testing.T) {
	f := newFixture(t)
	f.sender.err = errors.New("twilio down")

	apt, err := f.svc.Book(context.Background(), f.patientID, f.doctorID, "2026-09-15", "10:00", "checkup")
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusScheduled, apt.Status)
}

func TestUpdateRescheduleSendsSMS(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	apt, err := f.svc.Book(ctx, f.patientID, f.doctorID, "2026-09-15", "10:00", "checkup")
	require.NoError(t, err)
	f.sender.bodies = nil

	newDate := "2026-09-20"
	updated, err := f.svc.Update(ctx, f.patientID, apt.ID, model.AppointmentPatch{Date: &newDate})
	require.NoError(t, err)
	assert.Equal(t, newDate, updated.Date)

	require.Len(t, f.sender.bodies, 1)
	assert.Contains(t, f.sender.bodies[0], "rescheduled")
}

func TestUpdateReasonOnlySendsNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	apt, err := f.svc.Book(ctx, f.patientID, f.doctorID, "2026-09-15", "10:00", "checkup")
	require.NoError(t, err)
	f.sender.bodies = nil

	reason := "follow-up"
	updated, err := f.svc.Update(ctx, f.patientID, apt.ID, model.AppointmentPatch{Reason: &reason})
	require.NoError(t, err)
	assert.Equal(t, "follow-up", updated.Reason)
	assert.Equal(t, "2026-09-15", updated.Date)
	assert.Empty(t, f.sender.bodies)
}

func TestCancelRemovesFromList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	apt, err := f.svc.Book(ctx, f.patientID, f.doctorID, "2026-09-15", "10:00", "checkup")
	require.NoError(t, err)
	f.sender.bodies = nil

	require.NoError(t, f.svc.Cancel(ctx, f.patientID, apt.ID))

	listed, err := f.svc.List(ctx, f.patientID)
	require.NoError(t, err)
	assert.Empty(t, listed)

	// the stored record survives as cancelled
	stored, err := f.apts.GetForPatient(ctx, f.patientID, apt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusCancelled, stored.Status)

	require.Len(t, f.sender.bodies, 1)
	assert.Contains(t, f.sender.bodies[0], "cancelled")
}

func TestCancelTwiceIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	apt, err := f.svc.Book(ctx, f.patientID, f.doctorID, "2026-09-15", "10:00", "checkup")
	require.NoError(t, err)

	require.NoError(t, f.svc.Cancel(ctx, f.patientID, apt.ID))
	err = f.svc.Cancel(ctx, f.patientID, apt.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestForeignAppointmentIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	apt, err := f.svc.Book(ctx, f.patientID, f.doctorID, "2026-09-15", "10:00", "checkup")
	require.NoError(t, err)

	otherPatient := uuid.New()
	newTime := "11:00"

	_, err = f.svc.Update(ctx, otherPatient, apt.ID, model.AppointmentPatch{Time: &newTime})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))

	err = f.svc.Cancel(ctx, otherPatient, apt.ID)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
}

func TestListForDoctorSeesAllPatients(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Book(ctx, f.patientID, f.doctorID, "2026-09-15", "10:00", "checkup")
	require.NoError(t, err)

	apts, err := f.svc.ListForDoctor(ctx, f.doctorID)
	require.NoError(t, err)
	assert.Len(t, apts, 1)
}
