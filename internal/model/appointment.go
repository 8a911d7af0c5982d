package model

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusScheduled   AppointmentStatus = "scheduled"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
)

// DateFormat is the calendar format appointment dates are accepted in.
const DateFormat = "2006-01-02"

// Appointment belongs to exactly one patient and references an existing
// doctor. Cancellation is a status change, not a deletion, so the record
// stays around for audit.
type Appointment struct {
	ID         uuid.UUID         `json:"id" db:"id"`
	PatientID  uuid.UUID         `json:"patient_id" db:"patient_id"`
	DoctorID   uuid.UUID         `json:"doctor_id" db:"doctor_id"`
	DoctorName string            `json:"doctor_name" db:"doctor_name"`
	Date       string            `json:"date" db:"date"`
	Time       string            `json:"time" db:"time"`
	Reason     string            `json:"reason" db:"reason"`
	Status     AppointmentStatus `json:"status" db:"status"`
	CreatedAt  time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at" db:"updated_at"`
}

// AppointmentPatch carries the fields an update may overwrite. Nil fields
// are left untouched.
type AppointmentPatch struct {
	Date   *string            `json:"date"`
	Time   *string            `json:"time"`
	Reason *string            `json:"reason"`
	Status *AppointmentStatus `json:"status"`
}

// Reschedules reports whether applying the patch changes date, time or
// status, which is what triggers a reschedule notification.
func (p *AppointmentPatch) Reschedules() bool {
	return p.Date != nil || p.Time != nil || p.Status != nil
}
