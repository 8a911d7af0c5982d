package model

import (
	"time"

	"github.com/google/uuid"
)

// MedicalHistory is the nested sub-document of a profile. Its fields merge
// independently on update.
type MedicalHistory struct {
	PreviousPregnancies int      `json:"previousPregnancies"`
	Allergies           []string `json:"allergies"`
	Conditions          []string `json:"conditions"`
}

// Reminder belongs to exactly one profile.
type Reminder struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Profile is the per-patient pregnancy profile. Identity fields mirror the
// account for display; the credential store remains the source of truth.
type Profile struct {
	OwnerID        uuid.UUID      `json:"-"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	DueDate        string         `json:"dueDate"`
	WeeksPregnant  int            `json:"weeksPregnant"`
	Doctor         string         `json:"doctor"`
	MedicalHistory MedicalHistory `json:"medicalHistory"`
	Reminders      []Reminder     `json:"reminders"`
}

// MedicalHistoryPatch merges at the field level: each non-nil field
// overwrites its counterpart, siblings are untouched.
type MedicalHistoryPatch struct {
	PreviousPregnancies *int      `json:"previousPregnancies"`
	Allergies           *[]string `json:"allergies"`
	Conditions          *[]string `json:"conditions"`
}

// ProfilePatch overwrites each supplied top-level field; MedicalHistory
// merges one level deeper.
type ProfilePatch struct {
	Name           *string              `json:"name"`
	Email          *string              `json:"email"`
	DueDate        *string              `json:"dueDate"`
	WeeksPregnant  *int                 `json:"weeksPregnant"`
	Doctor         *string              `json:"doctor"`
	MedicalHistory *MedicalHistoryPatch `json:"medicalHistory"`
}
