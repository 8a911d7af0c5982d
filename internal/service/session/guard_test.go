package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/shewell/maternity-api/internal/model"
)

func TestAuthorize(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()

	tests := []struct {
		name         string
		state        State
		requiredKind model.AccountKind
		verdict      Verdict
		homePath     string
	}{
		{
			name:         "no session",
			state:        State{},
			requiredKind: model.AccountKindPatient,
			verdict:      Unauthenticated,
		},
		{
			name:         "unknown kind",
			state:        State{AccountID: patientID, AccountKind: "admin"},
			requiredKind: model.AccountKindPatient,
			verdict:      Unauthenticated,
		},
		{
			name:         "patient on patient route",
			state:        State{AccountID: patientID, AccountKind: model.AccountKindPatient},
			requiredKind: model.AccountKindPatient,
			verdict:      Proceed,
		},
		{
			name:         "doctor on patient route",
			state:        State{AccountID: doctorID, AccountKind: model.AccountKindDoctor},
			requiredKind: model.AccountKindPatient,
			verdict:      WrongRole,
			homePath:     "/doctor/dashboard",
		},
		{
			name:         "patient on doctor route",
			state:        State{AccountID: patientID, AccountKind: model.AccountKindPatient},
			requiredKind: model.AccountKindDoctor,
			verdict:      WrongRole,
			homePath:     "/dashboard",
		},
		{
			name:         "any kind accepted when unrestricted",
			state:        State{AccountID: doctorID, AccountKind: model.AccountKindDoctor},
			requiredKind: "",
			verdict:      Proceed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Authorize(tt.state, tt.requiredKind)
			assert.Equal(t, tt.verdict, decision.Verdict)
			assert.Equal(t, tt.homePath, decision.HomePath)
		})
	}
}
