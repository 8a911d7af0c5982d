// Package session holds the authorization guard as a pure decision
// component. Adapters (the JSON middleware, or a page adapter doing
// redirects) render its decisions; the logic itself lives in one place.
package session

import (
	"github.com/google/uuid"

	"github.com/shewell/maternity-api/internal/model"
)

// Verdict is the guard's decision for a request.
type Verdict int

const (
	Proceed Verdict = iota
	Unauthenticated
	WrongRole
)

// Decision carries the verdict plus, on a role mismatch, where the caller's
// actual role lives so a page adapter can redirect there.
type Decision struct {
	Verdict  Verdict
	HomePath string
}

// State is the session content presented with a request. A zero AccountID
// means no session.
type State struct {
	AccountID   uuid.UUID
	AccountKind model.AccountKind
}

func homePath(kind model.AccountKind) string {
	if kind == model.AccountKindDoctor {
		return "/doctor/dashboard"
	}
	return "/dashboard"
}

// Authorize decides whether the session may reach an operation restricted to
// requiredKind. No session means unauthenticated; a session of the wrong
// kind is rejected toward its own home.
func Authorize(state State, requiredKind model.AccountKind) Decision {
	if state.AccountID == uuid.Nil || !state.AccountKind.Valid() {
		return Decision{Verdict: Unauthenticated}
	}
	if requiredKind != "" && state.AccountKind != requiredKind {
		return Decision{Verdict: WrongRole, HomePath: homePath(state.AccountKind)}
	}
	return Decision{Verdict: Proceed}
}
