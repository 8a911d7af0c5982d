package model

import "time"

// MaxChatHistory caps the number of stored turns per account; appending
// beyond the cap drops the oldest turn.
const MaxChatHistory = 50

// ChatTurn is one user/assistant exchange.
type ChatTurn struct {
	User      string    `json:"user"`
	AI        string    `json:"ai"`
	Timestamp time.Time `json:"timestamp"`
}

// DietPlan is the generated diet advice for a patient.
type DietPlan struct {
	Plan          string `json:"dietPlan"`
	Trimester     int    `json:"trimester"`
	WeeksPregnant int    `json:"weeksPregnant"`
}
