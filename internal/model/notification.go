package model

// NotificationEvent selects which SMS template the dispatcher formats.
type NotificationEvent string

const (
	NotificationWelcome      NotificationEvent = "welcome"
	NotificationConfirmation NotificationEvent = "confirmation"
	NotificationReschedule   NotificationEvent = "reschedule"
	NotificationCancellation NotificationEvent = "cancellation"
	NotificationReminder     NotificationEvent = "reminder"
	NotificationMilestone    NotificationEvent = "milestone"
	NotificationDietTip      NotificationEvent = "diet_tip"
)

// NotificationOutcome reports whether the SMS actually went out. Delivery is
// best-effort; "not sent" never fails the triggering operation.
type NotificationOutcome struct {
	Sent   bool   `json:"sent"`
	Reason string `json:"reason,omitempty"`
}
