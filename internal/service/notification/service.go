// Package notification formats SMS templates and hands them to the Twilio
// transport. Delivery is strictly best-effort: a missing configuration or a
// transport failure resolves to a "not sent" outcome, never an error that
// could fail the triggering operation.
package notification

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shewell/maternity-api/internal/model"
	"github.com/shewell/maternity-api/pkg/circuitbreaker"
	"github.com/shewell/maternity-api/pkg/sms"
)

// Params are the template parameters; unused fields are ignored by most
// templates.
type Params struct {
	Name       string
	DoctorName string
	Date       string
	Time       string
	Week       int
	Detail     string
}

type Service struct {
	sender  sms.Sender
	breaker *circuitbreaker.CircuitBreaker
	logger  zerolog.Logger
}

// NewService builds the dispatcher. A nil sender means SMS is not
// configured and every dispatch degrades to a no-op outcome.
func NewService(sender sms.Sender, logger zerolog.Logger) *Service {
	return &Service{
		sender: sender,
		breaker: circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
			Name:        "twilio",
			MaxFailures: 5,
		}),
		logger: logger,
	}
}

func format(event model.NotificationEvent, p Params) string {
	switch event {
	case model.NotificationWelcome:
		return fmt.Sprintf("Welcome to SheWell, %s! Thank you for registering. We're here to support you through your pregnancy journey.", p.Name)
	case model.NotificationConfirmation:
		return fmt.Sprintf("Your appointment with %s has been scheduled for %s at %s. Please arrive 15 minutes early.", p.DoctorName, p.Date, p.Time)
	case model.NotificationReschedule:
		return fmt.Sprintf("Your appointment with %s has been rescheduled to %s at %s.", p.DoctorName, p.Date, p.Time)
	case model.NotificationCancellation:
		return fmt.Sprintf("Your appointment with %s on %s at %s has been cancelled.", p.DoctorName, p.Date, p.Time)
	case model.NotificationReminder:
		return fmt.Sprintf("Reminder: You have an appointment with %s tomorrow at %s. Please remember to bring your medical records.", p.DoctorName, p.Time)
	case model.NotificationMilestone:
		return fmt.Sprintf("Hi %s! You've reached week %d of your pregnancy. %s", p.Name, p.Week, p.Detail)
	case model.NotificationDietTip:
		return fmt.Sprintf("Nutrition tip for %s: %s", p.Name, p.Detail)
	default:
		return p.Detail
	}
}

// Dispatch formats the template for event and sends it to phone. The
// returned outcome says whether the message went out; it never surfaces an
// error to the caller.
func (s *Service) Dispatch(ctx context.Context, event model.NotificationEvent, phone string, p Params) model.NotificationOutcome {
	if s.sender == nil {
		s.logger.Warn().
			Str("event", string(event)).
			Msg("SMS not configured, skipping notification")
		return model.NotificationOutcome{Sent: false, Reason: "sms not configured"}
	}
	if phone == "" {
		return model.NotificationOutcome{Sent: false, Reason: "no phone number"}
	}

	body := format(event, p)
	err := s.breaker.Execute(func() error {
		return s.sender.Send(ctx, phone, body)
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("event", string(event)).
			Msg("failed to send SMS")
		return model.NotificationOutcome{Sent: false, Reason: "delivery failed"}
	}

	s.logger.Info().
		Str("event", string(event)).
		Msg("SMS sent")
	return model.NotificationOutcome{Sent: true}
}
