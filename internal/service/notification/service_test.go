package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shewell/maternity-api/internal/model"
)

type stubSender struct {
	sent []string
	to   []string
	err  error
}

func (s *stubSender) Send(_ context.Context, to, body string) error {
	if s.err != nil {
		return s.err
	}
	s.to = append(s.to, to)
	s.sent = append(s.sent, body)
	return nil
}

func TestDispatchWithoutSenderIsNoOp(t *testing.T) {
	svc := NewService(nil, zerolog.Nop())

	outcome := svc.Dispatch(context.Background(), model.NotificationWelcome, "+15550001111", Params{Name: "Jane"})
	assert.False(t, outcome.Sent)
	assert.Equal(t, "sms not configured", outcome.Reason)
}

func TestDispatchWithoutPhoneIsNoOp(t *testing.T) {
	sender := &stubSender{}
	svc := NewService(sender, zerolog.Nop())

	outcome := svc.Dispatch(context.Background(), model.NotificationWelcome, "", Params{Name: "Jane"})
	assert.False(t, outcome.Sent)
	assert.Empty(t, sender.sent)
}

func TestDispatchDeliveryFailureNeverErrors(t *testing.T) {
	sender := &stubSender{err: errors.New("twilio down")}
	svc := NewService(sender, zerolog.Nop())

	outcome := svc.Dispatch(context.Background(), model.NotificationConfirmation, "+15550001111", Params{
		DoctorName: "Dr. Sarah Johnson",
		Date:       "2026-09-15",
		Time:       "10:00",
	})
	assert.False(t, outcome.Sent)
	assert.Equal(t, "delivery failed", outcome.Reason)
}

func TestDispatchFormatsTemplates(t *testing.T) {
	sender := &stubSender{}
	svc := NewService(sender, zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		event    model.NotificationEvent
		params   Params
		contains string
	}{
		{model.NotificationWelcome, Params{Name: "Jane"}, "Welcome to SheWell, Jane!"},
		{model.NotificationConfirmation, Params{DoctorName: "Dr. Lee", Date: "2026-09-15", Time: "10:00"}, "has been scheduled for 2026-09-15 at 10:00"},
		{model.NotificationReschedule, Params{DoctorName: "Dr. Lee", Date: "2026-09-20", Time: "11:00"}, "rescheduled to 2026-09-20 at 11:00"},
		{model.NotificationCancellation, Params{DoctorName: "Dr. Lee", Date: "2026-09-15", Time: "10:00"}, "has been cancelled"},
		{model.NotificationReminder, Params{DoctorName: "Dr. Lee", Time: "10:00"}, "tomorrow at 10:00"},
		{model.NotificationMilestone, Params{Name: "Jane", Week: 20, Detail: "Halfway there!"}, "week 20"},
		{model.NotificationDietTip, Params{Name: "Jane", Detail: "More iron."}, "Nutrition tip for Jane"},
	}

	for _, tt := range tests {
		outcome := svc.Dispatch(ctx, tt.event, "+15550001111", tt.params)
		assert.True(t, outcome.Sent)
	}

	require.Len(t, sender.sent, len(tests))
	for i, tt := range tests {
		assert.Contains(t, sender.sent[i], tt.contains)
	}
}
