//go:build unit

package mailer_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"reservation-service/internal/infra/mailer"
	"reservation-service/internal/pkg/config"
	"reservation-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []mailer.Envelope
	err  error
}

func (r *recordingSender) Send(_ context.Context, env mailer.Envelope) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, env)
	return r.err
}

func newTemplateNotifier(t *testing.T, sender mailer.Sender) *mailer.TemplateNotifier {
	t.Helper()
	cfg := config.NewTestConfig().Mail
	n, err := mailer.NewTemplateNotifier(sender, cfg)
	require.NoError(t, err)
	return n
}

func sampleNotification(event usecase.NotificationEvent) usecase.Notification {
	return usecase.Notification{
		Event: event,
		To:    "jane@example.com",
		Data: usecase.NotificationData{
			GuestName:       "Jane Doe",
			RestaurantName:  "Trattoria Roma",
			Date:            "3/14/2025",
			Time:            "19:30",
			NumberOfGuests:  4,
			SpecialRequests: "Window seat",
			Status:          "confirmed",
		},
	}
}

func TestTemplateNotifier_Render(t *testing.T) {
	n := newTemplateNotifier(t, &recordingSender{})

	testCases := []struct {
		event       usecase.NotificationEvent
		subject     string
		contains    []string
		notContains []string
	}{
		{
			event:    usecase.EventConfirmation,
			subject:  "Reservation Confirmation - ForkiFy",
			contains: []string{"Dear Jane Doe", "confirmed at Trattoria Roma", "3/14/2025", "19:30", "Number of Guests:</strong> 4", "Window seat", "Thank you for choosing ForkiFy"},
		},
		{
			event:       usecase.EventStatusUpdate,
			subject:     "Reservation Update - ForkiFy",
			contains:    []string{"updated to: <strong>confirmed</strong>", "Trattoria Roma", "3/14/2025", "19:30", "Number of Guests:</strong> 4"},
			notContains: []string{"Window seat"},
		},
		{
			event:       usecase.EventCancellation,
			subject:     "Reservation Cancelled - ForkiFy",
			contains:    []string{"has been cancelled", "Trattoria Roma", "3/14/2025", "19:30"},
			notContains: []string{"Number of Guests", "Window seat"},
		},
	}

	for _, tc := range testCases {
		t.Run(string(tc.event), func(t *testing.T) {
			env, err := n.Render(sampleNotification(tc.event))

			require.NoError(t, err)
			assert.Equal(t, "no-reply@forkify.test", env.From)
			assert.Equal(t, "jane@example.com", env.To)
			assert.Equal(t, tc.subject, env.Subject)
			for _, s := range tc.contains {
				assert.Contains(t, env.HTMLBody, s)
			}
			for _, s := range tc.notContains {
				assert.NotContains(t, env.HTMLBody, s)
			}
		})
	}

	t.Run("confirmation omits empty special requests", func(t *testing.T) {
		msg := sampleNotification(usecase.EventConfirmation)
		msg.Data.SpecialRequests = ""

		env, err := n.Render(msg)

		require.NoError(t, err)
		assert.NotContains(t, env.HTMLBody, "Special Requests")
	})

	t.Run("guest input is escaped", func(t *testing.T) {
		msg := sampleNotification(usecase.EventConfirmation)
		msg.Data.GuestName = "<script>alert(1)</script>"

		env, err := n.Render(msg)

		require.NoError(t, err)
		assert.NotContains(t, env.HTMLBody, "<script>")
		assert.Contains(t, env.HTMLBody, "&lt;script&gt;")
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := n.Render(usecase.Notification{Event: "reminder"})

		assert.Error(t, err)
	})
}

func TestTemplateNotifier_Send(t *testing.T) {
	t.Run("hands the rendered envelope to the sender", func(t *testing.T) {
		sender := &recordingSender{}
		n := newTemplateNotifier(t, sender)

		err := n.Send(context.Background(), sampleNotification(usecase.EventCancellation))

		require.NoError(t, err)
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "Reservation Cancelled - ForkiFy", sender.sent[0].Subject)
	})

	t.Run("propagates sender failure", func(t *testing.T) {
		sender := &recordingSender{err: errors.New("relay denied")}
		n := newTemplateNotifier(t, sender)

		err := n.Send(context.Background(), sampleNotification(usecase.EventConfirmation))

		assert.ErrorContains(t, err, "relay denied")
	})
}
