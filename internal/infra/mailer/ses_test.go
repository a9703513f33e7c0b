//go:build unit

package mailer_test

import (
	"context"
	"errors"
	"testing"

	"reservation-service/internal/infra/mailer"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestSESSender_Send(t *testing.T) {
	env := mailer.Envelope{
		From:     "no-reply@forkify.test",
		To:       "jane@example.com",
		Subject:  "Reservation Update - ForkiFy",
		HTMLBody: "<p>hello</p>",
	}

	t.Run("maps the envelope onto SendEmailInput", func(t *testing.T) {
		client := &fakeSES{}
		sender := mailer.NewSESSenderWithClient(client)

		require.NoError(t, sender.Send(context.Background(), env))

		require.NotNil(t, client.input)
		assert.Equal(t, "no-reply@forkify.test", aws.ToString(client.input.Source))
		assert.Equal(t, []string{"jane@example.com"}, client.input.Destination.ToAddresses)
		assert.Equal(t, "Reservation Update - ForkiFy", aws.ToString(client.input.Message.Subject.Data))
		assert.Equal(t, "<p>hello</p>", aws.ToString(client.input.Message.Body.Html.Data))
		assert.Equal(t, "UTF-8", aws.ToString(client.input.Message.Body.Html.Charset))
	})

	t.Run("wraps client errors", func(t *testing.T) {
		client := &fakeSES{err: errors.New("MessageRejected")}
		sender := mailer.NewSESSenderWithClient(client)

		err := sender.Send(context.Background(), env)

		assert.ErrorContains(t, err, "MessageRejected")
	})
}
