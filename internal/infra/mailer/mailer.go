package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"reservation-service/internal/pkg/config"
)

const (
	TransportSMTP = "smtp"
	TransportSES  = "ses"
	TransportLog  = "log"
)

// Envelope is one rendered HTML message.
type Envelope struct {
	From     string
	To       string
	Subject  string
	HTMLBody string
}

type Sender interface {
	Send(ctx context.Context, env Envelope) error
}

// NewSender picks the delivery transport named by cfg.Transport.
func NewSender(ctx context.Context, cfg config.MailConfig, logger *slog.Logger) (Sender, error) {
	switch strings.ToLower(cfg.Transport) {
	case TransportSMTP:
		return NewSMTPSender(cfg), nil
	case TransportSES:
		return NewSESSender(ctx, cfg)
	case TransportLog, "":
		return NewLogSender(logger), nil
	default:
		return nil, fmt.Errorf("unknown MAIL_TRANSPORT %q", cfg.Transport)
	}
}
