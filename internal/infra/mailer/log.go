package mailer

import (
	"context"
	"log/slog"
)

// LogSender delivers nothing; it records what would have been sent.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, env Envelope) error {
	s.logger.InfoContext(ctx, "Email dry run",
		slog.String("from", env.From),
		slog.String("to", env.To),
		slog.String("subject", env.Subject),
		slog.Int("body_bytes", len(env.HTMLBody)))
	return nil
}
