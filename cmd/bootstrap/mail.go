package bootstrap

import (
	"context"
	"log/slog"

	"reservation-service/internal/infra/mailer"
	"reservation-service/internal/pkg/clock"
	"reservation-service/internal/pkg/config"
	"reservation-service/internal/usecase"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		NewMailSender,
		NewNotifier,
	),
)

func NewMailSender(cfg config.Config, logger *slog.Logger) (mailer.Sender, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mail.Timeout)
	defer cancel()

	sender, err := mailer.NewSender(ctx, cfg.Mail, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("Mail transport configured", "transport", cfg.Mail.Transport, "from", cfg.Mail.From)
	return sender, nil
}

// NewNotifier renders templates over the sender and, with NOTIFY_ASYNC, queues the sends.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, sender mailer.Sender, logger *slog.Logger) (usecase.Notifier, error) {
	templated, err := mailer.NewTemplateNotifier(sender, cfg.Mail)
	if err != nil {
		return nil, err
	}
	if !cfg.Notify.Async {
		return templated, nil
	}

	async := mailer.NewAsyncNotifier(templated, cfg.Notify.QueueSize, cfg.Mail.Timeout, clock.NewRealClock(), logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			async.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return async.Stop(ctx)
		},
	})
	return async, nil
}
