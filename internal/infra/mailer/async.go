package mailer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"reservation-service/internal/pkg/clock"
	"reservation-service/internal/usecase"
)

var (
	ErrQueueFull      = errors.New("notification queue is full")
	ErrNotifierClosed = errors.New("notification queue is closed")
)

// AsyncNotifier queues notifications and delivers them from one worker goroutine.
// Send only fails when the message cannot be queued; delivery failures are logged.
type AsyncNotifier struct {
	next        usecase.Notifier
	logger      *slog.Logger
	clock       clock.Clock
	sendTimeout time.Duration

	mu     sync.RWMutex
	queue  chan queuedNotification
	closed bool
	done   chan struct{}
}

type queuedNotification struct {
	notification usecase.Notification
	queuedAt     time.Time
}

func NewAsyncNotifier(next usecase.Notifier, queueSize int, sendTimeout time.Duration, clk clock.Clock, logger *slog.Logger) *AsyncNotifier {
	if queueSize < 1 {
		queueSize = 1
	}
	return &AsyncNotifier{
		next:        next,
		logger:      logger,
		clock:       clk,
		sendTimeout: sendTimeout,
		queue:       make(chan queuedNotification, queueSize),
		done:        make(chan struct{}),
	}
}

func (a *AsyncNotifier) Start() {
	go a.run()
}

func (a *AsyncNotifier) Send(_ context.Context, n usecase.Notification) error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return ErrNotifierClosed
	}
	select {
	case a.queue <- queuedNotification{notification: n, queuedAt: a.clock.Now()}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop refuses new messages and waits until the queue is drained or ctx ends.
func (a *AsyncNotifier) Stop(ctx context.Context) error {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()

	select {
	case <-a.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *AsyncNotifier) run() {
	defer close(a.done)
	for q := range a.queue {
		a.deliver(q)
	}
}

func (a *AsyncNotifier) deliver(q queuedNotification) {
	ctx, cancel := context.WithTimeout(context.Background(), a.sendTimeout)
	defer cancel()
	n := q.notification
	if err := a.next.Send(ctx, n); err != nil {
		a.logger.Error("Failed to deliver queued email",
			slog.String("event", string(n.Event)),
			slog.String("to", n.To),
			slog.Duration("queued_for", a.clock.Now().Sub(q.queuedAt)),
			slog.Any("error", err))
	}
}
