package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// relayBatchSize limits how many notifications one tick drains.
const relayBatchSize = 100

// NotificationRelayJob drains the notification outbox on a schedule.
// Pending notifications are published to the broker and stamped as sent;
// anything that fails to publish stays pending and is retried on the next tick.
type NotificationRelayJob struct {
	outbox    ports.NotificationOutboxRepository
	publisher ports.NotificationPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewNotificationRelayJob creates a job that relays outbox notifications
// to the broker every five seconds.
func NewNotificationRelayJob(
	outbox ports.NotificationOutboxRepository,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) *NotificationRelayJob {
	return &NotificationRelayJob{
		outbox:    outbox,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "notification_relay_job"),
	}
}

// Start begins the notification relay job.
func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		if err := j.relay(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Notification relay job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started (running every five seconds)")
	return nil
}

// Stop stops the notification relay job.
func (j *NotificationRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}

// relay publishes one batch of pending notifications. A publish failure stops
// the batch so the broker gets a quiet period before the next attempt; the
// unpublished remainder is picked up again on the following tick.
func (j *NotificationRelayJob) relay(ctx context.Context) error {
	pending, err := j.outbox.GetPending(ctx, relayBatchSize)
	if err != nil {
		return err
	}

	for _, message := range pending {
		if err := j.publisher.Publish(ctx, message); err != nil {
			return err
		}

		if err := j.outbox.MarkSent(ctx, message.ID(), time.Now().UTC()); err != nil {
			return err
		}

		j.logger.InfoContext(ctx, "Notification relayed",
			"notification_id", message.ID().String(),
			"event", message.Event().String(),
		)
	}

	return nil
}
