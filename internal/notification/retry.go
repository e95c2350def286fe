package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/kafka"
	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/observability"
	"github.com/honeynil/DepositWithdrawService/internal/models"
)

// RetryConsumer resends mails taken from the retry topic.
type RetryConsumer struct {
	mailer      Mailer
	queue       kafka.KafkaProducer
	topic       string
	maxAttempts int
	timeout     time.Duration
	now         func() time.Time
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewRetryConsumer(mailer Mailer, queue kafka.KafkaProducer, topic string, maxAttempts int, timeout time.Duration) *RetryConsumer {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RetryConsumer{
		mailer:      mailer,
		queue:       queue,
		topic:       topic,
		maxAttempts: maxAttempts,
		timeout:     timeout,
		now:         time.Now,
		sleep:       sleepContext,
	}
}

func (c *RetryConsumer) Handle(ctx context.Context, _, value []byte) error {
	var msg RetryMessage
	if err := json.Unmarshal(value, &msg); err != nil {
		observability.Notifications.WithLabelValues("retry", "malformed").Inc()
		return fmt.Errorf("malformed retry message: %w", err)
	}

	if wait := msg.NotBefore.Sub(c.now()); wait > 0 {
		if err := c.sleep(ctx, wait); err != nil {
			// Shutting down: the message is already committed, so put it back untouched.
			qctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), enqueueTimeout)
			defer cancel()
			if qErr := enqueue(qctx, c.queue, c.topic, msg); qErr != nil {
				slog.Error("notification dropped on shutdown", "to", msg.To, "attempt", msg.Attempt, "error", qErr)
			}
			return err
		}
	}

	sendCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	err := c.mailer.Send(sendCtx, msg.To, models.MailMessage{Subject: msg.Subject, Body: msg.Body})
	if err == nil {
		observability.Notifications.WithLabelValues("retry", "sent").Inc()
		slog.Info("notification resent", "to", msg.To, "attempt", msg.Attempt, "request_id", msg.RequestID)
		return nil
	}

	if msg.Attempt >= c.maxAttempts {
		observability.Notifications.WithLabelValues("retry", "dead_letter").Inc()
		slog.Error("notification dead-lettered",
			"to", msg.To,
			"subject", msg.Subject,
			"attempts", msg.Attempt,
			"request_id", msg.RequestID,
			"error", err)
		return nil
	}

	msg.Attempt++
	msg.NotBefore = c.now().Add(Backoff(msg.Attempt))
	if qErr := enqueue(ctx, c.queue, c.topic, msg); qErr != nil {
		observability.Notifications.WithLabelValues("retry", "dropped").Inc()
		return fmt.Errorf("requeue notification for %s: %w", msg.To, qErr)
	}
	observability.Notifications.WithLabelValues("retry", "requeued").Inc()
	slog.Warn("notification retry failed, requeued", "to", msg.To, "attempt", msg.Attempt, "not_before", msg.NotBefore, "error", err)
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
