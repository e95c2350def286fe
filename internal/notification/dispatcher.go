package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/kafka"
	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/observability"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	pkgerrors "github.com/honeynil/DepositWithdrawService/pkg/errors"
)

const (
	maxBackoff     = 5 * time.Minute
	enqueueTimeout = 5 * time.Second
)

type Mailer interface {
	Send(ctx context.Context, to string, msg models.MailMessage) error
}

// RetryMessage is the payload of the notification retry topic.
type RetryMessage struct {
	To        string    `json:"to"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Attempt   int       `json:"attempt"`
	NotBefore time.Time `json:"notBefore"`
	RequestID string    `json:"requestId,omitempty"`
}

// Outcome reports how the two creation mails fared.
type Outcome struct {
	Customer error
	Admin    error
	Requeued int
}

func (o Outcome) Err() error {
	var errs []error
	if o.Customer != nil {
		errs = append(errs, fmt.Errorf("customer: %w", o.Customer))
	}
	if o.Admin != nil {
		errs = append(errs, fmt.Errorf("admin: %w", o.Admin))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", pkgerrors.ErrNotification, errors.Join(errs...))
}

type Config struct {
	RetryTopic string
	Timeout    time.Duration
}

type Dispatcher struct {
	mailer   Mailer
	queue    kafka.KafkaProducer
	renderer *Renderer
	topic    string
	timeout  time.Duration
	now      func() time.Time
}

func NewDispatcher(mailer Mailer, queue kafka.KafkaProducer, renderer *Renderer, cfg Config) *Dispatcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Dispatcher{
		mailer:   mailer,
		queue:    queue,
		renderer: renderer,
		topic:    cfg.RetryTopic,
		timeout:  timeout,
		now:      time.Now,
	}
}

// NotifyCreated mails the customer receipt and the admin announcement off the
// caller's goroutine. The returned channel yields exactly one Outcome and is
// then closed. Cancelling ctx does not abort delivery.
func (d *Dispatcher) NotifyCreated(ctx context.Context, req models.TransactionRequest) <-chan Outcome {
	out := make(chan Outcome, 1)
	requestID := middleware.GetReqID(ctx)
	base := context.WithoutCancel(ctx)

	go func() {
		defer close(out)

		var o Outcome
		customerMsg, adminMsg, err := d.renderer.Created(req)
		if err != nil {
			slog.Error("failed to render notification", "transaction_id", req.ID, "error", err)
			o.Customer, o.Admin = err, err
			out <- o
			return
		}

		var requeued bool
		requeued, o.Customer = d.deliver(base, "customer", req.Customer.Email, customerMsg, requestID)
		if requeued {
			o.Requeued++
		}
		requeued, o.Admin = d.deliver(base, "admin", req.Admin, adminMsg, requestID)
		if requeued {
			o.Requeued++
		}

		out <- o
	}()

	return out
}

// SendDigest mails one summary to admin; a failed send goes to the retry topic.
func (d *Dispatcher) SendDigest(ctx context.Context, admin string, reqs []models.TransactionRequest) error {
	msg, err := d.renderer.Digest(reqs)
	if err != nil {
		return err
	}
	if _, err := d.deliver(ctx, "digest", admin, msg, ""); err != nil {
		return fmt.Errorf("%w: %w", pkgerrors.ErrNotification, err)
	}
	return nil
}

// deliver gives each send its own timeout so a stalled recipient cannot starve the next one.
func (d *Dispatcher) deliver(base context.Context, recipient, to string, msg models.MailMessage, requestID string) (bool, error) {
	sendCtx, cancel := context.WithTimeout(base, d.timeout)
	err := d.mailer.Send(sendCtx, to, msg)
	cancel()
	if err == nil {
		observability.Notifications.WithLabelValues(recipient, "sent").Inc()
		return false, nil
	}

	slog.Warn("mail send failed, requeueing", "recipient", recipient, "to", to, "error", err)

	qctx, cancel := context.WithTimeout(base, enqueueTimeout)
	defer cancel()
	retry := RetryMessage{
		To:        to,
		Subject:   msg.Subject,
		Body:      msg.Body,
		Attempt:   1,
		NotBefore: d.now().Add(Backoff(1)),
		RequestID: requestID,
	}
	if qErr := enqueue(qctx, d.queue, d.topic, retry); qErr != nil {
		slog.Error("notification dropped", "recipient", recipient, "to", to, "error", qErr)
		observability.Notifications.WithLabelValues(recipient, "dropped").Inc()
		return false, err
	}
	observability.Notifications.WithLabelValues(recipient, "requeued").Inc()
	return true, err
}

// Backoff is the delay before retry attempt n: one second doubled per attempt, capped at five minutes.
func Backoff(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if attempt >= 9 {
		return maxBackoff
	}
	return min(time.Second<<attempt, maxBackoff)
}

func enqueue(ctx context.Context, queue kafka.KafkaProducer, topic string, msg RetryMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return queue.Send(ctx, topic, msg.To, payload)
}
