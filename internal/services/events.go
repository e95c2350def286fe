package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/honeynil/DepositWithdrawService/internal/models"
)

const (
	EventTransactionCreated       = "transaction.created"
	EventTransactionStatusChanged = "transaction.status_changed"
	EventTransactionDeleted       = "transaction.deleted"
)

// EventPublisher is satisfied by the RabbitMQ producer.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, body any) error
}

type TransactionEvent struct {
	Type          string            `json:"type"`
	TransactionID uuid.UUID         `json:"transactionId"`
	Kind          models.Kind       `json:"kind"`
	CustomerEmail string            `json:"customerEmail,omitempty"`
	Admin         string            `json:"admin,omitempty"`
	Amount        string            `json:"amount,omitempty"`
	Status        models.StatusType `json:"status,omitempty"`
	Actor         string            `json:"actor,omitempty"`
	OccurredAt    time.Time         `json:"occurredAt"`
}

// publish never fails the caller; events are best effort.
func publish(ctx context.Context, events EventPublisher, ev TransactionEvent) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, ev.Type, ev); err != nil {
		slog.Warn("failed to publish event", "type", ev.Type, "transaction_id", ev.TransactionID, "error", err)
	}
}
