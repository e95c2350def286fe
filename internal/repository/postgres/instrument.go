package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/observability"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	pkgerrors "github.com/honeynil/DepositWithdrawService/pkg/errors"
	"github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const uniqueViolation = "23505"

// observe opens a span for a repository method and returns the closer that records the
// span status and the repository metrics. Call it as `defer done(&err)`.
func observe(ctx context.Context, tracerName, method string, attrs ...attribute.KeyValue) (context.Context, func(*error)) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, method, trace.WithAttributes(attrs...))
	start := time.Now()
	return ctx, func(errp *error) {
		status := "success"
		if errp != nil && *errp != nil {
			status = "error"
			span.RecordError(*errp)
			span.SetStatus(codes.Error, (*errp).Error())
		}
		observability.RepositoryCalls.WithLabelValues(method, status).Inc()
		observability.RepositoryDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
		span.End()
	}
}

func tableFor(kind models.Kind) (string, error) {
	switch kind {
	case models.KindDeposit:
		return "deposits", nil
	case models.KindWithdraw:
		return "withdraws", nil
	}
	return "", fmt.Errorf("%w: %q", pkgerrors.ErrInvalidKind, kind)
}

func persistenceErr(action string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: failed to %s: duplicate key", pkgerrors.ErrConflict, action)
	}
	return fmt.Errorf("%w: failed to %s: %w", pkgerrors.ErrPersistence, action, err)
}
