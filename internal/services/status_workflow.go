package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/honeynil/DepositWithdrawService/internal/infrastructure/observability"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	"github.com/honeynil/DepositWithdrawService/internal/repository"
	pkgerrors "github.com/honeynil/DepositWithdrawService/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// StatusWorkflow owns every status mutation and deletion of transaction requests.
//
// Pending is the only state with outgoing transitions (to Confirm or Reject).
// Both mutations are single conditional statements, so concurrent callers
// cannot both observe Pending and both succeed.
type StatusWorkflow struct {
	repo repository.TransactionRepository
}

func NewStatusWorkflow(repo repository.TransactionRepository) *StatusWorkflow {
	return &StatusWorkflow{repo: repo}
}

func (w *StatusWorkflow) ApplyStatus(ctx context.Context, kind models.Kind, id uuid.UUID, requested models.StatusType) (int64, error) {
	ctx, span := otel.Tracer("status-workflow").Start(ctx, "ApplyStatus", trace.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("transaction_id", id.String()),
		attribute.String("status", string(requested)),
	))
	defer span.End()

	fail := func(result string, err error) (int64, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, result)
		observability.StatusTransitions.WithLabelValues(string(kind), string(requested), result).Inc()
		return 0, err
	}

	if requested == "" {
		return fail("invalid", pkgerrors.ErrStatusRequired)
	}
	if !requested.Valid() {
		return fail("invalid", pkgerrors.ErrInvalidStatus)
	}
	if !kind.Valid() {
		return fail("invalid", pkgerrors.ErrInvalidKind)
	}

	if requested != models.StatusPending {
		affected, err := w.repo.UpdateStatus(ctx, kind, id, models.StatusPending, requested)
		if err != nil {
			slog.Error("failed to apply status", "kind", kind, "transaction_id", id, "status", requested, "error", err)
			return fail("error", err)
		}
		if affected > 0 {
			observability.StatusTransitions.WithLabelValues(string(kind), string(requested), "applied").Inc()
			slog.Info("status applied", "kind", kind, "transaction_id", id, "status", requested)
			return affected, nil
		}
	}

	// Nothing changed: find out why.
	current, err := w.repo.GetByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return fail("not_found", pkgerrors.ErrTransactionNotFound)
		}
		return fail("error", err)
	}
	if current.Status == requested {
		slog.Warn("status already applied", "kind", kind, "transaction_id", id, "status", requested)
		return fail("unchanged", pkgerrors.ErrStatusUnchanged)
	}
	slog.Warn("status transition refused", "kind", kind, "transaction_id", id, "from", current.Status, "to", requested)
	return fail("final", pkgerrors.ErrStatusFinal)
}

// DeleteRequest removes a request unless it has been confirmed.
func (w *StatusWorkflow) DeleteRequest(ctx context.Context, kind models.Kind, id uuid.UUID) error {
	ctx, span := otel.Tracer("status-workflow").Start(ctx, "DeleteRequest", trace.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("transaction_id", id.String()),
	))
	defer span.End()

	fail := func(err error) error {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	current, err := w.repo.GetByID(ctx, kind, id)
	if err != nil {
		return fail(err)
	}
	if current.Status == models.StatusConfirm {
		slog.Warn("refused to delete confirmed transaction", "kind", kind, "transaction_id", id)
		return fail(pkgerrors.ErrConfirmedLocked)
	}

	affected, err := w.repo.Delete(ctx, kind, id, models.StatusConfirm)
	if err != nil {
		slog.Error("failed to delete transaction", "kind", kind, "transaction_id", id, "error", err)
		return fail(err)
	}
	if affected > 0 {
		slog.Info("transaction deleted", "kind", kind, "transaction_id", id)
		return nil
	}

	// Lost a race: it was removed or confirmed in between.
	if _, err := w.repo.GetByID(ctx, kind, id); err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return fail(pkgerrors.ErrTransactionNotFound)
		}
		return fail(err)
	}
	return fail(pkgerrors.ErrConfirmedLocked)
}
