package service

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/honeynil/DepositWithdrawService/internal/models"
	"github.com/honeynil/DepositWithdrawService/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

// Aggregator merges deposits and withdraws into one newest-first feed.
type Aggregator struct {
	repo repository.TransactionRepository
	loc  *time.Location
}

func NewAggregator(repo repository.TransactionRepository, loc *time.Location) *Aggregator {
	return &Aggregator{repo: repo, loc: loc}
}

func (a *Aggregator) ListAll(ctx context.Context) ([]models.TransactionRequest, error) {
	ctx, span := otel.Tracer("transaction-aggregator").Start(ctx, "ListAll")
	defer span.End()

	var feed []models.TransactionRequest
	for _, kind := range []models.Kind{models.KindDeposit, models.KindWithdraw} {
		txs, err := a.repo.ListAll(ctx, kind)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "list failed")
			slog.Error("failed to read transactions for feed", "kind", kind, "error", err)
			return nil, err
		}
		feed = append(feed, txs...)
	}

	for i := range feed {
		feed[i].FormattedTime = models.FormatDisplayTime(feed[i].CreatedAt, a.loc)
	}
	// Stable: equal instants keep deposits before withdraws.
	slices.SortStableFunc(feed, func(x, y models.TransactionRequest) int {
		return y.CreatedAt.Compare(x.CreatedAt)
	})

	if feed == nil {
		feed = []models.TransactionRequest{}
	}
	return feed, nil
}
