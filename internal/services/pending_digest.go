package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/honeynil/DepositWithdrawService/internal/models"
	"github.com/honeynil/DepositWithdrawService/internal/repository"
)

type DigestSender interface {
	SendDigest(ctx context.Context, admin string, reqs []models.TransactionRequest) error
}

// PendingDigest reminds each admin of requests left Pending longer than age.
type PendingDigest struct {
	repo   repository.TransactionRepository
	sender DigestSender
	age    time.Duration
	now    func() time.Time
}

func NewPendingDigest(repo repository.TransactionRepository, sender DigestSender, age time.Duration) *PendingDigest {
	return &PendingDigest{repo: repo, sender: sender, age: age, now: time.Now}
}

func (p *PendingDigest) Run(ctx context.Context) error {
	cutoff := p.now().UTC().Add(-p.age)

	byAdmin := make(map[string][]models.TransactionRequest)
	var order []string
	for _, kind := range []models.Kind{models.KindDeposit, models.KindWithdraw} {
		txs, err := p.repo.ListByStatus(ctx, kind, models.StatusPending, cutoff)
		if err != nil {
			return err
		}
		for _, tx := range txs {
			if _, seen := byAdmin[tx.Admin]; !seen {
				order = append(order, tx.Admin)
			}
			byAdmin[tx.Admin] = append(byAdmin[tx.Admin], tx)
		}
	}

	var errs []error
	for _, admin := range order {
		if err := p.sender.SendDigest(ctx, admin, byAdmin[admin]); err != nil {
			slog.Error("failed to send pending digest", "admin", admin, "count", len(byAdmin[admin]), "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", admin, err))
			continue
		}
		slog.Info("pending digest sent", "admin", admin, "count", len(byAdmin[admin]))
	}
	return errors.Join(errs...)
}
