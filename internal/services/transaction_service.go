package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	"github.com/honeynil/DepositWithdrawService/internal/notification"
	"github.com/honeynil/DepositWithdrawService/internal/repository"
	pkgerrors "github.com/honeynil/DepositWithdrawService/pkg/errors"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type TransactionService interface {
	Submit(ctx context.Context, kind models.Kind, in SubmitInput, caller models.Identity) (*models.TransactionRequest, error)
	Get(ctx context.Context, kind models.Kind, id uuid.UUID, caller models.Identity) (*models.TransactionRequest, error)
	ListForCustomer(ctx context.Context, kind models.Kind, email string) ([]models.TransactionRequest, error)
	ListForAdmin(ctx context.Context, kind models.Kind, email string) ([]models.TransactionRequest, error)
	ListAll(ctx context.Context, kind models.Kind) ([]models.TransactionRequest, error)
	ApplyStatus(ctx context.Context, kind models.Kind, id uuid.UUID, status models.StatusType, caller models.Identity) (int64, error)
	Delete(ctx context.Context, kind models.Kind, id uuid.UUID, caller models.Identity) error
}

// Notifier starts the post-creation mails.
type Notifier interface {
	NotifyCreated(ctx context.Context, req models.TransactionRequest) <-chan notification.Outcome
}

type SubmitInput struct {
	Customer     models.Contact
	Admin        string
	Amount       decimal.Decimal
	ExternalRef  string
	ChannelName  string
	WalletNumber string
	Status       models.StatusType
}

type transactionService struct {
	repo     repository.TransactionRepository
	users    repository.UserRepository
	workflow *StatusWorkflow
	notifier Notifier
	events   EventPublisher
	loc      *time.Location
	now      func() time.Time
	inflight sync.WaitGroup
}

func NewTransactionService(
	repo repository.TransactionRepository,
	users repository.UserRepository,
	notifier Notifier,
	events EventPublisher,
	loc *time.Location,
) *transactionService {
	return &transactionService{
		repo:     repo,
		users:    users,
		workflow: NewStatusWorkflow(repo),
		notifier: notifier,
		events:   events,
		loc:      loc,
		now:      time.Now,
	}
}

func (s *transactionService) Submit(ctx context.Context, kind models.Kind, in SubmitInput, caller models.Identity) (*models.TransactionRequest, error) {
	ctx, span := otel.Tracer("transaction-service").Start(ctx, "Submit", trace.WithAttributes(
		attribute.String("kind", string(kind)),
	))
	defer span.End()

	if err := validateSubmit(kind, in, caller); err != nil {
		span.SetStatus(codes.Error, "validation failed")
		slog.Warn("submission rejected", "kind", kind, "caller", caller.Email, "error", err)
		return nil, err
	}

	createdAt := s.now().UTC()
	req := &models.TransactionRequest{
		ID:   uuid.New(),
		Kind: kind,
		Customer: models.Contact{
			Name:  strings.TrimSpace(in.Customer.Name),
			Email: models.NormalizeEmail(in.Customer.Email),
		},
		Admin:         models.NormalizeEmail(in.Admin),
		Amount:        in.Amount,
		ExternalRef:   strings.TrimSpace(in.ExternalRef),
		ChannelName:   strings.TrimSpace(in.ChannelName),
		WalletNumber:  strings.TrimSpace(in.WalletNumber),
		Status:        models.StatusPending,
		CreatedAt:     createdAt,
		FormattedTime: models.FormatDisplayTime(createdAt, s.loc),
	}

	if err := s.repo.Create(ctx, req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		slog.Error("failed to persist submission", "kind", kind, "customer_email", req.Customer.Email, "error", err)
		return nil, err
	}
	span.SetAttributes(attribute.String("transaction_id", req.ID.String()))

	publish(ctx, s.events, TransactionEvent{
		Type:          EventTransactionCreated,
		TransactionID: req.ID,
		Kind:          kind,
		CustomerEmail: req.Customer.Email,
		Admin:         req.Admin,
		Amount:        req.Amount.String(),
		Status:        req.Status,
		Actor:         caller.Email,
		OccurredAt:    createdAt,
	})

	if s.notifier != nil {
		s.track(req.ID, s.notifier.NotifyCreated(ctx, *req))
	}

	slog.Info("transaction submitted", "kind", kind, "transaction_id", req.ID, "customer_email", req.Customer.Email, "admin", req.Admin)
	return req, nil
}

func (s *transactionService) track(id uuid.UUID, outcome <-chan notification.Outcome) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		o, ok := <-outcome
		if !ok {
			return
		}
		if err := o.Err(); err != nil {
			slog.Warn("notification dispatch incomplete", "transaction_id", id, "requeued", o.Requeued, "error", err)
			return
		}
		slog.Info("notifications sent", "transaction_id", id)
	}()
}

// WaitNotifications blocks until in-flight notification dispatches finish or ctx ends.
func (s *transactionService) WaitNotifications(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *transactionService) Get(ctx context.Context, kind models.Kind, id uuid.UUID, caller models.Identity) (*models.TransactionRequest, error) {
	req, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOwnerOrAdmin(ctx, req, caller); err != nil {
		return nil, err
	}
	s.present(req)
	return req, nil
}

func (s *transactionService) ListForCustomer(ctx context.Context, kind models.Kind, email string) ([]models.TransactionRequest, error) {
	txs, err := s.repo.ListByCustomer(ctx, kind, models.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	return s.presentAll(txs), nil
}

func (s *transactionService) ListForAdmin(ctx context.Context, kind models.Kind, email string) ([]models.TransactionRequest, error) {
	txs, err := s.repo.ListByAdmin(ctx, kind, models.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	return s.presentAll(txs), nil
}

func (s *transactionService) ListAll(ctx context.Context, kind models.Kind) ([]models.TransactionRequest, error) {
	txs, err := s.repo.ListAll(ctx, kind)
	if err != nil {
		return nil, err
	}
	return s.presentAll(txs), nil
}

func (s *transactionService) ApplyStatus(ctx context.Context, kind models.Kind, id uuid.UUID, status models.StatusType, caller models.Identity) (int64, error) {
	affected, err := s.workflow.ApplyStatus(ctx, kind, id, status)
	if err != nil {
		return 0, err
	}
	publish(ctx, s.events, TransactionEvent{
		Type:          EventTransactionStatusChanged,
		TransactionID: id,
		Kind:          kind,
		Status:        status,
		Actor:         caller.Email,
		OccurredAt:    s.now().UTC(),
	})
	return affected, nil
}

func (s *transactionService) Delete(ctx context.Context, kind models.Kind, id uuid.UUID, caller models.Identity) error {
	req, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		return err
	}
	if err := s.authorizeOwnerOrAdmin(ctx, req, caller); err != nil {
		return err
	}
	if err := s.workflow.DeleteRequest(ctx, kind, id); err != nil {
		return err
	}
	publish(ctx, s.events, TransactionEvent{
		Type:          EventTransactionDeleted,
		TransactionID: id,
		Kind:          kind,
		CustomerEmail: req.Customer.Email,
		Admin:         req.Admin,
		Actor:         caller.Email,
		OccurredAt:    s.now().UTC(),
	})
	return nil
}

func (s *transactionService) authorizeOwnerOrAdmin(ctx context.Context, req *models.TransactionRequest, caller models.Identity) error {
	if caller.Email == "" {
		return pkgerrors.ErrUnauthenticated
	}
	email := models.NormalizeEmail(caller.Email)
	if req.Customer.Email == email {
		return nil
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return pkgerrors.ErrForbidden
		}
		return err
	}
	if user.Role != models.RoleAdmin {
		slog.Warn("transaction access denied", "transaction_id", req.ID, "caller", caller.Email)
		return pkgerrors.ErrForbidden
	}
	return nil
}

func (s *transactionService) present(req *models.TransactionRequest) {
	req.FormattedTime = models.FormatDisplayTime(req.CreatedAt, s.loc)
}

func (s *transactionService) presentAll(txs []models.TransactionRequest) []models.TransactionRequest {
	for i := range txs {
		s.present(&txs[i])
	}
	return txs
}

func validateSubmit(kind models.Kind, in SubmitInput, caller models.Identity) error {
	if !kind.Valid() {
		return pkgerrors.ErrInvalidKind
	}
	email := models.NormalizeEmail(in.Customer.Email)
	switch {
	case email == "":
		return fmt.Errorf("%w: customer email is required", pkgerrors.ErrValidation)
	case email != models.NormalizeEmail(caller.Email):
		return pkgerrors.ErrScopeMismatch
	case strings.TrimSpace(in.Admin) == "":
		return fmt.Errorf("%w: admin is required", pkgerrors.ErrValidation)
	case !in.Amount.IsPositive():
		return fmt.Errorf("%w: amount must be positive", pkgerrors.ErrInvalidAmount)
	case !models.ValidAmount(in.Amount):
		return fmt.Errorf("%w: at most %d decimal places and %d integer digits", pkgerrors.ErrInvalidAmount, models.AmountScale, models.AmountIntegerDigits)
	case strings.TrimSpace(in.ExternalRef) == "":
		return fmt.Errorf("%w: %s is required", pkgerrors.ErrValidation, kind.ExternalRefLabel())
	case strings.TrimSpace(in.ChannelName) == "":
		return fmt.Errorf("%w: channel name is required", pkgerrors.ErrValidation)
	}

	wallet := strings.TrimSpace(in.WalletNumber)
	switch kind {
	case models.KindWithdraw:
		if wallet == "" {
			return fmt.Errorf("%w: wallet number is required", pkgerrors.ErrValidation)
		}
	case models.KindDeposit:
		if wallet != "" {
			return fmt.Errorf("%w: wallet number is only accepted on withdraws", pkgerrors.ErrValidation)
		}
	}

	if in.Status != "" && in.Status != models.StatusPending {
		return fmt.Errorf("%w: new requests must be %s", pkgerrors.ErrInvalidStatus, models.StatusPending)
	}
	return nil
}
