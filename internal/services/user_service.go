package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	"github.com/honeynil/DepositWithdrawService/internal/repository"
	pkgerrors "github.com/honeynil/DepositWithdrawService/pkg/errors"
	"go.opentelemetry.io/otel"
)

type UserService interface {
	Upsert(ctx context.Context, email string, profile UserProfile) (*models.User, bool, error)
	ListCustomers(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id uuid.UUID, caller models.Identity) error
	Role(ctx context.Context, email string) (models.Role, error)
}

type UserProfile struct {
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

type userService struct {
	repo repository.UserRepository
	now  func() time.Time
}

func NewUserService(repo repository.UserRepository) *userService {
	return &userService{repo: repo, now: time.Now}
}

// Upsert registers email on first sighting. An existing record is returned
// unchanged, so re-registration never overwrites a role.
func (s *userService) Upsert(ctx context.Context, email string, profile UserProfile) (*models.User, bool, error) {
	ctx, span := otel.Tracer("user-service").Start(ctx, "Upsert")
	defer span.End()

	email = models.NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, false, fmt.Errorf("%w: a valid email is required", pkgerrors.ErrValidation)
	}

	user := &models.User{
		ID:        uuid.New(),
		Email:     email,
		Name:      strings.TrimSpace(profile.Name),
		PhotoURL:  strings.TrimSpace(profile.PhotoURL),
		Role:      models.RoleCustomer,
		CreatedAt: s.now().UTC(),
	}
	return s.repo.Upsert(ctx, user)
}

func (s *userService) ListCustomers(ctx context.Context) ([]models.User, error) {
	return s.repo.ListByRoleExcept(ctx, models.RoleAdmin)
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID, caller models.Identity) error {
	ctx, span := otel.Tracer("user-service").Start(ctx, "Delete")
	defer span.End()

	target, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if target.Email != models.NormalizeEmail(caller.Email) {
		role, err := s.Role(ctx, caller.Email)
		if err != nil && !errors.Is(err, pkgerrors.ErrNotFound) {
			return err
		}
		if role != models.RoleAdmin {
			slog.Warn("user delete denied", "user_id", id, "caller", caller.Email)
			return pkgerrors.ErrForbidden
		}
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkgerrors.ErrUserNotFound
	}
	return nil
}

func (s *userService) Role(ctx context.Context, email string) (models.Role, error) {
	user, err := s.repo.GetByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		return "", err
	}
	return user.Role, nil
}
