package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/honeynil/DepositWithdrawService/internal/models"
	"github.com/honeynil/DepositWithdrawService/internal/repository"
	pkgerrors "github.com/honeynil/DepositWithdrawService/pkg/errors"
)

type ChannelService interface {
	Create(ctx context.Context, kind models.Kind, in ChannelInput, caller models.Identity) (*models.Channel, error)
	List(ctx context.Context, kind models.Kind) ([]models.Channel, error)
	Get(ctx context.Context, kind models.Kind, id uuid.UUID) (*models.Channel, error)
	ListOwned(ctx context.Context, kind models.Kind, admin string) ([]models.Channel, error)
	Update(ctx context.Context, kind models.Kind, id uuid.UUID, patch models.ChannelPatch) error
	Delete(ctx context.Context, kind models.Kind, id uuid.UUID) error
}

type ChannelInput struct {
	Name      string `json:"name"`
	Number    string `json:"number"`
	AdminName string `json:"adminName"`
}

type channelService struct {
	repo repository.ChannelRepository
	now  func() time.Time
}

func NewChannelService(repo repository.ChannelRepository) *channelService {
	return &channelService{repo: repo, now: time.Now}
}

func (s *channelService) Create(ctx context.Context, kind models.Kind, in ChannelInput, caller models.Identity) (*models.Channel, error) {
	if !kind.Valid() {
		return nil, pkgerrors.ErrInvalidKind
	}
	name, number := strings.TrimSpace(in.Name), strings.TrimSpace(in.Number)
	if name == "" || number == "" {
		return nil, fmt.Errorf("%w: channel name and number are required", pkgerrors.ErrValidation)
	}

	ch := &models.Channel{
		ID:     uuid.New(),
		Kind:   kind,
		Name:   name,
		Number: number,
		Admin: models.Contact{
			Name:  strings.TrimSpace(in.AdminName),
			Email: models.NormalizeEmail(caller.Email),
		},
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

func (s *channelService) List(ctx context.Context, kind models.Kind) ([]models.Channel, error) {
	return s.repo.List(ctx, kind)
}

func (s *channelService) Get(ctx context.Context, kind models.Kind, id uuid.UUID) (*models.Channel, error) {
	return s.repo.GetByID(ctx, kind, id)
}

func (s *channelService) ListOwned(ctx context.Context, kind models.Kind, admin string) ([]models.Channel, error) {
	return s.repo.ListByAdmin(ctx, kind, models.NormalizeEmail(admin))
}

func (s *channelService) Update(ctx context.Context, kind models.Kind, id uuid.UUID, patch models.ChannelPatch) error {
	if patch.Name == nil && patch.Number == nil {
		return fmt.Errorf("%w: nothing to update", pkgerrors.ErrValidation)
	}
	affected, err := s.repo.Update(ctx, kind, id, patch)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkgerrors.ErrChannelNotFound
	}
	slog.Info("channel updated", "kind", kind, "channel_id", id)
	return nil
}

func (s *channelService) Delete(ctx context.Context, kind models.Kind, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, kind, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkgerrors.ErrChannelNotFound
	}
	return nil
}
