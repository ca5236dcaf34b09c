package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/itsprakash91/flood-relief-connect/internal/domain"
	"github.com/itsprakash91/flood-relief-connect/internal/rbac"
	"github.com/itsprakash91/flood-relief-connect/pkg/e"
	"github.com/itsprakash91/flood-relief-connect/pkg/validator"

	"github.com/google/uuid"
)

type donationService struct {
	repo      DonationRepository
	publisher EventPublisher
	webhooks  WebhookQueue
	logger    *slog.Logger
}

func NewDonationService(
	repo DonationRepository,
	publisher EventPublisher,
	webhooks WebhookQueue,
	logger *slog.Logger,
) DonationService {
	return &donationService{
		repo:      repo,
		publisher: publisher,
		webhooks:  webhooks,
		logger:    logger,
	}
}

func (s *donationService) Create(ctx context.Context, actor domain.Actor, req domain.CreateDonation) (*domain.Donation, error) {
	const op = "service.Donation.Create"

	if !actor.Known() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnauthenticated)
	}
	if !rbac.Authorize(actor, rbac.CapMakeDonation) {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, err, e.ErrInvalidInput)
	}

	d := &domain.Donation{
		ID:     uuid.New(),
		Payer:  actor.ID,
		Amount: req.Amount,
		Status: domain.DonationPending,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("donation created", slog.String("id", d.ID.String()), slog.Int64("amount", d.Amount))
	return d, nil
}

// Complete is invoked by the payment collaborator once capture and signature
// verification succeeded. The core does not re-validate the payment.
func (s *donationService) Complete(ctx context.Context, id uuid.UUID) (*domain.Donation, error) {
	d, err := s.repo.CompletePending(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("donation completed", slog.String("id", d.ID.String()), slog.Int64("amount", d.Amount))

	ev := domain.Event{Type: domain.EventDonationCompleted, Donation: d}
	if s.publisher != nil {
		s.publisher.Publish(ctx, ev)
	}
	if s.webhooks != nil {
		if err := s.webhooks.Enqueue(ctx, ev); err != nil {
			s.logger.Error("enqueue webhook failed", slog.Any("error", err))
		}
	}
	return d, nil
}

func (s *donationService) Mine(ctx context.Context, actor domain.Actor) ([]*domain.Donation, error) {
	const op = "service.Donation.Mine"

	if !actor.Known() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnauthenticated)
	}
	return s.repo.ListByPayer(ctx, actor.ID)
}

func (s *donationService) All(ctx context.Context, actor domain.Actor) ([]*domain.Donation, domain.DonationTotals, error) {
	const op = "service.Donation.All"

	if !actor.Known() {
		return nil, domain.DonationTotals{}, fmt.Errorf("%s: %w", op, e.ErrUnauthenticated)
	}
	if !rbac.Authorize(actor, rbac.CapManageDonations) {
		return nil, domain.DonationTotals{}, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}

	donations, err := s.repo.ListAll(ctx, 100)
	if err != nil {
		return nil, domain.DonationTotals{}, err
	}
	totals, err := s.repo.Totals(ctx)
	if err != nil {
		return nil, domain.DonationTotals{}, err
	}
	return donations, totals, nil
}
