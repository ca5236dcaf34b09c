package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/itsprakash91/flood-relief-connect/internal/domain"
	"github.com/itsprakash91/flood-relief-connect/internal/rbac"
	"github.com/itsprakash91/flood-relief-connect/pkg/e"
	"github.com/itsprakash91/flood-relief-connect/pkg/validator"

	"github.com/google/uuid"
)

type requestService struct {
	repo      HelpRequestRepository
	publisher EventPublisher
	webhooks  WebhookQueue
	logger    *slog.Logger
}

func NewRequestService(
	repo HelpRequestRepository,
	publisher EventPublisher,
	webhooks WebhookQueue,
	logger *slog.Logger,
) RequestService {
	return &requestService{
		repo:      repo,
		publisher: publisher,
		webhooks:  webhooks,
		logger:    logger,
	}
}

func (s *requestService) Create(ctx context.Context, actor domain.Actor, req domain.CreateHelpRequest) (*domain.HelpRequest, error) {
	const op = "service.Request.Create"

	if err := validator.ValidateStruct(req); err != nil {
		s.logger.Warn("create request validation failed", slog.Any("error", err))
		return nil, fmt.Errorf("%s: %s: %w", op, err, e.ErrInvalidInput)
	}

	// Anonymous creation is allowed; an authenticated actor still needs the
	// capability.
	if actor.Known() && !rbac.Authorize(actor, rbac.CapCreateRequest) {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}

	hr := &domain.HelpRequest{
		ID:          uuid.New(),
		Category:    req.Category,
		Description: req.Description,
		Lat:         req.Location.Lat,
		Lng:         req.Location.Lng,
		Address:     req.Location.Address,
		Status:      domain.StatusPending,
	}
	if actor.Known() {
		id := actor.ID
		hr.Requester = &id
	}

	if err := s.repo.Create(ctx, hr); err != nil {
		return nil, err
	}

	s.logger.Info("help request created",
		slog.String("id", hr.ID.String()),
		slog.String("category", string(hr.Category)),
	)

	s.emit(ctx, domain.Event{Type: domain.EventRequestCreated, Request: hr})
	return hr, nil
}

func (s *requestService) Accept(ctx context.Context, actor domain.Actor, id, volunteerID uuid.UUID) (*domain.HelpRequest, error) {
	const op = "service.Request.Accept"

	if !actor.Known() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnauthenticated)
	}
	if !rbac.Authorize(actor, rbac.CapAcceptRequests) {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	if volunteerID == uuid.Nil {
		return nil, fmt.Errorf("%s: volunteer required when accepting: %w", op, e.ErrInvalidInput)
	}
	// A volunteer accepts as themselves; only override holders assign others.
	if volunteerID != actor.ID && !rbac.Authorize(actor, rbac.CapAdminOverride) {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}

	hr, err := s.repo.AcceptPending(ctx, id, volunteerID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("help request accepted",
		slog.String("id", hr.ID.String()),
		slog.String("volunteer", volunteerID.String()),
	)

	s.emit(ctx, domain.Event{Type: domain.EventRequestUpdated, Request: hr})
	return hr, nil
}

func (s *requestService) Complete(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.HelpRequest, error) {
	const op = "service.Request.Complete"

	if !actor.Known() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnauthenticated)
	}
	if !rbac.Authorize(actor, rbac.CapUpdateRequestStatus) {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !rbac.CanComplete(actor, current) {
		return nil, fmt.Errorf("%s: not the assigned volunteer: %w", op, e.ErrForbidden)
	}

	// The read above is advisory only; the status guard is re-evaluated by
	// the conditional commit.
	hr, err := s.repo.CompleteAccepted(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("help request completed", slog.String("id", hr.ID.String()))

	s.emit(ctx, domain.Event{Type: domain.EventRequestUpdated, Request: hr})
	return hr, nil
}

func (s *requestService) Override(ctx context.Context, actor domain.Actor, id uuid.UUID, req domain.OverrideHelpRequest) (*domain.HelpRequest, error) {
	const op = "service.Request.Override"

	if !actor.Known() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnauthenticated)
	}
	if !rbac.Authorize(actor, rbac.CapAdminOverride) {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, err, e.ErrInvalidInput)
	}

	hr, err := s.repo.Override(ctx, id, req.Status, actor.ID, req.Notes)
	if err != nil {
		return nil, err
	}

	s.logger.Info("help request overridden",
		slog.String("id", hr.ID.String()),
		slog.String("new_status", string(hr.Status)),
		slog.String("actor", actor.ID.String()),
	)

	s.emit(ctx, domain.Event{Type: domain.EventRequestUpdated, Request: hr})
	return hr, nil
}

// emit runs after the commit has returned. Publish never blocks and queue
// failures are logged, not surfaced: the mutation already succeeded.
func (s *requestService) emit(ctx context.Context, ev domain.Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	if s.publisher != nil {
		s.publisher.Publish(ctx, ev)
	}
	if s.webhooks != nil {
		if err := s.webhooks.Enqueue(ctx, ev); err != nil {
			s.logger.Error("enqueue webhook failed", slog.Any("error", err), slog.String("event", string(ev.Type)))
		}
	}
}
