package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/itsprakash91/flood-relief-connect/internal/config"
	"github.com/itsprakash91/flood-relief-connect/internal/domain"
	"github.com/itsprakash91/flood-relief-connect/pkg/e"
	"github.com/itsprakash91/flood-relief-connect/pkg/validator"

	"github.com/google/uuid"
)

type queryService struct {
	repo   HelpRequestRepository
	geo    GeoRepository
	nearby config.NearbyConfig
	logger *slog.Logger
}

func NewQueryService(
	repo HelpRequestRepository,
	geo GeoRepository,
	nearby config.NearbyConfig,
	logger *slog.Logger,
) QueryService {
	return &queryService{
		repo:   repo,
		geo:    geo,
		nearby: nearby,
		logger: logger,
	}
}

func (s *queryService) Get(ctx context.Context, id uuid.UUID) (*domain.HelpRequest, error) {
	return s.repo.Get(ctx, id)
}

func (s *queryService) List(ctx context.Context, filter domain.ListFilter) ([]*domain.HelpRequest, error) {
	const op = "service.Query.List"

	if err := validator.ValidateStruct(filter); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, err, e.ErrInvalidInput)
	}
	return s.repo.List(ctx, filter)
}

// Nearby clamps the radius instead of rejecting oversized ones, caps the
// result count, and never returns completed requests.
func (s *queryService) Nearby(ctx context.Context, q domain.NearbyQuery) ([]*domain.HelpRequest, error) {
	const op = "service.Query.Nearby"

	if err := validator.ValidateStruct(q); err != nil {
		s.logger.Warn("nearby validation failed",
			slog.Float64("lat", q.Lat),
			slog.Float64("lng", q.Lng),
		)
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	radius := q.RadiusMeters
	if radius <= 0 {
		radius = s.nearby.DefaultRadiusMeters
	}
	if radius > s.nearby.MaxRadiusMeters {
		s.logger.Debug("nearby radius clamped",
			slog.Float64("requested", radius),
			slog.Float64("max", s.nearby.MaxRadiusMeters),
		)
		radius = s.nearby.MaxRadiusMeters
	}

	statuses := []domain.RequestStatus{domain.StatusPending, domain.StatusAccepted}
	return s.geo.FindNearby(ctx, q.Lat, q.Lng, radius, statuses, s.nearby.MaxResults)
}

func (s *queryService) Mine(ctx context.Context, actor domain.Actor) ([]*domain.HelpRequest, error) {
	const op = "service.Query.Mine"

	if !actor.Known() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnauthenticated)
	}
	id := actor.ID
	return s.repo.List(ctx, domain.ListFilter{Requester: &id})
}

func (s *queryService) Assigned(ctx context.Context, actor domain.Actor) ([]*domain.HelpRequest, error) {
	const op = "service.Query.Assigned"

	if !actor.Known() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnauthenticated)
	}
	id := actor.ID
	return s.repo.List(ctx, domain.ListFilter{Assigned: &id})
}
