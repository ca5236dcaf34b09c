package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/itsprakash91/flood-relief-connect/internal/domain"
	"github.com/itsprakash91/flood-relief-connect/internal/rbac"
	"github.com/itsprakash91/flood-relief-connect/pkg/e"
)

const statsTTL = 30 * time.Second

type dashboardService struct {
	stats  StatsRepository
	audit  AuditRepository
	cache  StatsCache
	logger *slog.Logger
}

func NewDashboardService(
	stats StatsRepository,
	audit AuditRepository,
	cache StatsCache,
	logger *slog.Logger,
) DashboardService {
	return &dashboardService{
		stats:  stats,
		audit:  audit,
		cache:  cache,
		logger: logger,
	}
}

// Dashboard serves the read-only aggregate. A cache miss or a cache failure
// falls through to postgres; only the write back is best-effort.
func (s *dashboardService) Dashboard(ctx context.Context, actor domain.Actor) (*domain.DashboardStats, error) {
	const op = "service.Dashboard.Dashboard"

	if !actor.Known() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnauthenticated)
	}
	if !rbac.Authorize(actor, rbac.CapViewDashboard) {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("stats cache get failed", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	stats, err := s.stats.Dashboard(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, stats, statsTTL); err != nil {
			s.logger.Warn("stats cache set failed", slog.Any("error", err))
		}
	}
	return stats, nil
}

func (s *dashboardService) AuditLogs(ctx context.Context, actor domain.Actor, limit int) ([]*domain.AuditEntry, error) {
	const op = "service.Dashboard.AuditLogs"

	if !actor.Known() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnauthenticated)
	}
	if !rbac.Authorize(actor, rbac.CapAdminOverride) {
		return nil, fmt.Errorf("%s: %w", op, e.ErrForbidden)
	}
	return s.audit.List(ctx, limit)
}
