package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/itsprakash91/flood-relief-connect/internal/domain"
	"github.com/itsprakash91/flood-relief-connect/internal/service"
	mock_service "github.com/itsprakash91/flood-relief-connect/internal/service/mocks"
	"github.com/itsprakash91/flood-relief-connect/pkg/e"
)

func admin() domain.Actor {
	return domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}
}

func TestDashboard_CacheHit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_service.NewMockStatsRepository(ctrl)
	audit := mock_service.NewMockAuditRepository(ctrl)
	cache := mock_service.NewMockStatsCache(ctrl)
	svc := service.NewDashboardService(stats, audit, cache, newTestLogger())

	cached := &domain.DashboardStats{TotalRequests: 42}
	cache.EXPECT().Get(gomock.Any()).Return(cached, nil).Times(1)

	got, err := svc.Dashboard(context.Background(), admin())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.TotalRequests != 42 {
		t.Fatalf("expected cached stats, got %+v", got)
	}
}

func TestDashboard_CacheMiss_FetchesAndStores(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_service.NewMockStatsRepository(ctrl)
	audit := mock_service.NewMockAuditRepository(ctrl)
	cache := mock_service.NewMockStatsCache(ctrl)
	svc := service.NewDashboardService(stats, audit, cache, newTestLogger())

	fresh := &domain.DashboardStats{TotalRequests: 7}

	cache.EXPECT().Get(gomock.Any()).Return(nil, nil).Times(1)
	stats.EXPECT().Dashboard(gomock.Any()).Return(fresh, nil).Times(1)
	cache.EXPECT().
		Set(gomock.Any(), fresh, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.DashboardStats, ttl time.Duration) error {
			if ttl <= 0 {
				t.Fatalf("ttl must be positive, got %v", ttl)
			}
			return nil
		}).
		Times(1)

	got, err := svc.Dashboard(context.Background(), admin())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.TotalRequests != 7 {
		t.Fatalf("unexpected stats %+v", got)
	}
}

// A broken cache degrades to postgres instead of failing the dashboard.
func TestDashboard_CacheErrorFallsThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_service.NewMockStatsRepository(ctrl)
	audit := mock_service.NewMockAuditRepository(ctrl)
	cache := mock_service.NewMockStatsCache(ctrl)
	svc := service.NewDashboardService(stats, audit, cache, newTestLogger())

	fresh := &domain.DashboardStats{PendingRequests: 3}

	cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("connection refused")).Times(1)
	stats.EXPECT().Dashboard(gomock.Any()).Return(fresh, nil).Times(1)
	cache.EXPECT().Set(gomock.Any(), fresh, gomock.Any()).Return(errors.New("still down")).Times(1)

	got, err := svc.Dashboard(context.Background(), admin())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.PendingRequests != 3 {
		t.Fatalf("unexpected stats %+v", got)
	}
}

func TestDashboard_Forbidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_service.NewMockStatsRepository(ctrl)
	audit := mock_service.NewMockAuditRepository(ctrl)
	cache := mock_service.NewMockStatsCache(ctrl)
	svc := service.NewDashboardService(stats, audit, cache, newTestLogger())

	volunteer := domain.Actor{ID: uuid.New(), Role: domain.RoleVolunteer}
	if _, err := svc.Dashboard(context.Background(), volunteer); !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Dashboard(context.Background(), domain.Actor{}); !errors.Is(err, e.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuditLogs_AdminOnly(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stats := mock_service.NewMockStatsRepository(ctrl)
	audit := mock_service.NewMockAuditRepository(ctrl)
	cache := mock_service.NewMockStatsCache(ctrl)
	svc := service.NewDashboardService(stats, audit, cache, newTestLogger())

	audit.EXPECT().List(gomock.Any(), 25).Return([]*domain.AuditEntry{{}}, nil).Times(1)

	logs, err := svc.AuditLogs(context.Background(), admin(), 25)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(logs))
	}

	volunteer := domain.Actor{ID: uuid.New(), Role: domain.RoleVolunteer}
	if _, err := svc.AuditLogs(context.Background(), volunteer, 25); !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
