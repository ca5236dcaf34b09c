package service

import (
	"context"
	"time"

	"github.com/itsprakash91/flood-relief-connect/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// RequestService owns the lifecycle of a help request. Every transition is
// validate -> authorize -> conditional commit -> publish.
type RequestService interface {
	Create(ctx context.Context, actor domain.Actor, req domain.CreateHelpRequest) (*domain.HelpRequest, error)
	Accept(ctx context.Context, actor domain.Actor, id, volunteerID uuid.UUID) (*domain.HelpRequest, error)
	Complete(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.HelpRequest, error)
	Override(ctx context.Context, actor domain.Actor, id uuid.UUID, req domain.OverrideHelpRequest) (*domain.HelpRequest, error)
}

// QueryService is the pure read path.
type QueryService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.HelpRequest, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.HelpRequest, error)
	Nearby(ctx context.Context, q domain.NearbyQuery) ([]*domain.HelpRequest, error)
	Mine(ctx context.Context, actor domain.Actor) ([]*domain.HelpRequest, error)
	Assigned(ctx context.Context, actor domain.Actor) ([]*domain.HelpRequest, error)
}

type DonationService interface {
	Create(ctx context.Context, actor domain.Actor, req domain.CreateDonation) (*domain.Donation, error)
	Complete(ctx context.Context, id uuid.UUID) (*domain.Donation, error)
	Mine(ctx context.Context, actor domain.Actor) ([]*domain.Donation, error)
	All(ctx context.Context, actor domain.Actor) ([]*domain.Donation, domain.DonationTotals, error)
}

type DashboardService interface {
	Dashboard(ctx context.Context, actor domain.Actor) (*domain.DashboardStats, error)
	AuditLogs(ctx context.Context, actor domain.Actor, limit int) ([]*domain.AuditEntry, error)
}

// Storage contracts, consumer side.
type HelpRequestRepository interface {
	Create(ctx context.Context, req *domain.HelpRequest) error
	Get(ctx context.Context, id uuid.UUID) (*domain.HelpRequest, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.HelpRequest, error)
	AcceptPending(ctx context.Context, id, volunteerID uuid.UUID) (*domain.HelpRequest, error)
	CompleteAccepted(ctx context.Context, id uuid.UUID) (*domain.HelpRequest, error)
	Override(ctx context.Context, id uuid.UUID, newStatus domain.RequestStatus, actor uuid.UUID, notes string) (*domain.HelpRequest, error)
}

type GeoRepository interface {
	FindNearby(ctx context.Context, lat, lng, radiusMeters float64, statuses []domain.RequestStatus, limit int) ([]*domain.HelpRequest, error)
}

type DonationRepository interface {
	Create(ctx context.Context, d *domain.Donation) error
	ListByPayer(ctx context.Context, payer uuid.UUID) ([]*domain.Donation, error)
	ListAll(ctx context.Context, limit int) ([]*domain.Donation, error)
	Totals(ctx context.Context) (domain.DonationTotals, error)
	CompletePending(ctx context.Context, id uuid.UUID) (*domain.Donation, error)
}

type AuditRepository interface {
	List(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}

type StatsRepository interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}

type StatsCache interface {
	Get(ctx context.Context) (*domain.DashboardStats, error)
	Set(ctx context.Context, stats *domain.DashboardStats, ttl time.Duration) error
}

// EventPublisher receives committed state changes; see internal/events.
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.Event)
}

type WebhookQueue interface {
	Enqueue(ctx context.Context, ev domain.Event) error
}

type Service struct {
	RequestService   RequestService
	QueryService     QueryService
	DonationService  DonationService
	DashboardService DashboardService
}

func NewService(
	requestService RequestService,
	queryService QueryService,
	donationService DonationService,
	dashboardService DashboardService,
) *Service {
	return &Service{
		RequestService:   requestService,
		QueryService:     queryService,
		DonationService:  donationService,
		DashboardService: dashboardService,
	}
}
