package postgres

import (
	"context"

	"github.com/itsprakash91/flood-relief-connect/internal/domain"

	"github.com/google/uuid"
)

type HelpRequestRepository interface {
	Create(ctx context.Context, req *domain.HelpRequest) error
	Get(ctx context.Context, id uuid.UUID) (*domain.HelpRequest, error)
	List(ctx context.Context, filter domain.ListFilter) ([]*domain.HelpRequest, error)

	// AcceptPending and CompleteAccepted are the conditional-commit
	// primitives: a single guarded UPDATE, all-or-nothing.
	AcceptPending(ctx context.Context, id, volunteerID uuid.UUID) (*domain.HelpRequest, error)
	CompleteAccepted(ctx context.Context, id uuid.UUID) (*domain.HelpRequest, error)

	// Override bypasses the status guard but commits the new state and its
	// audit entry in one transaction.
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

func (p *Postgres) HelpRequests() HelpRequestRepository { return p.Requests }
func (p *Postgres) Nearby() GeoRepository               { return p.Geo }
func (p *Postgres) Donations() DonationRepository       { return p.Donation }
func (p *Postgres) AuditLog() AuditRepository           { return p.Audit }
func (p *Postgres) Stats() StatsRepository              { return p.Stat }
