package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/itsprakash91/flood-relief-connect/internal/domain"
	"github.com/itsprakash91/flood-relief-connect/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const donationColumns = `id, payer, amount, status, created_at, completed_at`

type DonationRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewDonationRepo(pool *pgxpool.Pool, logger *slog.Logger) *DonationRepo {
	return &DonationRepo{pool: pool, logger: logger}
}

func scanDonation(row rowScanner) (*domain.Donation, error) {
	var d domain.Donation
	err := row.Scan(&d.ID, &d.Payer, &d.Amount, &d.Status, &d.CreatedAt, &d.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (p *DonationRepo) Create(ctx context.Context, d *domain.Donation) error {
	const op = "postgres.Donation.Create"

	if d.Amount <= 0 || d.Payer == uuid.Nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	if d.Status == "" {
		d.Status = domain.DonationPending
	}

	const query = `
		INSERT INTO donations (id, payer, amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := p.pool.Exec(ctx, query, d.ID, d.Payer, d.Amount, d.Status, d.CreatedAt)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *DonationRepo) ListByPayer(ctx context.Context, payer uuid.UUID) ([]*domain.Donation, error) {
	const op = "postgres.Donation.ListByPayer"

	query := `SELECT ` + donationColumns + ` FROM donations WHERE payer = $1 ORDER BY created_at DESC`

	return p.queryDonations(ctx, op, query, payer)
}

func (p *DonationRepo) ListAll(ctx context.Context, limit int) ([]*domain.Donation, error) {
	const op = "postgres.Donation.ListAll"

	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := `SELECT ` + donationColumns + ` FROM donations ORDER BY created_at DESC LIMIT $1`

	return p.queryDonations(ctx, op, query, limit)
}

func (p *DonationRepo) queryDonations(ctx context.Context, op, query string, args ...any) ([]*domain.Donation, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var donations []*domain.Donation
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		donations = append(donations, d)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return donations, nil
}

func (p *DonationRepo) Totals(ctx context.Context) (domain.DonationTotals, error) {
	const op = "postgres.Donation.Totals"

	const query = `
		SELECT COUNT(*), COALESCE(SUM(amount), 0)
		FROM donations
		WHERE status = 'completed'
	`

	var totals domain.DonationTotals
	if err := p.pool.QueryRow(ctx, query).Scan(&totals.Count, &totals.Amount); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return domain.DonationTotals{}, e.WrapError(ctx, op, err)
	}

	return totals, nil
}

// CompletePending is the donation counterpart of the request guard: completion
// reported by the payment collaborator applies once, never twice.
func (p *DonationRepo) CompletePending(ctx context.Context, id uuid.UUID) (*domain.Donation, error) {
	const op = "postgres.Donation.CompletePending"

	query := `
		UPDATE donations
		SET status = 'completed', completed_at = $2
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + donationColumns

	d, err := scanDonation(p.pool.QueryRow(ctx, query, id, time.Now().UTC()))
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	var exists bool
	if checkErr := p.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM donations WHERE id = $1)`, id).Scan(&exists); checkErr != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", checkErr), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, checkErr)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil, fmt.Errorf("%s: donation already completed: %w", op, e.ErrConflict)
}
