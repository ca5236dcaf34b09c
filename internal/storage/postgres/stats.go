package postgres

import (
	"context"
	"log/slog"

	"github.com/itsprakash91/flood-relief-connect/internal/domain"
	"github.com/itsprakash91/flood-relief-connect/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsRepo(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

func (p *StatsRepo) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	const op = "postgres.Stats.Dashboard"

	const countsQuery = `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status = 'pending'),
			   COUNT(*) FILTER (WHERE status = 'accepted'),
			   COUNT(*) FILTER (WHERE status = 'completed')
		FROM help_requests
	`

	var stats domain.DashboardStats
	if err := p.pool.QueryRow(ctx, countsQuery).Scan(
		&stats.TotalRequests,
		&stats.PendingRequests,
		&stats.AcceptedRequests,
		&stats.CompletedRequests,
	); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	const byCategoryQuery = `
		SELECT category, COUNT(*)
		FROM help_requests
		GROUP BY category
		ORDER BY COUNT(*) DESC
	`

	rows, err := p.pool.Query(ctx, byCategoryQuery)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var cc domain.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		stats.ByCategory = append(stats.ByCategory, cc)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	const donationsQuery = `
		SELECT COUNT(*), COALESCE(SUM(amount), 0)
		FROM donations
		WHERE status = 'completed'
	`

	if err := p.pool.QueryRow(ctx, donationsQuery).Scan(&stats.Donations.Count, &stats.Donations.Amount); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &stats, nil
}
