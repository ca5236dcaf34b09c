package postgres

import (
	"context"
	"log/slog"

	"github.com/itsprakash91/flood-relief-connect/internal/domain"
	"github.com/itsprakash91/flood-relief-connect/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AuditRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAuditRepo(pool *pgxpool.Pool, logger *slog.Logger) *AuditRepo {
	return &AuditRepo{pool: pool, logger: logger}
}

func (p *AuditRepo) List(ctx context.Context, limit int) ([]*domain.AuditEntry, error) {
	const op = "postgres.Audit.List"

	if limit <= 0 || limit > 500 {
		limit = 100
	}

	const query = `
		SELECT id, request_id, actor, prev_status, new_status, COALESCE(notes, ''), created_at
		FROM request_audit_log
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := p.pool.Query(ctx, query, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var entries []*domain.AuditEntry
	for rows.Next() {
		var entry domain.AuditEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.RequestID,
			&entry.Actor,
			&entry.PrevStatus,
			&entry.NewStatus,
			&entry.Notes,
			&entry.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return entries, nil
}
