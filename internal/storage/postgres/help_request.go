package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/itsprakash91/flood-relief-connect/internal/domain"
	"github.com/itsprakash91/flood-relief-connect/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const helpRequestColumns = `id,
	   requester,
	   category,
	   description,
	   ST_Y(geo_point::geometry) AS lat,
	   ST_X(geo_point::geometry) AS lng,
	   COALESCE(address, ''),
	   status,
	   assigned_volunteer,
	   created_at,
	   accepted_at,
	   completed_at`

type HelpRequestRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewHelpRequestRepo(pool *pgxpool.Pool, logger *slog.Logger) *HelpRequestRepo {
	return &HelpRequestRepo{pool: pool, logger: logger}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHelpRequest(row rowScanner) (*domain.HelpRequest, error) {
	var req domain.HelpRequest
	err := row.Scan(
		&req.ID,
		&req.Requester,
		&req.Category,
		&req.Description,
		&req.Lat,
		&req.Lng,
		&req.Address,
		&req.Status,
		&req.AssignedVolunteer,
		&req.CreatedAt,
		&req.AcceptedAt,
		&req.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (p *HelpRequestRepo) Create(ctx context.Context, req *domain.HelpRequest) error {
	const op = "postgres.HelpRequest.Create"

	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	const query = `
		INSERT INTO help_requests (id, requester, category, description, geo_point, address, status, created_at)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326)::geography, NULLIF($7, ''), $8, $9)
	`

	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}
	if req.Status == "" {
		req.Status = domain.StatusPending
	}

	_, err := p.pool.Exec(ctx, query,
		req.ID,
		req.Requester,
		req.Category,
		req.Description,
		req.Lng,
		req.Lat,
		req.Address,
		req.Status,
		req.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *HelpRequestRepo) Get(ctx context.Context, id uuid.UUID) (*domain.HelpRequest, error) {
	const op = "postgres.HelpRequest.Get"

	query := `SELECT ` + helpRequestColumns + ` FROM help_requests WHERE id = $1`

	req, err := scanHelpRequest(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return req, nil
}

func (p *HelpRequestRepo) List(ctx context.Context, filter domain.ListFilter) ([]*domain.HelpRequest, error) {
	const op = "postgres.HelpRequest.List"

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.Status != nil {
		add("status = $%d", *filter.Status)
	}
	if filter.Category != nil {
		add("category = $%d", *filter.Category)
	}
	if filter.Requester != nil {
		add("requester = $%d", *filter.Requester)
	}
	if filter.Assigned != nil {
		add("assigned_volunteer = $%d", *filter.Assigned)
	}

	query := `SELECT ` + helpRequestColumns + ` FROM help_requests`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var requests []*domain.HelpRequest
	for rows.Next() {
		req, err := scanHelpRequest(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return requests, nil
}

// AcceptPending applies "status=accepted, assigned_volunteer, accepted_at only
// if status is still pending" as one guarded UPDATE. Under concurrent accepts
// exactly one caller gets the row back; the rest see zero rows affected.
func (p *HelpRequestRepo) AcceptPending(ctx context.Context, id, volunteerID uuid.UUID) (*domain.HelpRequest, error) {
	const op = "postgres.HelpRequest.AcceptPending"

	if volunteerID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	query := `
		UPDATE help_requests
		SET status = 'accepted',
			assigned_volunteer = $2,
			accepted_at = $3
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + helpRequestColumns

	req, err := scanHelpRequest(p.pool.QueryRow(ctx, query, id, volunteerID, time.Now().UTC()))
	if err == nil {
		return req, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	// Guard failed: disambiguate with a read outside the commit path.
	_, getErr := p.Get(ctx, id)
	return nil, guardMiss(getErr, fmt.Errorf("%s: request already accepted: %w", op, e.ErrConflict))
}

// guardMiss maps a zero-row guarded UPDATE onto the caller-facing error. A
// follow-up read that succeeds means the row exists in the wrong state, so
// the guard lost a race; a read that fails propagates as itself, NotFound
// included, so a transient persistence failure is never reported as NotFound.
func guardMiss(getErr error, conflict error) error {
	if getErr == nil {
		return conflict
	}
	return getErr
}

// CompleteAccepted follows the same conditional-commit discipline, guarded on
// status=accepted.
func (p *HelpRequestRepo) CompleteAccepted(ctx context.Context, id uuid.UUID) (*domain.HelpRequest, error) {
	const op = "postgres.HelpRequest.CompleteAccepted"

	query := `
		UPDATE help_requests
		SET status = 'completed',
			completed_at = $2
		WHERE id = $1 AND status = 'accepted'
		RETURNING ` + helpRequestColumns

	req, err := scanHelpRequest(p.pool.QueryRow(ctx, query, id, time.Now().UTC()))
	if err == nil {
		return req, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	_, getErr := p.Get(ctx, id)
	return nil, guardMiss(getErr, fmt.Errorf("%s: request is not accepted: %w", op, e.ErrConflict))
}

// Override forces newStatus regardless of the current state. The state change
// and its audit entry commit in one transaction: no override without audit.
// Forcing accepted assigns the acting admin when no volunteer is set; forcing
// pending clears the assignment so the volunteer invariant holds.
func (p *HelpRequestRepo) Override(ctx context.Context, id uuid.UUID, newStatus domain.RequestStatus, actor uuid.UUID, notes string) (*domain.HelpRequest, error) {
	const op = "postgres.HelpRequest.Override"

	if !newStatus.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Error("tx begin failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	var prev domain.RequestStatus
	err = tx.QueryRow(ctx, `SELECT status FROM help_requests WHERE id = $1 FOR UPDATE`, id).Scan(&prev)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	now := time.Now().UTC()
	var updateQuery string
	switch newStatus {
	case domain.StatusPending:
		updateQuery = `
			UPDATE help_requests
			SET status = 'pending', assigned_volunteer = NULL, accepted_at = NULL, completed_at = NULL
			WHERE id = $1
			RETURNING ` + helpRequestColumns
	case domain.StatusAccepted:
		updateQuery = `
			UPDATE help_requests
			SET status = 'accepted',
				assigned_volunteer = COALESCE(assigned_volunteer, $2),
				accepted_at = COALESCE(accepted_at, $3),
				completed_at = NULL
			WHERE id = $1
			RETURNING ` + helpRequestColumns
	case domain.StatusCompleted:
		updateQuery = `
			UPDATE help_requests
			SET status = 'completed',
				assigned_volunteer = COALESCE(assigned_volunteer, $2),
				accepted_at = COALESCE(accepted_at, $3),
				completed_at = $3
			WHERE id = $1
			RETURNING ` + helpRequestColumns
	}

	var req *domain.HelpRequest
	if newStatus == domain.StatusPending {
		req, err = scanHelpRequest(tx.QueryRow(ctx, updateQuery, id))
	} else {
		req, err = scanHelpRequest(tx.QueryRow(ctx, updateQuery, id, actor, now))
	}
	if err != nil {
		p.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO request_audit_log (id, request_id, actor, prev_status, new_status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.New(), id, actor, prev, newStatus, notes, now)
	if err != nil {
		p.logger.Error("audit insert failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("tx commit failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return req, nil
}
