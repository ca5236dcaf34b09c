package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/itsprakash91/flood-relief-connect/internal/domain"
	"github.com/itsprakash91/flood-relief-connect/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type GeoRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewGeoRepo(pool *pgxpool.Pool, logger *slog.Logger) *GeoRepo {
	return &GeoRepo{pool: pool, logger: logger}
}

// FindNearby returns requests within radiusMeters of (lat, lng), nearest
// first, creation time breaking ties. geo_point is geography(Point, 4326) so
// ST_DWithin/ST_Distance operate in meters; the GiST index keeps the scan
// bounded. Pure read path.
func (p *GeoRepo) FindNearby(ctx context.Context, lat, lng, radiusMeters float64, statuses []domain.RequestStatus, limit int) ([]*domain.HelpRequest, error) {
	const op = "postgres.Geo.FindNearby"

	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if radiusMeters <= 0 || limit <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if len(statuses) == 0 {
		statuses = []domain.RequestStatus{domain.StatusPending, domain.StatusAccepted}
	}

	wanted := make([]string, len(statuses))
	for i, s := range statuses {
		wanted[i] = string(s)
	}

	query := `
SELECT ` + helpRequestColumns + `,
	   ST_Distance(geo_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) AS distance_m
FROM help_requests
WHERE status = ANY($3)
  AND ST_DWithin(geo_point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $4)
ORDER BY distance_m ASC, created_at ASC
LIMIT $5
`

	rows, err := p.pool.Query(ctx, query, lng, lat, wanted, radiusMeters, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	requests := make([]*domain.HelpRequest, 0, 8)
	for rows.Next() {
		var req domain.HelpRequest
		if err := rows.Scan(
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
			&req.DistanceMeters,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		requests = append(requests, &req)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return requests, nil
}
