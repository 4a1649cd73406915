package repository

import (
	"context"
	"fmt"
	"strings"

	"trip-genie/internal/data/entity"
	"trip-genie/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type HistoricalPlaceFilter struct {
	MinPrice *float64
	MaxPrice *float64
	TagTypes []string
}

type HistoricalPlaceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.HistoricalPlace, error)
	SearchIDs(ctx context.Context, text string) ([]uuid.UUID, error)
	FilterIDs(ctx context.Context, filter HistoricalPlaceFilter) ([]uuid.UUID, error)
	FindByIDSets(ctx context.Context, searchIDs, filterIDs []uuid.UUID, limit, offset int) ([]*entity.HistoricalPlace, error)
	CountByIDSets(ctx context.Context, searchIDs, filterIDs []uuid.UUID) (int64, error)
}

type historicalPlaceRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewHistoricalPlaceRepository(db database.Querier, log *zap.Logger) HistoricalPlaceRepository {
	return &historicalPlaceRepository{
		db:  db,
		log: log.With(zap.String("repository", "historical_place")),
	}
}

const placeColumns = `id, name, description, location, ticket_price, opening_hours, created_at, updated_at`

func (r *historicalPlaceRepository) scanRow(row pgx.Row) (*entity.HistoricalPlace, error) {
	var place entity.HistoricalPlace
	err := row.Scan(
		&place.ID,
		&place.Name,
		&place.Description,
		&place.Location,
		&place.TicketPrice,
		&place.OpeningHours,
		&place.CreatedAt,
		&place.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *historicalPlaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.HistoricalPlace, error) {
	query := `
		SELECT ` + placeColumns + `
		FROM historical_places
		WHERE id = $1 AND deleted_at IS NULL
	`

	place, err := r.scanRow(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find historical place by ID",
			zap.Error(err),
			zap.String("place_id", id.String()),
		)
		return nil, fmt.Errorf("find historical place by ID %s: %w", id.String(), err)
	}

	return place, nil
}

func (r *historicalPlaceRepository) SearchIDs(ctx context.Context, text string) ([]uuid.UUID, error) {
	if text == "" {
		return collectUUIDs(ctx, r.db, r.log, `SELECT id FROM historical_places WHERE deleted_at IS NULL`, nil, "search historical places")
	}

	query := `
		SELECT DISTINCT p.id
		FROM historical_places p
		WHERE p.deleted_at IS NULL
		  AND (p.name ILIKE $1 OR p.description ILIKE $1 OR p.location ILIKE $1
		       OR EXISTS (
		           SELECT 1 FROM place_tags pt
		           JOIN tags t ON t.id = pt.tag_id
		           WHERE pt.place_id = p.id AND t.name ILIKE $1
		       ))
	`

	return collectUUIDs(ctx, r.db, r.log, query, []any{"%" + text + "%"}, "search historical places")
}

func (r *historicalPlaceRepository) FilterIDs(ctx context.Context, filter HistoricalPlaceFilter) ([]uuid.UUID, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT p.id FROM historical_places p WHERE p.deleted_at IS NULL`)

	args := []any{}
	argCount := 1

	if filter.MinPrice != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.ticket_price >= $%d", argCount))
		args = append(args, *filter.MinPrice)
		argCount++
	}
	if filter.MaxPrice != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.ticket_price <= $%d", argCount))
		args = append(args, *filter.MaxPrice)
		argCount++
	}
	if len(filter.TagTypes) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM place_tags pt JOIN tags t ON t.id = pt.tag_id WHERE pt.place_id = p.id AND t.type = ANY($%d))", argCount))
		args = append(args, filter.TagTypes)
		argCount++
	}

	return collectUUIDs(ctx, r.db, r.log, queryBuilder.String(), args, "filter historical places")
}

func (r *historicalPlaceRepository) FindByIDSets(ctx context.Context, searchIDs, filterIDs []uuid.UUID, limit, offset int) ([]*entity.HistoricalPlace, error) {
	query := `
		SELECT ` + placeColumns + `
		FROM historical_places
		WHERE deleted_at IS NULL AND id = ANY($1) AND id = ANY($2)
		ORDER BY name
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, searchIDs, filterIDs, limit, offset)
	if err != nil {
		r.log.Error("Failed to find historical places by id sets",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find historical places limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var places []*entity.HistoricalPlace
	for rows.Next() {
		place, err := r.scanRow(rows)
		if err != nil {
			r.log.Error("Failed to scan historical place row", zap.Error(err))
			return nil, fmt.Errorf("scan historical place row: %w", err)
		}
		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate historical place rows: %w", err)
	}

	return places, nil
}

func (r *historicalPlaceRepository) CountByIDSets(ctx context.Context, searchIDs, filterIDs []uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM historical_places WHERE deleted_at IS NULL AND id = ANY($1) AND id = ANY($2)`

	var total int64
	err := r.db.QueryRow(ctx, query, searchIDs, filterIDs).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count historical places", zap.Error(err))
		return 0, fmt.Errorf("count historical places: %w", err)
	}

	return total, nil
}
