package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trip-genie/internal/data/entity"
	"trip-genie/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ItineraryFilter struct {
	MinPrice  *float64
	MaxPrice  *float64
	StartDate *time.Time
	EndDate   *time.Time
	Language  string
	MinRating *float64
	TagTypes  []string
}

type ItineraryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Itinerary, error)
	SearchIDs(ctx context.Context, text string) ([]uuid.UUID, error)
	FilterIDs(ctx context.Context, filter ItineraryFilter) ([]uuid.UUID, error)
	FindByIDSets(ctx context.Context, searchIDs, filterIDs []uuid.UUID, limit, offset int) ([]*entity.Itinerary, error)
	CountByIDSets(ctx context.Context, searchIDs, filterIDs []uuid.UUID) (int64, error)
}

type itineraryRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewItineraryRepository(db database.Querier, log *zap.Logger) ItineraryRepository {
	return &itineraryRepository{
		db:  db,
		log: log.With(zap.String("repository", "itinerary")),
	}
}

const itineraryColumns = `id, title, description, location, language, price, available_from, available_to, rating, is_active, created_at, updated_at`

func (r *itineraryRepository) scanRow(row pgx.Row) (*entity.Itinerary, error) {
	var itinerary entity.Itinerary
	err := row.Scan(
		&itinerary.ID,
		&itinerary.Title,
		&itinerary.Description,
		&itinerary.Location,
		&itinerary.Language,
		&itinerary.Price,
		&itinerary.AvailableFrom,
		&itinerary.AvailableTo,
		&itinerary.Rating,
		&itinerary.IsActive,
		&itinerary.CreatedAt,
		&itinerary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Itinerary, error) {
	query := `
		SELECT ` + itineraryColumns + `
		FROM itineraries
		WHERE id = $1 AND deleted_at IS NULL
	`

	itinerary, err := r.scanRow(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find itinerary by ID",
			zap.Error(err),
			zap.String("itinerary_id", id.String()),
		)
		return nil, fmt.Errorf("find itinerary by ID %s: %w", id.String(), err)
	}

	return itinerary, nil
}

func (r *itineraryRepository) SearchIDs(ctx context.Context, text string) ([]uuid.UUID, error) {
	if text == "" {
		return collectUUIDs(ctx, r.db, r.log, `SELECT id FROM itineraries WHERE deleted_at IS NULL`, nil, "search itineraries")
	}

	query := `
		SELECT DISTINCT i.id
		FROM itineraries i
		WHERE i.deleted_at IS NULL
		  AND (i.title ILIKE $1 OR i.description ILIKE $1 OR i.location ILIKE $1
		       OR EXISTS (
		           SELECT 1 FROM itinerary_tags it
		           JOIN tags t ON t.id = it.tag_id
		           WHERE it.itinerary_id = i.id AND t.name ILIKE $1
		       ))
	`

	return collectUUIDs(ctx, r.db, r.log, query, []any{"%" + text + "%"}, "search itineraries")
}

func (r *itineraryRepository) FilterIDs(ctx context.Context, filter ItineraryFilter) ([]uuid.UUID, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT i.id FROM itineraries i WHERE i.deleted_at IS NULL`)

	args := []any{}
	argCount := 1

	if filter.MinPrice != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND i.price >= $%d", argCount))
		args = append(args, *filter.MinPrice)
		argCount++
	}
	if filter.MaxPrice != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND i.price <= $%d", argCount))
		args = append(args, *filter.MaxPrice)
		argCount++
	}
	if filter.StartDate != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND i.available_to >= $%d", argCount))
		args = append(args, *filter.StartDate)
		argCount++
	}
	if filter.EndDate != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND i.available_from <= $%d", argCount))
		args = append(args, *filter.EndDate)
		argCount++
	}
	if filter.Language != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND i.language ILIKE $%d", argCount))
		args = append(args, "%"+filter.Language+"%")
		argCount++
	}
	if filter.MinRating != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND i.rating >= $%d", argCount))
		args = append(args, *filter.MinRating)
		argCount++
	}
	if len(filter.TagTypes) > 0 {
		// Tag types are ORed against each other inside one EXISTS clause.
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM itinerary_tags it JOIN tags t ON t.id = it.tag_id WHERE it.itinerary_id = i.id AND t.type = ANY($%d))", argCount))
		args = append(args, filter.TagTypes)
		argCount++
	}

	return collectUUIDs(ctx, r.db, r.log, queryBuilder.String(), args, "filter itineraries")
}

func (r *itineraryRepository) FindByIDSets(ctx context.Context, searchIDs, filterIDs []uuid.UUID, limit, offset int) ([]*entity.Itinerary, error) {
	query := `
		SELECT ` + itineraryColumns + `
		FROM itineraries
		WHERE deleted_at IS NULL AND id = ANY($1) AND id = ANY($2)
		ORDER BY available_from, title
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, searchIDs, filterIDs, limit, offset)
	if err != nil {
		r.log.Error("Failed to find itineraries by id sets",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find itineraries limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var itineraries []*entity.Itinerary
	for rows.Next() {
		itinerary, err := r.scanRow(rows)
		if err != nil {
			r.log.Error("Failed to scan itinerary row", zap.Error(err))
			return nil, fmt.Errorf("scan itinerary row: %w", err)
		}
		itineraries = append(itineraries, itinerary)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate itinerary rows: %w", err)
	}

	return itineraries, nil
}

func (r *itineraryRepository) CountByIDSets(ctx context.Context, searchIDs, filterIDs []uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM itineraries WHERE deleted_at IS NULL AND id = ANY($1) AND id = ANY($2)`

	var total int64
	err := r.db.QueryRow(ctx, query, searchIDs, filterIDs).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count itineraries", zap.Error(err))
		return 0, fmt.Errorf("count itineraries: %w", err)
	}

	return total, nil
}

// collectUUIDs runs an id-projection query and gathers the result set.
func collectUUIDs(ctx context.Context, db database.Querier, log *zap.Logger, query string, args []any, op string) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		log.Error("Failed to "+op, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			log.Error("Failed to scan id row", zap.Error(err))
			return nil, fmt.Errorf("scan id row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate id rows: %w", err)
	}

	return ids, nil
}
