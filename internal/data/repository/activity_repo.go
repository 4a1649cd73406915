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

// ActivityFilter carries the structured listing criteria. A nil/empty field is
// skipped entirely, never compared against a default.
type ActivityFilter struct {
	MinPrice  *float64
	MaxPrice  *float64
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	MinRating *float64
}

type ActivityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)

	// Id-set queries for listing composition. An empty search term or an
	// empty filter selects every live row.
	SearchIDs(ctx context.Context, text string) ([]uuid.UUID, error)
	FilterIDs(ctx context.Context, filter ActivityFilter) ([]uuid.UUID, error)
	FindByIDSets(ctx context.Context, searchIDs, filterIDs []uuid.UUID, limit, offset int) ([]*entity.Activity, error)
	CountByIDSets(ctx context.Context, searchIDs, filterIDs []uuid.UUID) (int64, error)
}

type activityRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewActivityRepository(db database.Querier, log *zap.Logger) ActivityRepository {
	return &activityRepository{
		db:  db,
		log: log.With(zap.String("repository", "activity")),
	}
}

const activityColumns = `id, name, description, location, price, date, category_id, rating, is_open, created_at, updated_at`

func (r *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE id = $1 AND deleted_at IS NULL
	`

	var activity entity.Activity
	err := r.db.QueryRow(ctx, query, id).Scan(
		&activity.ID,
		&activity.Name,
		&activity.Description,
		&activity.Location,
		&activity.Price,
		&activity.Date,
		&activity.CategoryID,
		&activity.Rating,
		&activity.IsOpen,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find activity by ID",
			zap.Error(err),
			zap.String("activity_id", id.String()),
		)
		return nil, fmt.Errorf("find activity by ID %s: %w", id.String(), err)
	}

	return &activity, nil
}

func (r *activityRepository) SearchIDs(ctx context.Context, text string) ([]uuid.UUID, error) {
	// Empty search selects everything, matching the filter convention.
	if text == "" {
		return collectUUIDs(ctx, r.db, r.log, `SELECT id FROM activities WHERE deleted_at IS NULL`, nil, "search activities")
	}

	query := `
		SELECT DISTINCT a.id
		FROM activities a
		LEFT JOIN categories c ON c.id = a.category_id
		WHERE a.deleted_at IS NULL
		  AND (a.name ILIKE $1 OR a.description ILIKE $1 OR a.location ILIKE $1
		       OR c.name ILIKE $1
		       OR EXISTS (
		           SELECT 1 FROM activity_tags at
		           JOIN tags t ON t.id = at.tag_id
		           WHERE at.activity_id = a.id AND t.name ILIKE $1
		       ))
	`

	return collectUUIDs(ctx, r.db, r.log, query, []any{"%" + text + "%"}, "search activities")
}

func (r *activityRepository) FilterIDs(ctx context.Context, filter ActivityFilter) ([]uuid.UUID, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT a.id FROM activities a WHERE a.deleted_at IS NULL`)

	args := []any{}
	argCount := 1

	if filter.MinPrice != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.price >= $%d", argCount))
		args = append(args, *filter.MinPrice)
		argCount++
	}
	if filter.MaxPrice != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.price <= $%d", argCount))
		args = append(args, *filter.MaxPrice)
		argCount++
	}
	if filter.StartDate != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.date >= $%d", argCount))
		args = append(args, *filter.StartDate)
		argCount++
	}
	if filter.EndDate != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.date <= $%d", argCount))
		args = append(args, *filter.EndDate)
		argCount++
	}
	if filter.Category != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM categories c WHERE c.id = a.category_id AND c.name ILIKE $%d)", argCount))
		args = append(args, "%"+filter.Category+"%")
		argCount++
	}
	if filter.MinRating != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.rating >= $%d", argCount))
		args = append(args, *filter.MinRating)
		argCount++
	}

	return collectUUIDs(ctx, r.db, r.log, queryBuilder.String(), args, "filter activities")
}

func (r *activityRepository) FindByIDSets(ctx context.Context, searchIDs, filterIDs []uuid.UUID, limit, offset int) ([]*entity.Activity, error) {
	// AND of the two independently computed id sets; two select-alls
	// intersect back to select-all.
	query := `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE deleted_at IS NULL AND id = ANY($1) AND id = ANY($2)
		ORDER BY date, name
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.Query(ctx, query, searchIDs, filterIDs, limit, offset)
	if err != nil {
		r.log.Error("Failed to find activities by id sets",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find activities limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var activities []*entity.Activity
	for rows.Next() {
		var activity entity.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.Name,
			&activity.Description,
			&activity.Location,
			&activity.Price,
			&activity.Date,
			&activity.CategoryID,
			&activity.Rating,
			&activity.IsOpen,
			&activity.CreatedAt,
			&activity.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan activity row", zap.Error(err))
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		activities = append(activities, &activity)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate activity rows: %w", err)
	}

	return activities, nil
}

func (r *activityRepository) CountByIDSets(ctx context.Context, searchIDs, filterIDs []uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM activities WHERE deleted_at IS NULL AND id = ANY($1) AND id = ANY($2)`

	var total int64
	err := r.db.QueryRow(ctx, query, searchIDs, filterIDs).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count activities", zap.Error(err))
		return 0, fmt.Errorf("count activities: %w", err)
	}

	return total, nil
}
