package repository

import (
	"context"
	"fmt"

	"trip-genie/internal/data/entity"
	"trip-genie/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TagRepository interface {
	FindByActivityID(ctx context.Context, activityID uuid.UUID) ([]*entity.Tag, error)
	FindByItineraryID(ctx context.Context, itineraryID uuid.UUID) ([]*entity.Tag, error)
	FindByPlaceID(ctx context.Context, placeID uuid.UUID) ([]*entity.Tag, error)
}

type tagRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewTagRepository(db database.Querier, log *zap.Logger) TagRepository {
	return &tagRepository{
		db:  db,
		log: log.With(zap.String("repository", "tag")),
	}
}

func (r *tagRepository) FindByActivityID(ctx context.Context, activityID uuid.UUID) ([]*entity.Tag, error) {
	query := `
		SELECT t.id, t.name, t.type, t.created_at, t.updated_at
		FROM tags t
		JOIN activity_tags at ON at.tag_id = t.id
		WHERE at.activity_id = $1
		ORDER BY t.name
	`
	return r.collectTags(ctx, query, activityID, "find tags by activity")
}

func (r *tagRepository) FindByItineraryID(ctx context.Context, itineraryID uuid.UUID) ([]*entity.Tag, error) {
	query := `
		SELECT t.id, t.name, t.type, t.created_at, t.updated_at
		FROM tags t
		JOIN itinerary_tags it ON it.tag_id = t.id
		WHERE it.itinerary_id = $1
		ORDER BY t.name
	`
	return r.collectTags(ctx, query, itineraryID, "find tags by itinerary")
}

func (r *tagRepository) FindByPlaceID(ctx context.Context, placeID uuid.UUID) ([]*entity.Tag, error) {
	query := `
		SELECT t.id, t.name, t.type, t.created_at, t.updated_at
		FROM tags t
		JOIN place_tags pt ON pt.tag_id = t.id
		WHERE pt.place_id = $1
		ORDER BY t.name
	`
	return r.collectTags(ctx, query, placeID, "find tags by place")
}

func (r *tagRepository) collectTags(ctx context.Context, query string, itemID uuid.UUID, op string) ([]*entity.Tag, error) {
	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		r.log.Error("Failed to "+op,
			zap.Error(err),
			zap.String("item_id", itemID.String()),
		)
		return nil, fmt.Errorf("%s %s: %w", op, itemID.String(), err)
	}
	defer rows.Close()

	var tags []*entity.Tag
	for rows.Next() {
		var tag entity.Tag
		err := rows.Scan(
			&tag.ID,
			&tag.Name,
			&tag.Type,
			&tag.CreatedAt,
			&tag.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan tag row", zap.Error(err))
			return nil, fmt.Errorf("scan tag row: %w", err)
		}
		tags = append(tags, &tag)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate tag rows: %w", err)
	}

	return tags, nil
}
