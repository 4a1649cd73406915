package repository

import (
	"context"
	"fmt"

	"trip-genie/internal/data/entity"
	"trip-genie/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PromoRepository interface {
	Create(ctx context.Context, promo *entity.PromoCode) error
	FindByCode(ctx context.Context, code string) (*entity.PromoCode, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.PromoCode, error)
	CountAll(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PromoStatus) error

	// IncrementUsageIfAvailable bumps times_used only while the usage limit
	// still has headroom; false means the code was exhausted concurrently.
	IncrementUsageIfAvailable(ctx context.Context, id uuid.UUID) (bool, error)
}

type promoRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewPromoRepository(db database.Querier, log *zap.Logger) PromoRepository {
	return &promoRepository{
		db:  db,
		log: log.With(zap.String("repository", "promo")),
	}
}

const promoColumns = `id, code, status, percent_off, usage_limit, times_used, starts_at, ends_at, created_at, updated_at`

func (r *promoRepository) Create(ctx context.Context, promo *entity.PromoCode) error {
	query := `
		INSERT INTO promo_codes (id, code, status, percent_off, usage_limit, times_used,
		                         starts_at, ends_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		promo.ID,
		promo.Code,
		promo.Status,
		promo.PercentOff,
		promo.UsageLimit,
		promo.TimesUsed,
		promo.StartsAt,
		promo.EndsAt,
		promo.CreatedAt,
		promo.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create promo code",
			zap.Error(err),
			zap.String("code", promo.Code),
		)
		return fmt.Errorf("create promo code %s: %w", promo.Code, err)
	}

	return nil
}

func (r *promoRepository) scanRow(row pgx.Row) (*entity.PromoCode, error) {
	var promo entity.PromoCode
	err := row.Scan(
		&promo.ID,
		&promo.Code,
		&promo.Status,
		&promo.PercentOff,
		&promo.UsageLimit,
		&promo.TimesUsed,
		&promo.StartsAt,
		&promo.EndsAt,
		&promo.CreatedAt,
		&promo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

func (r *promoRepository) FindByCode(ctx context.Context, code string) (*entity.PromoCode, error) {
	query := `
		SELECT ` + promoColumns + `
		FROM promo_codes
		WHERE code = $1
	`

	promo, err := r.scanRow(r.db.QueryRow(ctx, query, code))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find promo code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find promo code %s: %w", code, err)
	}

	return promo, nil
}

func (r *promoRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.PromoCode, error) {
	query := `
		SELECT ` + promoColumns + `
		FROM promo_codes
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find promo codes",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find promo codes limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var promos []*entity.PromoCode
	for rows.Next() {
		promo, err := r.scanRow(rows)
		if err != nil {
			r.log.Error("Failed to scan promo row", zap.Error(err))
			return nil, fmt.Errorf("scan promo row: %w", err)
		}
		promos = append(promos, promo)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate promo rows: %w", err)
	}

	return promos, nil
}

func (r *promoRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM promo_codes`).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count promo codes", zap.Error(err))
		return 0, fmt.Errorf("count promo codes: %w", err)
	}

	return total, nil
}

func (r *promoRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PromoStatus) error {
	query := `UPDATE promo_codes SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update promo status",
			zap.Error(err),
			zap.String("promo_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update promo %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("promo code %s not found", id.String())
	}

	return nil
}

func (r *promoRepository) IncrementUsageIfAvailable(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE promo_codes
		SET times_used = times_used + 1, updated_at = NOW()
		WHERE id = $1 AND times_used < usage_limit
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to increment promo usage",
			zap.Error(err),
			zap.String("promo_id", id.String()),
		)
		return false, fmt.Errorf("increment usage for promo %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
