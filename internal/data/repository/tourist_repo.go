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

type TouristRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tourist, error)

	// Conditional updates. All of them guard the mutation in the WHERE clause
	// so concurrent requests cannot both pass a stale balance check; zero rows
	// affected means the guard failed.
	DebitWalletIfSufficient(ctx context.Context, id uuid.UUID, amount float64) (bool, error)
	CreditWallet(ctx context.Context, id uuid.UUID, amount float64) error
	ApplyAccrual(ctx context.Context, id uuid.UUID, points float64) error
	RedeemPointsIfSufficient(ctx context.Context, id uuid.UUID, points float64) (bool, error)

	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}

type touristRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewTouristRepository(db database.Querier, log *zap.Logger) TouristRepository {
	return &touristRepository{
		db:  db,
		log: log.With(zap.String("repository", "tourist")),
	}
}

func (r *touristRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tourist, error) {
	query := `
		SELECT id, username, email, password, phone, role, wallet,
		       loyalty_points, total_points, is_active, created_at, updated_at
		FROM tourists
		WHERE id = $1 AND deleted_at IS NULL
	`

	var tourist entity.Tourist
	err := r.db.QueryRow(ctx, query, id).Scan(
		&tourist.ID,
		&tourist.Username,
		&tourist.Email,
		&tourist.PasswordHash,
		&tourist.Phone,
		&tourist.Role,
		&tourist.Wallet,
		&tourist.LoyaltyPoints,
		&tourist.TotalPoints,
		&tourist.IsActive,
		&tourist.CreatedAt,
		&tourist.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tourist by ID",
			zap.Error(err),
			zap.String("tourist_id", id.String()),
		)
		return nil, fmt.Errorf("find tourist by ID %s: %w", id.String(), err)
	}

	return &tourist, nil
}

func (r *touristRepository) DebitWalletIfSufficient(ctx context.Context, id uuid.UUID, amount float64) (bool, error) {
	query := `
		UPDATE tourists
		SET wallet = wallet - $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL AND wallet >= $2
	`

	result, err := r.db.Exec(ctx, query, id, amount)
	if err != nil {
		r.log.Error("Failed to debit wallet",
			zap.Error(err),
			zap.String("tourist_id", id.String()),
			zap.Float64("amount", amount),
		)
		return false, fmt.Errorf("debit wallet for tourist %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *touristRepository) CreditWallet(ctx context.Context, id uuid.UUID, amount float64) error {
	query := `
		UPDATE tourists
		SET wallet = wallet + $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, id, amount)
	if err != nil {
		r.log.Error("Failed to credit wallet",
			zap.Error(err),
			zap.String("tourist_id", id.String()),
			zap.Float64("amount", amount),
		)
		return fmt.Errorf("credit wallet for tourist %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tourist %s not found", id.String())
	}

	return nil
}

func (r *touristRepository) ApplyAccrual(ctx context.Context, id uuid.UUID, points float64) error {
	query := `
		UPDATE tourists
		SET loyalty_points = loyalty_points + $2,
		    total_points = total_points + $2,
		    updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, id, points)
	if err != nil {
		r.log.Error("Failed to apply loyalty accrual",
			zap.Error(err),
			zap.String("tourist_id", id.String()),
			zap.Float64("points", points),
		)
		return fmt.Errorf("apply accrual for tourist %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tourist %s not found", id.String())
	}

	return nil
}

func (r *touristRepository) RedeemPointsIfSufficient(ctx context.Context, id uuid.UUID, points float64) (bool, error) {
	// Only loyalty_points shrink; total_points is a lifetime counter, so the
	// badge never regresses on redemption.
	query := `
		UPDATE tourists
		SET loyalty_points = loyalty_points - $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL AND loyalty_points >= $2
	`

	result, err := r.db.Exec(ctx, query, id, points)
	if err != nil {
		r.log.Error("Failed to redeem loyalty points",
			zap.Error(err),
			zap.String("tourist_id", id.String()),
			zap.Float64("points", points),
		)
		return false, fmt.Errorf("redeem points for tourist %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *touristRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	query := `
		UPDATE tourists
		SET password = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, id, hash)
	if err != nil {
		r.log.Error("Failed to update password",
			zap.Error(err),
			zap.String("tourist_id", id.String()),
		)
		return fmt.Errorf("update password for tourist %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tourist %s not found", id.String())
	}

	return nil
}
