package repository

import (
	"context"
	"fmt"

	"trip-genie/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Tourist         TouristRepository
	Session         SessionRepository
	Activity        ActivityRepository
	Itinerary       ItineraryRepository
	HistoricalPlace HistoricalPlaceRepository
	Category        CategoryRepository
	Tag             TagRepository
	Booking         BookingRepository
	Promo           PromoRepository

	db  database.PgxIface
	log *zap.Logger
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := newRepository(db, log)
	repo.db = db
	return repo
}

func newRepository(q database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		Tourist:         NewTouristRepository(q, log),
		Session:         NewSessionRepository(q, log),
		Activity:        NewActivityRepository(q, log),
		Itinerary:       NewItineraryRepository(q, log),
		HistoricalPlace: NewHistoricalPlaceRepository(q, log),
		Category:        NewCategoryRepository(q, log),
		Tag:             NewTagRepository(q, log),
		Booking:         NewBookingRepository(q, log),
		Promo:           NewPromoRepository(q, log),
		log:             log,
	}
}

// WithinTx runs fn against a Repository bound to a single transaction.
// Any error from fn rolls everything back. A Repository that is already
// transaction-scoped has no pool, so fn joins the ambient transaction.
func (r *Repository) WithinTx(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}

	txRepo := newRepository(tx, r.log)

	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			r.log.Error("Failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
