package wire

import (
	"trip-genie/internal/adaptor"
	"trip-genie/internal/data/repository"
	"trip-genie/pkg/middleware"
	"trip-genie/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePromo(
	r chi.Router,
	promoHandler *adaptor.PromoHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/promos/redeem - Redeem a promo code
		r.Post("/api/promos/redeem", promoHandler.RedeemPromo)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/promos", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.Tourist, log))

		// POST /api/admin/promos - Create a promo code (admin)
		r.Post("/", promoHandler.CreatePromo)

		// GET /api/admin/promos - List promo codes (admin)
		r.Get("/", promoHandler.GetPromos)
	})
}
