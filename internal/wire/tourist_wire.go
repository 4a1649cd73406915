package wire

import (
	"trip-genie/internal/adaptor"
	"trip-genie/internal/data/repository"
	"trip-genie/pkg/middleware"
	"trip-genie/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTourist(
	r chi.Router,
	touristHandler *adaptor.TouristHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/tourist/profile - Wallet, points and badge (tourist's own profile)
		r.Get("/api/tourist/profile", touristHandler.GetProfile)

		// POST /api/tourist/points/redeem - Convert loyalty points into wallet credit
		r.Post("/api/tourist/points/redeem", touristHandler.RedeemPoints)

		// PUT /api/tourist/password - Change own password
		r.Put("/api/tourist/password", touristHandler.ChangePassword)
	})
}
