package wire

import (
	"trip-genie/internal/adaptor"
	"trip-genie/internal/data/repository"
	"trip-genie/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireActivity(
	r chi.Router,
	activityHandler *adaptor.ActivityHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/activities - List activities with search and filters (public)
	r.Get("/api/activities", activityHandler.GetActivities)

	// GET /api/activities/{id} - Activity details (public)
	r.Get("/api/activities/{id}", activityHandler.GetActivityByID)
}
