package wire

import (
	"trip-genie/internal/adaptor"
	"trip-genie/internal/data/repository"
	"trip-genie/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHistoricalPlace(
	r chi.Router,
	placeHandler *adaptor.HistoricalPlaceHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/places - List historical places with search and filters (public)
	r.Get("/api/places", placeHandler.GetHistoricalPlaces)

	// GET /api/places/{id} - Historical place details (public)
	r.Get("/api/places/{id}", placeHandler.GetHistoricalPlaceByID)
}
