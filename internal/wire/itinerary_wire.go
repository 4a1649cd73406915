package wire

import (
	"trip-genie/internal/adaptor"
	"trip-genie/internal/data/repository"
	"trip-genie/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireItinerary(
	r chi.Router,
	itineraryHandler *adaptor.ItineraryHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/itineraries - List itineraries with search and filters (public)
	r.Get("/api/itineraries", itineraryHandler.GetItineraries)

	// GET /api/itineraries/{id} - Itinerary details (public)
	r.Get("/api/itineraries/{id}", itineraryHandler.GetItineraryByID)
}
