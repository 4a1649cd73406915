package adaptor

import (
	"net/http"
	"strings"

	"trip-genie/internal/dto/request"
	"trip-genie/internal/usecase"
	"trip-genie/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ItineraryHandler struct {
	service usecase.ItineraryService
	log     *zap.Logger
}

func NewItineraryHandler(service usecase.ItineraryService, log *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		service: service,
		log:     log.With(zap.String("handler", "itinerary")),
	}
}

// GetItineraries handles GET /api/itineraries (public)
func (h *ItineraryHandler) GetItineraries(w http.ResponseWriter, r *http.Request) {
	req := &request.ListItinerariesRequest{}
	req.Page = 1
	req.PerPage = 10

	// Parse query parameters
	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)
	req.Search = query.Get("search")
	req.MinPrice = utils.ParseFloat(query.Get("min_price"))
	req.MaxPrice = utils.ParseFloat(query.Get("max_price"))
	req.StartDate = utils.ParseDate(query.Get("start_date"))
	req.EndDate = utils.ParseDate(query.Get("end_date"))
	req.Language = query.Get("language")
	req.MinRating = utils.ParseFloat(query.Get("min_rating"))
	req.TagTypes = parseTagTypes(query.Get("tags"))

	itineraries, err := h.service.GetItineraries(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get itineraries")
		return
	}

	utils.ResponseSuccess(w, "success", itineraries)
}

// GetItineraryByID handles GET /api/itineraries/{id} (public)
func (h *ItineraryHandler) GetItineraryByID(w http.ResponseWriter, r *http.Request) {
	itineraryID := chi.URLParam(r, "id")
	if itineraryID == "" {
		utils.ResponseBadRequest(w, "Itinerary ID is required", nil)
		return
	}

	itinerary, err := h.service.GetItineraryByID(r.Context(), itineraryID)
	if err != nil {
		handleServiceError(w, h.log, err, "get itinerary by ID")
		return
	}

	utils.ResponseSuccess(w, "success", itinerary)
}

// parseTagTypes splits a comma-separated tags query value, dropping empties.
func parseTagTypes(value string) []string {
	if value == "" {
		return nil
	}

	var tags []string
	for _, part := range strings.Split(value, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
