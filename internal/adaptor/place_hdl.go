package adaptor

import (
	"net/http"

	"trip-genie/internal/dto/request"
	"trip-genie/internal/usecase"
	"trip-genie/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HistoricalPlaceHandler struct {
	service usecase.HistoricalPlaceService
	log     *zap.Logger
}

func NewHistoricalPlaceHandler(service usecase.HistoricalPlaceService, log *zap.Logger) *HistoricalPlaceHandler {
	return &HistoricalPlaceHandler{
		service: service,
		log:     log.With(zap.String("handler", "historical_place")),
	}
}

// GetHistoricalPlaces handles GET /api/places (public)
func (h *HistoricalPlaceHandler) GetHistoricalPlaces(w http.ResponseWriter, r *http.Request) {
	req := &request.ListHistoricalPlacesRequest{}
	req.Page = 1
	req.PerPage = 10

	// Parse query parameters
	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)
	req.Search = query.Get("search")
	req.MinPrice = utils.ParseFloat(query.Get("min_price"))
	req.MaxPrice = utils.ParseFloat(query.Get("max_price"))
	req.TagTypes = parseTagTypes(query.Get("tags"))

	places, err := h.service.GetHistoricalPlaces(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get historical places")
		return
	}

	utils.ResponseSuccess(w, "success", places)
}

// GetHistoricalPlaceByID handles GET /api/places/{id} (public)
func (h *HistoricalPlaceHandler) GetHistoricalPlaceByID(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "id")
	if placeID == "" {
		utils.ResponseBadRequest(w, "Historical place ID is required", nil)
		return
	}

	place, err := h.service.GetHistoricalPlaceByID(r.Context(), placeID)
	if err != nil {
		handleServiceError(w, h.log, err, "get historical place by ID")
		return
	}

	utils.ResponseSuccess(w, "success", place)
}
