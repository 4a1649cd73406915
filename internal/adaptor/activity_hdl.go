package adaptor

import (
	"net/http"

	"trip-genie/internal/dto/request"
	"trip-genie/internal/usecase"
	"trip-genie/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ActivityHandler struct {
	service usecase.ActivityService
	log     *zap.Logger
}

func NewActivityHandler(service usecase.ActivityService, log *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		service: service,
		log:     log.With(zap.String("handler", "activity")),
	}
}

// GetActivities handles GET /api/activities (public)
func (h *ActivityHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	req := &request.ListActivitiesRequest{}
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
	req.Category = query.Get("category")
	req.MinRating = utils.ParseFloat(query.Get("min_rating"))

	activities, err := h.service.GetActivities(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get activities")
		return
	}

	utils.ResponseSuccess(w, "success", activities)
}

// GetActivityByID handles GET /api/activities/{id} (public)
func (h *ActivityHandler) GetActivityByID(w http.ResponseWriter, r *http.Request) {
	activityID := chi.URLParam(r, "id")
	if activityID == "" {
		utils.ResponseBadRequest(w, "Activity ID is required", nil)
		return
	}

	activity, err := h.service.GetActivityByID(r.Context(), activityID)
	if err != nil {
		handleServiceError(w, h.log, err, "get activity by ID")
		return
	}

	utils.ResponseSuccess(w, "success", activity)
}
