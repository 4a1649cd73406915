package adaptor

import (
	"encoding/json"
	"net/http"

	"trip-genie/internal/dto/request"
	"trip-genie/internal/dto/response"
	"trip-genie/internal/usecase"
	"trip-genie/pkg/utils"

	"go.uber.org/zap"
)

type PromoHandler struct {
	service usecase.PromoService
	log     *zap.Logger
}

func NewPromoHandler(service usecase.PromoService, log *zap.Logger) *PromoHandler {
	return &PromoHandler{
		service: service,
		log:     log.With(zap.String("handler", "promo")),
	}
}

// RedeemPromo handles POST /api/promos/redeem (protected)
func (h *PromoHandler) RedeemPromo(w http.ResponseWriter, r *http.Request) {
	var req request.RedeemPromoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	promo, err := h.service.Redeem(r.Context(), req.Code)
	if err != nil {
		handleServiceError(w, h.log, err, "redeem promo")
		return
	}

	resp := response.PromoToResponse(promo)
	utils.ResponseSuccess(w, "success", resp)
}

// ==================== ADMIN METHODS ====================

// CreatePromo handles POST /api/admin/promos (admin only)
func (h *PromoHandler) CreatePromo(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePromoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	promo, err := h.service.CreatePromo(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create promo")
		return
	}

	utils.ResponseCreated(w, "success", promo)
}

// GetPromos handles GET /api/admin/promos (admin only)
func (h *PromoHandler) GetPromos(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	// Parse query parameters
	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	promos, err := h.service.GetPromos(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get promos")
		return
	}

	utils.ResponseSuccess(w, "success", promos)
}
