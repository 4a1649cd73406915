package adaptor

import (
	"encoding/json"
	"net/http"

	"trip-genie/internal/dto/request"
	"trip-genie/internal/usecase"
	"trip-genie/pkg/utils"

	"go.uber.org/zap"
)

type TouristHandler struct {
	service usecase.TouristService
	log     *zap.Logger
}

func NewTouristHandler(service usecase.TouristService, log *zap.Logger) *TouristHandler {
	return &TouristHandler{
		service: service,
		log:     log.With(zap.String("handler", "tourist")),
	}
}

// GetProfile handles GET /api/tourist/profile (protected)
func (h *TouristHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	touristID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), touristID.String())
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// RedeemPoints handles POST /api/tourist/points/redeem (protected)
func (h *TouristHandler) RedeemPoints(w http.ResponseWriter, r *http.Request) {
	touristID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.RedeemPointsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	profile, err := h.service.RedeemPoints(r.Context(), touristID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "redeem points")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// ChangePassword handles PUT /api/tourist/password (protected)
func (h *TouristHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	touristID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.ChangePassword(r.Context(), touristID.String(), &req); err != nil {
		handleServiceError(w, h.log, err, "change password")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
