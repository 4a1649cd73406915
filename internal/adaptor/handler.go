package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"trip-genie/internal/usecase"
	"trip-genie/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking         *BookingHandler
	Activity        *ActivityHandler
	Itinerary       *ItineraryHandler
	HistoricalPlace *HistoricalPlaceHandler
	Promo           *PromoHandler
	Tourist         *TouristHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking:         NewBookingHandler(service.Booking, log),
		Activity:        NewActivityHandler(service.Activity, log),
		Itinerary:       NewItineraryHandler(service.Itinerary, log),
		HistoricalPlace: NewHistoricalPlaceHandler(service.HistoricalPlace, log),
		Promo:           NewPromoHandler(service.Promo, log),
		Tourist:         NewTouristHandler(service.Tourist, log),
	}
}

// handleServiceError maps service failures onto the HTTP error taxonomy:
// 404 not found, 400 validation and funds, 403 ownership, 500 everything else.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, usecase.ErrItemNotFound),
		errors.Is(err, usecase.ErrTouristNotFound),
		errors.Is(err, usecase.ErrBookingNotFound),
		errors.Is(err, usecase.ErrPromoNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, usecase.ErrInsufficientFunds),
		errors.Is(err, usecase.ErrInsufficientPoints),
		errors.Is(err, usecase.ErrPromoInactive),
		errors.Is(err, usecase.ErrPromoExpired),
		errors.Is(err, usecase.ErrPromoNotStarted),
		errors.Is(err, usecase.ErrWrongPassword):
		log.Warn(operation+" failed - validation",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case errors.Is(err, usecase.ErrNotOwner):
		log.Warn(operation+" failed - ownership",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		log.Warn(operation+" failed - bad input",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
