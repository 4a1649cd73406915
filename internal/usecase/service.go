package usecase

import (
	"trip-genie/internal/data/repository"
	"trip-genie/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking         BookingService
	Activity        ActivityService
	Itinerary       ItineraryService
	HistoricalPlace HistoricalPlaceService
	Promo           PromoService
	Tourist         TouristService
}

func NewService(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *Service {
	promo := NewPromoService(repo, logger)

	return &Service{
		Booking:         NewBookingService(repo, promo, logger),
		Activity:        NewActivityService(repo, logger),
		Itinerary:       NewItineraryService(repo, logger),
		HistoricalPlace: NewHistoricalPlaceService(repo, logger),
		Promo:           promo,
		Tourist:         NewTouristService(repo, config, logger),
	}
}
