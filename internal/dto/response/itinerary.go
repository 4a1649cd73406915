package response

import (
	"time"

	"trip-genie/internal/data/entity"
)

type ItineraryResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	Language      string    `json:"language"`
	Price         float64   `json:"price"`
	AvailableFrom string    `json:"available_from"`
	AvailableTo   string    `json:"available_to"`
	Tags          []string  `json:"tags"`
	Rating        float64   `json:"rating"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func ItineraryToResponse(itinerary *entity.Itinerary, tags []string) ItineraryResponse {
	return ItineraryResponse{
		ID:            itinerary.ID.String(),
		Title:         itinerary.Title,
		Description:   itinerary.Description,
		Location:      itinerary.Location,
		Language:      itinerary.Language,
		Price:         itinerary.Price,
		AvailableFrom: itinerary.AvailableFrom.Format("2006-01-02"),
		AvailableTo:   itinerary.AvailableTo.Format("2006-01-02"),
		Tags:          tags,
		Rating:        itinerary.Rating,
		IsActive:      itinerary.IsActive,
		CreatedAt:     itinerary.CreatedAt,
	}
}
