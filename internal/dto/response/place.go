package response

import (
	"time"

	"trip-genie/internal/data/entity"
)

type HistoricalPlaceResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	TicketPrice  float64   `json:"ticket_price"`
	OpeningHours string    `json:"opening_hours"`
	Tags         []string  `json:"tags"`
	CreatedAt    time.Time `json:"created_at"`
}

func HistoricalPlaceToResponse(place *entity.HistoricalPlace, tags []string) HistoricalPlaceResponse {
	return HistoricalPlaceResponse{
		ID:           place.ID.String(),
		Name:         place.Name,
		Description:  place.Description,
		Location:     place.Location,
		TicketPrice:  place.TicketPrice,
		OpeningHours: place.OpeningHours,
		Tags:         tags,
		CreatedAt:    place.CreatedAt,
	}
}
