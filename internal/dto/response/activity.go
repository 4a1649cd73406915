package response

import (
	"time"

	"trip-genie/internal/data/entity"
)

type ActivityResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	Date        string    `json:"date"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags"`
	Rating      float64   `json:"rating"`
	IsOpen      bool      `json:"is_open"`
	CreatedAt   time.Time `json:"created_at"`
}

func ActivityToResponse(activity *entity.Activity, category string, tags []string) ActivityResponse {
	return ActivityResponse{
		ID:          activity.ID.String(),
		Name:        activity.Name,
		Description: activity.Description,
		Location:    activity.Location,
		Price:       activity.Price,
		Date:        activity.Date.Format("2006-01-02"),
		Category:    category,
		Tags:        tags,
		Rating:      activity.Rating,
		IsOpen:      activity.IsOpen,
		CreatedAt:   activity.CreatedAt,
	}
}
