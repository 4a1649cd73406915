package request

import "time"

// Listing requests are built from query parameters, not JSON bodies. Absent
// fields stay nil/empty and are skipped by the filter composition.

type ListActivitiesRequest struct {
	PaginatedRequest
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	MinRating *float64
}

type ListItinerariesRequest struct {
	PaginatedRequest
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	StartDate *time.Time
	EndDate   *time.Time
	Language  string
	MinRating *float64
	TagTypes  []string
}

type ListHistoricalPlacesRequest struct {
	PaginatedRequest
	Search   string
	MinPrice *float64
	MaxPrice *float64
	TagTypes []string
}
