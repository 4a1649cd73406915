package response

import (
	"time"

	"trip-genie/internal/data/entity"
)

type TouristResponse struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Wallet        float64   `json:"wallet"`
	LoyaltyPoints float64   `json:"loyalty_points"`
	TotalPoints   float64   `json:"total_points"`
	LoyaltyBadge  string    `json:"loyalty_badge"`
	CreatedAt     time.Time `json:"created_at"`
}

func TouristToResponse(tourist *entity.Tourist) TouristResponse {
	return TouristResponse{
		ID:            tourist.ID.String(),
		Username:      tourist.Username,
		Email:         tourist.Email,
		Wallet:        tourist.Wallet,
		LoyaltyPoints: tourist.LoyaltyPoints,
		TotalPoints:   tourist.TotalPoints,
		LoyaltyBadge:  string(tourist.Badge()),
		CreatedAt:     tourist.CreatedAt,
	}
}
