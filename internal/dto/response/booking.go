package response

import (
	"time"

	"trip-genie/internal/data/entity"
)

type BookingResponse struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"order_id"`
	TouristID       string    `json:"tourist_id"`
	Kind            string    `json:"kind"`
	ItemID          string    `json:"item_id"`
	ItemName        string    `json:"item_name,omitempty"`
	PaymentType     string    `json:"payment_type"`
	PaymentAmount   float64   `json:"payment_amount"`
	NumberOfTickets int       `json:"number_of_tickets"`
	PromoCode       *string   `json:"promo_code,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateBookingResponse pairs the new booking with the tourist's post-charge
// wallet and loyalty state.
type CreateBookingResponse struct {
	Booking BookingResponse `json:"booking"`
	Tourist TouristResponse `json:"tourist"`
}

func BookingToResponse(booking *entity.Booking, itemName string) BookingResponse {
	return BookingResponse{
		ID:              booking.ID.String(),
		OrderID:         booking.OrderID,
		TouristID:       booking.TouristID.String(),
		Kind:            string(booking.Kind),
		ItemID:          booking.ItemID.String(),
		ItemName:        itemName,
		PaymentType:     string(booking.PaymentType),
		PaymentAmount:   booking.PaymentAmount,
		NumberOfTickets: booking.NumberOfTickets,
		PromoCode:       booking.PromoCode,
		Status:          string(booking.Status),
		CreatedAt:       booking.CreatedAt,
	}
}
