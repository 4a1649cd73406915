package request

type CreateBookingRequest struct {
	Kind            string `json:"kind" validate:"required,oneof=activity itinerary historical_place"`
	ItemID          string `json:"item_id" validate:"required,uuid"`
	PaymentType     string `json:"payment_type" validate:"required,oneof=wallet credit_card debit_card"`
	NumberOfTickets int    `json:"number_of_tickets" validate:"required,min=1"`
	PromoCode       string `json:"promo_code" validate:"omitempty,max=50"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled attended"`
}
