package entity

import (
	"github.com/google/uuid"
)

// BookingKind discriminates the purchased item. Every switch on it must be
// exhaustive; an unknown kind is a validation failure, never a silent default.
type BookingKind string

const (
	KindActivity        BookingKind = "activity"
	KindItinerary       BookingKind = "itinerary"
	KindHistoricalPlace BookingKind = "historical_place"
)

type PaymentType string

const (
	PaymentWallet     PaymentType = "wallet"
	PaymentCreditCard PaymentType = "credit_card"
	PaymentDebitCard  PaymentType = "debit_card"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusAttended  BookingStatus = "attended"
)

type Booking struct {
	Base
	OrderID         string        `db:"order_id"`
	TouristID       uuid.UUID     `db:"tourist_id"`
	Kind            BookingKind   `db:"kind"`
	ItemID          uuid.UUID     `db:"item_id"`
	PaymentType     PaymentType   `db:"payment_type"`
	PaymentAmount   float64       `db:"payment_amount"`
	NumberOfTickets int           `db:"number_of_tickets"`
	PromoCode       *string       `db:"promo_code"`
	Status          BookingStatus `db:"status"`
}
