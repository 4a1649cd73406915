package usecase

import "errors"

// Sentinel errors for the business failure taxonomy. Handlers map these to
// HTTP statuses with errors.Is.
var (
	ErrItemNotFound       = errors.New("item not found")
	ErrTouristNotFound    = errors.New("tourist not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrPromoNotFound      = errors.New("promo code not found")
	ErrPromoInactive      = errors.New("promo code is inactive")
	ErrPromoExpired       = errors.New("promo code is expired")
	ErrPromoNotStarted    = errors.New("promo code is not active yet")
	ErrInsufficientFunds  = errors.New("insufficient wallet funds")
	ErrInsufficientPoints = errors.New("insufficient loyalty points")
	ErrNotOwner           = errors.New("unauthorized to modify this booking")
	ErrWrongPassword      = errors.New("current password is incorrect")
)
