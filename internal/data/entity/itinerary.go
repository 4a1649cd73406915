package entity

import (
	"time"
)

type Itinerary struct {
	Base
	Title         string    `db:"title"`
	Description   string    `db:"description"`
	Location      string    `db:"location"`
	Language      string    `db:"language"`
	Price         float64   `db:"price"`
	AvailableFrom time.Time `db:"available_from"`
	AvailableTo   time.Time `db:"available_to"`
	Rating        float64   `db:"rating"`
	IsActive      bool      `db:"is_active"`
}
