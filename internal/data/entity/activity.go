package entity

import (
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	Base
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Location    string     `db:"location"`
	Price       float64    `db:"price"`
	Date        time.Time  `db:"date"`
	CategoryID  *uuid.UUID `db:"category_id"`
	Rating      float64    `db:"rating"`
	IsOpen      bool       `db:"is_open"`
}
