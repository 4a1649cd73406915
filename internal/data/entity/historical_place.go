package entity

type HistoricalPlace struct {
	Base
	Name         string  `db:"name"`
	Description  string  `db:"description"`
	Location     string  `db:"location"`
	TicketPrice  float64 `db:"ticket_price"`
	OpeningHours string  `db:"opening_hours"`
}
