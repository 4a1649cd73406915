package entity

import (
	"time"
)

type PromoStatus string

const (
	PromoStatusActive   PromoStatus = "active"
	PromoStatusInactive PromoStatus = "inactive"
	PromoStatusExpired  PromoStatus = "expired"
)

type PromoCode struct {
	BaseNoDelete
	Code       string      `db:"code"`
	Status     PromoStatus `db:"status"`
	PercentOff float64     `db:"percent_off"`
	UsageLimit int         `db:"usage_limit"`
	TimesUsed  int         `db:"times_used"`
	StartsAt   time.Time   `db:"starts_at"`
	EndsAt     time.Time   `db:"ends_at"`
}

// DerivedStatus recomputes the status from the usage counter and the date
// window. Exhaustion wins over expiry so a fully used code reads as inactive.
func (p *PromoCode) DerivedStatus(now time.Time) PromoStatus {
	if p.TimesUsed >= p.UsageLimit {
		return PromoStatusInactive
	}
	if now.After(p.EndsAt) {
		return PromoStatusExpired
	}
	return p.Status
}
