package response

import (
	"time"

	"trip-genie/internal/data/entity"
)

type PromoResponse struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	Status     string    `json:"status"`
	PercentOff float64   `json:"percent_off"`
	UsageLimit int       `json:"usage_limit"`
	TimesUsed  int       `json:"times_used"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
}

func PromoToResponse(promo *entity.PromoCode) PromoResponse {
	return PromoResponse{
		ID:         promo.ID.String(),
		Code:       promo.Code,
		Status:     string(promo.Status),
		PercentOff: promo.PercentOff,
		UsageLimit: promo.UsageLimit,
		TimesUsed:  promo.TimesUsed,
		StartsAt:   promo.StartsAt,
		EndsAt:     promo.EndsAt,
	}
}
