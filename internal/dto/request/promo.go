package request

type RedeemPromoRequest struct {
	Code string `json:"code" validate:"required,max=50"`
}

type CreatePromoRequest struct {
	Code       string `json:"code" validate:"required,max=50"`
	PercentOff float64 `json:"percent_off" validate:"required,gt=0,lte=100"`
	UsageLimit int    `json:"usage_limit" validate:"required,min=1"`
	StartsAt   string `json:"starts_at" validate:"required"`
	EndsAt     string `json:"ends_at" validate:"required"`
}
