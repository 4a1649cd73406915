package request

type RedeemPointsRequest struct {
	Points float64 `json:"points" validate:"required,gt=0"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}
