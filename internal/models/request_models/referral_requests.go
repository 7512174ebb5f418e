package request_models

type CreateReferralRequest struct {
	Email string `json:"email" binding:"required,email"`
}
