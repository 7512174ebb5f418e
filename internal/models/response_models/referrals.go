package response_models

type ReferralResponse struct {
	ID            string `json:"id"`
	ReferredEmail string `json:"referred_email"`
	Status        string `json:"status"`
	RewardAmount  string `json:"reward_amount"`
	CreatedDate   string `json:"created_date"`
}
