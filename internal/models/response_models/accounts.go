package response_models

type AccountResponse struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	Role              string `json:"role"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	City              string `json:"city,omitempty"`
	State             string `json:"state,omitempty"`
	AutopayEnabled    bool   `json:"autopay_enabled"`
	NotificationPrefs string `json:"notification_prefs"`
	ReferralCode      string `json:"referral_code"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
