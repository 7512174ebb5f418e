package response_models

type SubscriptionResponse struct {
	ID            string       `json:"id"`
	Status        string       `json:"status"`
	StartDate     string       `json:"start_date"`
	EndDate       string       `json:"end_date"`
	AutoRenew     bool         `json:"auto_renew"`
	RenewalCount  int          `json:"renewal_count"`
	CancelledDate string       `json:"cancelled_date,omitempty"`
	Plan          PlanResponse `json:"plan"`
}

type ChangePlanResponse struct {
	Amount       string               `json:"amount"`
	Description  string               `json:"description"`
	Subscription SubscriptionResponse `json:"subscription"`
}
