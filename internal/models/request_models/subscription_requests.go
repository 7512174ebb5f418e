package request_models

type SubscribeRequest struct {
	PlanID    string `json:"plan_id" binding:"required"`
	AutoRenew bool   `json:"auto_renew"`
}

type ChangePlanRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}
