package request_models

type SendNotificationRequest struct {
	Title        string   `json:"title" binding:"required"`
	Message      string   `json:"message" binding:"required"`
	Type         string   `json:"type"`
	TargetType   string   `json:"target_type" binding:"required,oneof=all specific"`
	RecipientIDs []string `json:"recipient_ids"`
}
