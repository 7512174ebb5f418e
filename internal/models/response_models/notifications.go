package response_models

type NotificationResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	Type        string `json:"type"`
	Read        bool   `json:"read"`
	TargetType  string `json:"target_type"`
	CreatedDate string `json:"created_date"`
}

type SendNotificationResponse struct {
	SentCount int `json:"sent_count"`
}
