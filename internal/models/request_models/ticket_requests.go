package request_models

type SubmitTicketRequest struct {
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"omitempty,oneof=billing technical service other"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in_progress resolved closed"`
}
