package response_models

type TicketResponse struct {
	ID           string `json:"id"`
	Subject      string `json:"subject"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Priority     string `json:"priority"`
	Status       string `json:"status"`
	CreatedDate  string `json:"created_date"`
	ResolvedDate string `json:"resolved_date,omitempty"`

	// Filled for the admin queue view only.
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}
