package response_models

type PaymentResponse struct {
	ID             string `json:"id"`
	Amount         string `json:"amount"`
	Status         string `json:"status"`
	Method         string `json:"method"`
	BillMonth      int    `json:"bill_month"`
	BillYear       int    `json:"bill_year"`
	LateFee        string `json:"late_fee"`
	Discount       string `json:"discount"`
	TaxAmount      string `json:"tax_amount"`
	TransactionRef string `json:"transaction_ref,omitempty"`
	CreatedDate    string `json:"created_date"`
}

type RevenueSummaryResponse struct {
	TotalRevenue        string `json:"total_revenue"`
	ActiveSubscriptions int64  `json:"active_subscriptions"`
	Customers           int64  `json:"customers"`
}
