package response_models

import "encoding/json"

type PlanResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	DownloadMbps int             `json:"download_mbps"`
	UploadMbps   int             `json:"upload_mbps"`
	DataLimitGB  float64         `json:"data_limit_gb"`
	Unlimited    bool            `json:"unlimited"`
	Price        string          `json:"price"`
	ValidityDays int             `json:"validity_days"`
	Description  string          `json:"description,omitempty"`
	Tier         string          `json:"tier"`
	Features     json.RawMessage `json:"features,omitempty"`
}

type PlanStatsResponse struct {
	Plan                PlanResponse `json:"plan"`
	ActiveSubscriptions int64        `json:"active_subscriptions"`
	TotalRevenue        string       `json:"total_revenue"`
}
