package request_models

import "github.com/shopspring/decimal"

type CreatePlanRequest struct {
	Name         string          `json:"name" binding:"required"`
	DownloadMbps int             `json:"download_mbps"`
	UploadMbps   int             `json:"upload_mbps"`
	DataLimitGB  float64         `json:"data_limit_gb"`
	Unlimited    bool            `json:"unlimited"`
	Price        decimal.Decimal `json:"price"`
	ValidityDays int             `json:"validity_days"`
	Description  *string         `json:"description"`
	Tier         string          `json:"tier"`
	Features     []string        `json:"features"`
}

type UpdatePlanRequest struct {
	Name         *string          `json:"name"`
	DownloadMbps *int             `json:"download_mbps"`
	UploadMbps   *int             `json:"upload_mbps"`
	DataLimitGB  *float64         `json:"data_limit_gb"`
	Unlimited    *bool            `json:"unlimited"`
	Price        *decimal.Decimal `json:"price"`
	ValidityDays *int             `json:"validity_days"`
	Description  *string          `json:"description"`
	Tier         *string          `json:"tier"`
	Features     []string         `json:"features"`
}
