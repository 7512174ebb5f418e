package response_models

type SpeedTestResponse struct {
	ID           string  `json:"id"`
	DownloadMbps float64 `json:"download_mbps"`
	UploadMbps   float64 `json:"upload_mbps"`
	PingMs       float64 `json:"ping_ms"`
	TestedDate   string  `json:"tested_date"`
}
