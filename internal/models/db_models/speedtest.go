package db_models

import (
	"github.com/google/uuid"
)

// SpeedTest is one measurement row. Results are simulated against the
// speeds of the plan in force when the test ran.
type SpeedTest struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index;not null"`

	DownloadMbps float64
	UploadMbps   float64
	PingMs       float64

	Account Account `gorm:"foreignKey:AccountID"`
}
