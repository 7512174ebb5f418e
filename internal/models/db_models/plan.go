package db_models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type PlanTier string

const (
	TierBasic    PlanTier = "basic"
	TierStandard PlanTier = "standard"
	TierPremium  PlanTier = "premium"
	TierElite    PlanTier = "elite"
)

// UnlimitedDataGB is the sentinel allowance for unlimited plans.
const UnlimitedDataGB = 999999

type Plan struct {
	BaseModel
	Name         string `gorm:"not null"`
	DownloadMbps int
	UploadMbps   int
	DataLimitGB  float64
	Unlimited    bool            `gorm:"default:false"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2)"`
	ValidityDays int             `gorm:"not null"`
	Description  *string
	Tier         PlanTier       `gorm:"size:16;default:basic;index"`
	Features     datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	// Archived plans stay resolvable for historical subscriptions but are
	// never offered for purchase.
	Archived bool `gorm:"default:false;index"`
}
