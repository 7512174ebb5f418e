package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReferralStatus string

const (
	ReferralStatusPending   ReferralStatus = "pending"
	ReferralStatusCompleted ReferralStatus = "completed"
	ReferralStatusExpired   ReferralStatus = "expired"
)

type Referral struct {
	BaseModel
	ReferrerID    uuid.UUID      `gorm:"index;not null"`
	ReferredEmail string         `gorm:"index;not null"`
	Status        ReferralStatus `gorm:"size:16;default:pending;index"`

	// Frozen at creation; later changes to the configured default reward
	// never touch already-issued referrals.
	RewardAmount decimal.Decimal `gorm:"type:numeric(12,2)"`

	Referrer Account `gorm:"foreignKey:ReferrerID"`
}
