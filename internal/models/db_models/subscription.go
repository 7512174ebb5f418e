package db_models

import (
	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubStatusActive    SubscriptionStatus = "active"
	SubStatusCancelled SubscriptionStatus = "cancelled"
	// Expired is derived at read time (ends_at in the past while the row is
	// still active); nothing writes it to storage.
	SubStatusExpired SubscriptionStatus = "expired"
)

type Subscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index;not null"`
	PlanID    uuid.UUID `gorm:"index;not null"`

	Status SubscriptionStatus `gorm:"size:16;index;not null"`

	// Unix seconds of UTC midnight. EndsAt is the paid-through date.
	StartsAt int64 `gorm:"not null"`
	EndsAt   int64 `gorm:"not null"`

	AutoRenew    bool `gorm:"default:false"`
	RenewalCount int  `gorm:"default:0"`

	CancelledAt        *int64
	CancellationReason *string

	Account Account `gorm:"foreignKey:AccountID"`
	Plan    Plan    `gorm:"foreignKey:PlanID"`
}
