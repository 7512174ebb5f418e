package db_models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type Payment struct {
	BaseModel
	AccountID      uuid.UUID  `gorm:"index;not null"`
	SubscriptionID *uuid.UUID `gorm:"index"`

	Amount    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status    PaymentStatus   `gorm:"size:16;index;default:pending"`
	Method    string          `gorm:"default:credit_card"`
	BillMonth int
	BillYear  int

	LateFee   decimal.Decimal `gorm:"type:numeric(12,2);default:0"`
	Discount  decimal.Decimal `gorm:"type:numeric(12,2);default:0"`
	TaxAmount decimal.Decimal `gorm:"type:numeric(12,2);default:0"`

	TransactionRef string `gorm:"index"`
	PaidAt         *int64

	Account      Account       `gorm:"foreignKey:AccountID"`
	Subscription *Subscription `gorm:"foreignKey:SubscriptionID"`
}
