package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"comnet/internal/models/db_models"
)

type IPaymentRepository interface {
	CreatePayment(ctx context.Context, payment *db_models.Payment) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Payment, error)

	// TotalPaid sums settled payments only; pending and failed rows never
	// count toward revenue.
	TotalPaid(ctx context.Context) (decimal.Decimal, error)
	TotalPaidForPlan(ctx context.Context, planID uuid.UUID) (decimal.Decimal, error)
}

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) IPaymentRepository {
	return &PaymentRepository{db: db}
}

func (p PaymentRepository) CreatePayment(ctx context.Context, payment *db_models.Payment) error {
	return p.db.WithContext(ctx).Create(payment).Error
}

func (p PaymentRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	err := p.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (p PaymentRepository) TotalPaid(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := p.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", db_models.PaymentStatusPaid).
		Scan(&total).Error
	return total, err
}

func (p PaymentRepository) TotalPaidForPlan(ctx context.Context, planID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := p.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Select("COALESCE(SUM(payments.amount), 0)").
		Joins("JOIN subscriptions ON subscriptions.id = payments.subscription_id").
		Where("subscriptions.plan_id = ? AND payments.status = ?", planID, db_models.PaymentStatusPaid).
		Scan(&total).Error
	return total, err
}
