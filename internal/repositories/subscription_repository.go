package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"comnet/internal/models/db_models"
)

type ISubscriptionRepository interface {
	// GetActiveByAccount returns the newest active subscription with its plan
	// preloaded, or nil. Ordering tie-breaks defensively in case the
	// single-active invariant was ever violated.
	GetActiveByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error)

	// ReplaceActive cancels whatever is active for the account and inserts
	// newSub as one transaction, so the ledger is never observably between
	// states. cancelledAt/reason are nil for implicit supersession.
	ReplaceActive(ctx context.Context, accountID uuid.UUID, newSub *db_models.Subscription, cancelledAt *int64, reason *string) error

	CountActive(ctx context.Context) (int64, error)
	CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	CountActiveByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
	CountActiveByPlan(ctx context.Context, planID uuid.UUID) (int64, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Subscription, error)
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) ISubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (s SubscriptionRepository) GetActiveByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Subscription, error) {

	var sub db_models.Subscription
	err := s.db.WithContext(ctx).
		Preload("Plan").
		Where("account_id = ? AND status = ?", accountID, db_models.SubStatusActive).
		Order("starts_at DESC").
		Order("id DESC").
		First(&sub).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

func (s SubscriptionRepository) ReplaceActive(ctx context.Context, accountID uuid.UUID, newSub *db_models.Subscription, cancelledAt *int64, reason *string) error {

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"status": db_models.SubStatusCancelled}
		if cancelledAt != nil {
			updates["cancelled_at"] = *cancelledAt
		}
		if reason != nil {
			updates["cancellation_reason"] = *reason
		}

		if err := tx.Model(&db_models.Subscription{}).
			Where("account_id = ? AND status = ?", accountID, db_models.SubStatusActive).
			Updates(updates).Error; err != nil {
			return err
		}

		return tx.Create(newSub).Error
	})
}

func (s SubscriptionRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("status = ?", db_models.SubStatusActive).
		Count(&count).Error
	return count, err
}

func (s SubscriptionRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	return count, err
}

func (s SubscriptionRepository) CountActiveByAccount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("account_id = ? AND status = ?", accountID, db_models.SubStatusActive).
		Count(&count).Error
	return count, err
}

func (s SubscriptionRepository) CountActiveByPlan(ctx context.Context, planID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("plan_id = ? AND status = ?", planID, db_models.SubStatusActive).
		Count(&count).Error
	return count, err
}

func (s SubscriptionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := s.db.WithContext(ctx).
		Preload("Plan").
		Where("account_id = ?", accountID).
		Order("starts_at DESC").
		Order("id DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}
