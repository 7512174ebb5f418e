package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"comnet/internal/models/db_models"
)

type IReferralRepository interface {
	CreateReferral(ctx context.Context, referral *db_models.Referral) error
	ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]db_models.Referral, error)
	Exists(ctx context.Context, referrerID uuid.UUID, email string) (bool, error)

	// CompletePendingByEmail flips all pending referrals addressed to email
	// and returns how many were completed.
	CompletePendingByEmail(ctx context.Context, email string) (int64, error)
}

type ReferralRepository struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) IReferralRepository {
	return &ReferralRepository{db: db}
}

func (r ReferralRepository) CreateReferral(ctx context.Context, referral *db_models.Referral) error {
	return r.db.WithContext(ctx).Create(referral).Error
}

func (r ReferralRepository) ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]db_models.Referral, error) {
	var referrals []db_models.Referral
	err := r.db.WithContext(ctx).
		Where("referrer_id = ?", referrerID).
		Order("created_at DESC").
		Find(&referrals).Error
	if err != nil {
		return nil, err
	}
	return referrals, nil
}

func (r ReferralRepository) Exists(ctx context.Context, referrerID uuid.UUID, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Referral{}).
		Where("referrer_id = ? AND referred_email = ?", referrerID, email).
		Count(&count).Error
	return count > 0, err
}

func (r ReferralRepository) CompletePendingByEmail(ctx context.Context, email string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&db_models.Referral{}).
		Where("referred_email = ? AND status = ?", email, db_models.ReferralStatusPending).
		Update("status", db_models.ReferralStatusCompleted)
	return result.RowsAffected, result.Error
}
