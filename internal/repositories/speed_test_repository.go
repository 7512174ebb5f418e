package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"comnet/internal/models/db_models"
)

type ISpeedTestRepository interface {
	CreateSpeedTest(ctx context.Context, test *db_models.SpeedTest) error
	ListRecentByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.SpeedTest, error)
}

type SpeedTestRepository struct {
	db *gorm.DB
}

func NewSpeedTestRepository(db *gorm.DB) ISpeedTestRepository {
	return &SpeedTestRepository{db: db}
}

func (s SpeedTestRepository) CreateSpeedTest(ctx context.Context, test *db_models.SpeedTest) error {
	return s.db.WithContext(ctx).Create(test).Error
}

func (s SpeedTestRepository) ListRecentByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]db_models.SpeedTest, error) {
	var tests []db_models.SpeedTest
	err := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}
