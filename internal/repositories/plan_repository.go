package repositories

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"comnet/internal/models/db_models"
)

type PlanFilter struct {
	Tier     db_models.PlanTier
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
}

type IPlanRepository interface {
	GetPlanByID(ctx context.Context, planID string) (*db_models.Plan, error)
	ListPlans(ctx context.Context, filter PlanFilter) ([]db_models.Plan, error)
	CreatePlan(ctx context.Context, plan *db_models.Plan) error
	UpdatePlan(ctx context.Context, planID string, updates map[string]interface{}) error
	ArchivePlan(ctx context.Context, planID string) error
}

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &PlanRepository{db: db}
}

func (p PlanRepository) GetPlanByID(ctx context.Context, planID string) (*db_models.Plan, error) {

	var plan db_models.Plan
	err := p.db.WithContext(ctx).First(&plan, "id = ?", planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

// ListPlans returns purchasable plans only, cheapest first.
func (p PlanRepository) ListPlans(ctx context.Context, filter PlanFilter) ([]db_models.Plan, error) {

	query := p.db.WithContext(ctx).Where("archived = ?", false)

	if filter.Tier != "" {
		query = query.Where("tier = ?", filter.Tier)
	}
	if filter.PriceMin != nil {
		query = query.Where("price >= ?", filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price <= ?", filter.PriceMax)
	}

	var plans []db_models.Plan
	if err := query.Order("price ASC").Find(&plans).Error; err != nil {
		return nil, err
	}

	return plans, nil
}

func (p PlanRepository) CreatePlan(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Create(plan).Error
}

func (p PlanRepository) UpdatePlan(ctx context.Context, planID string, updates map[string]interface{}) error {
	return p.db.WithContext(ctx).
		Model(&db_models.Plan{}).
		Where("id = ?", planID).
		Updates(updates).Error
}

func (p PlanRepository) ArchivePlan(ctx context.Context, planID string) error {
	return p.db.WithContext(ctx).
		Model(&db_models.Plan{}).
		Where("id = ?", planID).
		Update("archived", true).Error
}
