package services

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"

	"comnet/internal/models/db_models"
	"comnet/internal/models/request_models"
	"comnet/internal/models/response_models"
	"comnet/internal/repositories"
	"comnet/pkg/utils"
)

type PlanServiceInterface interface {
	CreatePlan(ctx context.Context, req request_models.CreatePlanRequest) (response_models.PlanResponse, error)
	GetPlanInfoById(ctx context.Context, planID string) (response_models.PlanResponse, error)
	ListPlans(ctx context.Context, filter repositories.PlanFilter) ([]response_models.PlanResponse, error)
	UpdatePlan(ctx context.Context, planID string, req request_models.UpdatePlanRequest) error
	ArchivePlan(ctx context.Context, planID string) error
	GetPlanStats(ctx context.Context, planID string) (response_models.PlanStatsResponse, error)
}

type PlanService struct {
	planRepo    repositories.IPlanRepository
	subRepo     repositories.ISubscriptionRepository
	paymentRepo repositories.IPaymentRepository
}

func NewPlanService(
	planRepo repositories.IPlanRepository,
	subRepo repositories.ISubscriptionRepository,
	paymentRepo repositories.IPaymentRepository) PlanServiceInterface {
	return &PlanService{
		planRepo:    planRepo,
		subRepo:     subRepo,
		paymentRepo: paymentRepo,
	}
}

func (p *PlanService) CreatePlan(ctx context.Context, req request_models.CreatePlanRequest) (response_models.PlanResponse, error) {

	if req.Name == "" || req.Price.IsNegative() || req.ValidityDays <= 0 {
		return response_models.PlanResponse{}, utils.ErrInvalidPlanDetails
	}

	dataLimit := req.DataLimitGB
	if req.Unlimited {
		dataLimit = db_models.UnlimitedDataGB
	}

	tier := db_models.PlanTier(req.Tier)
	if tier == "" {
		tier = db_models.TierBasic
	}

	features, err := json.Marshal(req.Features)
	if err != nil {
		return response_models.PlanResponse{}, utils.ErrInvalidPlanDetails
	}

	plan := &db_models.Plan{
		Name:         req.Name,
		DownloadMbps: req.DownloadMbps,
		UploadMbps:   req.UploadMbps,
		DataLimitGB:  dataLimit,
		Unlimited:    req.Unlimited,
		Price:        req.Price,
		ValidityDays: req.ValidityDays,
		Description:  req.Description,
		Tier:         tier,
		Features:     datatypes.JSON(features),
	}

	if err := p.planRepo.CreatePlan(ctx, plan); err != nil {
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}

	return ToPlanResponse(plan), nil
}

func (p *PlanService) GetPlanInfoById(ctx context.Context, planID string) (response_models.PlanResponse, error) {

	plan, err := p.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return response_models.PlanResponse{}, utils.ErrDatabaseError
	}
	if plan == nil {
		return response_models.PlanResponse{}, utils.ErrPlanNotFound
	}

	return ToPlanResponse(plan), nil
}

func (p *PlanService) ListPlans(ctx context.Context, filter repositories.PlanFilter) ([]response_models.PlanResponse, error) {

	plans, err := p.planRepo.ListPlans(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.PlanResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, ToPlanResponse(&plans[i]))
	}

	return responses, nil
}

func (p *PlanService) UpdatePlan(ctx context.Context, planID string, req request_models.UpdatePlanRequest) error {

	plan, err := p.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrPlanNotFound
	}

	updates := map[string]interface{}{}

	if req.Name != nil {
		if *req.Name == "" {
			return utils.ErrInvalidPlanDetails
		}
		updates["name"] = *req.Name
	}
	if req.DownloadMbps != nil {
		updates["download_mbps"] = *req.DownloadMbps
	}
	if req.UploadMbps != nil {
		updates["upload_mbps"] = *req.UploadMbps
	}
	if req.DataLimitGB != nil {
		updates["data_limit_gb"] = *req.DataLimitGB
	}
	if req.Unlimited != nil {
		updates["unlimited"] = *req.Unlimited
		if *req.Unlimited {
			updates["data_limit_gb"] = float64(db_models.UnlimitedDataGB)
		}
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return utils.ErrInvalidPlanDetails
		}
		updates["price"] = *req.Price
	}
	if req.ValidityDays != nil {
		if *req.ValidityDays <= 0 {
			return utils.ErrInvalidPlanDetails
		}
		updates["validity_days"] = *req.ValidityDays
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Tier != nil {
		updates["tier"] = db_models.PlanTier(*req.Tier)
	}
	if req.Features != nil {
		features, err := json.Marshal(req.Features)
		if err != nil {
			return utils.ErrInvalidPlanDetails
		}
		updates["features"] = datatypes.JSON(features)
	}

	if len(updates) == 0 {
		return utils.ErrNoFieldsToUpdate
	}

	if err := p.planRepo.UpdatePlan(ctx, planID, updates); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

// ArchivePlan soft-deletes: the plan stops being offered but stays
// resolvable so historical subscriptions keep their pricing snapshot.
func (p *PlanService) ArchivePlan(ctx context.Context, planID string) error {

	plan, err := p.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.ErrPlanNotFound
	}

	activeCount, err := p.subRepo.CountActiveByPlan(ctx, plan.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if activeCount > 0 {
		return utils.ErrPlanHasActiveSubs
	}

	if err := p.planRepo.ArchivePlan(ctx, planID); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (p *PlanService) GetPlanStats(ctx context.Context, planID string) (response_models.PlanStatsResponse, error) {

	plan, err := p.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return response_models.PlanStatsResponse{}, utils.ErrDatabaseError
	}
	if plan == nil {
		return response_models.PlanStatsResponse{}, utils.ErrPlanNotFound
	}

	activeCount, err := p.subRepo.CountActiveByPlan(ctx, plan.ID)
	if err != nil {
		return response_models.PlanStatsResponse{}, utils.ErrDatabaseError
	}

	revenue, err := p.paymentRepo.TotalPaidForPlan(ctx, plan.ID)
	if err != nil {
		return response_models.PlanStatsResponse{}, utils.ErrDatabaseError
	}

	return response_models.PlanStatsResponse{
		Plan:                ToPlanResponse(plan),
		ActiveSubscriptions: activeCount,
		TotalRevenue:        revenue.StringFixed(2),
	}, nil
}

func ToPlanResponse(plan *db_models.Plan) response_models.PlanResponse {
	description := ""
	if plan.Description != nil {
		description = *plan.Description
	}

	return response_models.PlanResponse{
		ID:           plan.ID.String(),
		Name:         plan.Name,
		DownloadMbps: plan.DownloadMbps,
		UploadMbps:   plan.UploadMbps,
		DataLimitGB:  plan.DataLimitGB,
		Unlimited:    plan.Unlimited,
		Price:        plan.Price.StringFixed(2),
		ValidityDays: plan.ValidityDays,
		Description:  description,
		Tier:         string(plan.Tier),
		Features:     json.RawMessage(plan.Features),
	}
}
