package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"comnet/internal/models/db_models"
	"comnet/internal/models/request_models"
	"comnet/internal/repositories"
	"comnet/internal/services"
	"comnet/pkg/utils"
)

type PlansController struct {
	planService services.PlanServiceInterface
}

func NewPlansController(planService services.PlanServiceInterface) *PlansController {
	return &PlansController{
		planService: planService,
	}
}

// ListPlans godoc
// @Summary List available plans
// @Description Fetch the catalog of non-archived plans, optionally filtered by tier and price range
// @Tags Plans
// @Accept json
// @Produce json
// @Param tier query string false "Plan tier (basic, standard, premium, elite)"
// @Param price_min query number false "Minimum monthly price"
// @Param price_max query number false "Maximum monthly price"
// @Success 200 {array} response_models.PlanResponse
// @Router /plans [get]
func (p *PlansController) ListPlans(c *gin.Context) {

	filter := repositories.PlanFilter{
		Tier: db_models.PlanTier(c.Query("tier")),
	}

	if raw := c.Query("price_min"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid price_min")
			return
		}
		filter.PriceMin = &min
	}
	if raw := c.Query("price_max"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid price_max")
			return
		}
		filter.PriceMax = &max
	}

	plans, err := p.planService.ListPlans(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

// GetPlanById godoc
// @Summary Get plan by ID
// @Description Fetch a single plan, archived plans included
// @Tags Plans
// @Accept json
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} response_models.PlanResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plans/{planId} [get]
func (p *PlansController) GetPlanById(c *gin.Context) {
	planId := c.Param("planId")
	if planId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	plan, err := p.planService.GetPlanInfoById(c.Request.Context(), planId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}

// CreatePlan godoc
// @Summary Create a new plan
// @Description Add a plan to the catalog (admin only)
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.CreatePlanRequest true "Plan payload"
// @Success 200 {object} response_models.PlanResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans [post]
func (p *PlansController) CreatePlan(c *gin.Context) {
	var req request_models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.planService.CreatePlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan created successfully")
}

// UpdatePlan godoc
// @Summary Update a plan
// @Description Modify plan fields (admin only)
// @Tags Plans
// @Accept json
// @Produce json
// @Param planId path string true "Plan ID"
// @Param request body request_models.UpdatePlanRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{planId} [put]
func (p *PlansController) UpdatePlan(c *gin.Context) {
	planId := c.Param("planId")
	if planId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	var req request_models.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := p.planService.UpdatePlan(c.Request.Context(), planId, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan updated successfully")
}

// ArchivePlan godoc
// @Summary Archive a plan
// @Description Retire a plan from the catalog; blocked while subscribers remain (admin only)
// @Tags Plans
// @Accept json
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{planId}/archive [post]
func (p *PlansController) ArchivePlan(c *gin.Context) {
	planId := c.Param("planId")
	if planId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	if err := p.planService.ArchivePlan(c.Request.Context(), planId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan archived successfully")
}

// GetPlanStats godoc
// @Summary Get plan statistics
// @Description Fetch active subscriber count and collected revenue for a plan (admin only)
// @Tags Plans
// @Accept json
// @Produce json
// @Param planId path string true "Plan ID"
// @Success 200 {object} response_models.PlanStatsResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/{planId}/stats [get]
func (p *PlansController) GetPlanStats(c *gin.Context) {
	planId := c.Param("planId")
	if planId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Plan ID is required")
		return
	}

	stats, err := p.planService.GetPlanStats(c.Request.Context(), planId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Plan stats fetched successfully")
}
