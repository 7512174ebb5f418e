package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"comnet/internal/models/request_models"
	"comnet/internal/services"
	"comnet/pkg/utils"
)

type SubscriptionsController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionsController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionsController {
	return &SubscriptionsController{
		subscriptionService: subscriptionService,
	}
}

func authenticatedAccountID(c *gin.Context) (uuid.UUID, bool) {
	accountID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid authentication token")
		return uuid.Nil, false
	}
	return accountID, true
}

// Subscribe godoc
// @Summary Subscribe to a plan
// @Description Start a subscription on the chosen plan; any plan currently in force is superseded
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.SubscribeRequest true "Subscription payload"
// @Success 200 {object} response_models.SubscriptionResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/subscribe [post]
func (s *SubscriptionsController) Subscribe(c *gin.Context) {
	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	var req request_models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sub, err := s.subscriptionService.Subscribe(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Subscribed successfully")
}

// GetActiveSubscription godoc
// @Summary Get the active subscription
// @Description Fetch the authenticated account's subscription currently in force, if any
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Success 200 {object} response_models.SubscriptionResponse
// @Security BearerAuth
// @Router /subscriptions/active [get]
func (s *SubscriptionsController) GetActiveSubscription(c *gin.Context) {
	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	sub, err := s.subscriptionService.GetActiveSubscription(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if sub == nil {
		utils.RespondSuccess(c, nil, "No active subscription")
		return
	}

	utils.RespondSuccess(c, sub, "Active subscription fetched successfully")
}

// ChangePlan godoc
// @Summary Change to a different plan
// @Description Switch the active subscription to another plan with prorated pricing
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.ChangePlanRequest true "Plan change payload"
// @Success 200 {object} response_models.ChangePlanResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscriptions/change-plan [post]
func (s *SubscriptionsController) ChangePlan(c *gin.Context) {
	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	var req request_models.ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := s.subscriptionService.ChangePlan(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Plan changed successfully")
}

// GetHistory godoc
// @Summary Get subscription history
// @Description Fetch all subscriptions the account has ever held, newest first
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Success 200 {array} response_models.SubscriptionResponse
// @Security BearerAuth
// @Router /subscriptions/history [get]
func (s *SubscriptionsController) GetHistory(c *gin.Context) {
	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	subs, err := s.subscriptionService.ListHistory(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subs, "Subscription history fetched successfully")
}
