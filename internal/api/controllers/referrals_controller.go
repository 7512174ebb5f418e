package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comnet/internal/models/request_models"
	"comnet/internal/services"
	"comnet/pkg/utils"
)

type ReferralsController struct {
	referralService services.ReferralServiceInterface
}

func NewReferralsController(referralService services.ReferralServiceInterface) *ReferralsController {
	return &ReferralsController{
		referralService: referralService,
	}
}

// CreateReferral godoc
// @Summary Refer a friend
// @Description Record a referral for the given email and send an invite
// @Tags Referrals
// @Accept json
// @Produce json
// @Param request body request_models.CreateReferralRequest true "Referral payload"
// @Success 200 {object} response_models.ReferralResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /referrals [post]
func (r *ReferralsController) CreateReferral(c *gin.Context) {
	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	var req request_models.CreateReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A valid email is required")
		return
	}

	referral, err := r.referralService.CreateReferral(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, referral, "Referral created successfully")
}

// ListReferrals godoc
// @Summary List referrals
// @Description Fetch the authenticated account's referrals, newest first
// @Tags Referrals
// @Accept json
// @Produce json
// @Success 200 {array} response_models.ReferralResponse
// @Security BearerAuth
// @Router /referrals [get]
func (r *ReferralsController) ListReferrals(c *gin.Context) {
	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	referrals, err := r.referralService.ListReferrals(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, referrals, "Referrals fetched successfully")
}
