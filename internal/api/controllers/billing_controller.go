package controllers

import (
	"comnet/internal/services"
	"comnet/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BillingController struct {
	billingService services.BillingServiceInterface
}

func NewBillingController(billingService services.BillingServiceInterface) *BillingController {
	return &BillingController{
		billingService: billingService,
	}
}

// ListPayments godoc
// @Summary List payments
// @Description Fetch the authenticated account's payment history, newest first
// @Tags Billing
// @Accept json
// @Produce json
// @Success 200 {array} response_models.PaymentResponse
// @Security BearerAuth
// @Router /billing/payments [get]
func (b *BillingController) ListPayments(c *gin.Context) {
	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	payments, err := b.billingService.ListPayments(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payments, "Payments fetched successfully")
}

// GetRevenueSummary godoc
// @Summary Get revenue summary
// @Description Fetch total collected revenue, active subscription count and customer count (admin only)
// @Tags Billing
// @Accept json
// @Produce json
// @Success 200 {object} response_models.RevenueSummaryResponse
// @Security BearerAuth
// @Router /billing/revenue [get]
func (b *BillingController) GetRevenueSummary(c *gin.Context) {

	summary, err := b.billingService.GetRevenueSummary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Revenue summary fetched successfully")
}
