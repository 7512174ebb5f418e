package controllers

import (
	"github.com/gin-gonic/gin"

	"comnet/internal/services"
	"comnet/pkg/utils"
)

type SpeedTestsController struct {
	speedTestService services.SpeedTestServiceInterface
}

func NewSpeedTestsController(speedTestService services.SpeedTestServiceInterface) *SpeedTestsController {
	return &SpeedTestsController{
		speedTestService: speedTestService,
	}
}

// RunSpeedTest godoc
// @Summary Run a speed test
// @Description Measure the line against the account's active plan
// @Tags SpeedTests
// @Accept json
// @Produce json
// @Success 200 {object} response_models.SpeedTestResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /speed-tests/run [post]
func (s *SpeedTestsController) RunSpeedTest(c *gin.Context) {
	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	result, err := s.speedTestService.RunSpeedTest(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Speed test completed")
}

// ListRecentSpeedTests godoc
// @Summary List recent speed tests
// @Description Fetch the account's latest speed test results, newest first
// @Tags SpeedTests
// @Accept json
// @Produce json
// @Success 200 {array} response_models.SpeedTestResponse
// @Security BearerAuth
// @Router /speed-tests [get]
func (s *SpeedTestsController) ListRecentSpeedTests(c *gin.Context) {
	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	results, err := s.speedTestService.ListRecent(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, results, "Speed tests fetched successfully")
}
