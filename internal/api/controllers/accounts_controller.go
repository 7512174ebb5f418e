package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comnet/internal/models/request_models"
	"comnet/internal/services"
	"comnet/pkg/utils"
)

type AccountsController struct {
	accountService services.AccountServiceInterface
}

func NewAccountsController(accountService services.AccountServiceInterface) *AccountsController {
	return &AccountsController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new customer account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 200 {object} response_models.AccountResponse
// @Failure 409 {object} utils.APIResponse
// @Router /accounts/register [post]
func (a *AccountsController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	account, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} response_models.LoginResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountsController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, token, "Login successful")
}

// GetProfile godoc
// @Summary Get profile
// @Description Fetch the authenticated account's profile
// @Tags Accounts
// @Accept json
// @Produce json
// @Success 200 {object} response_models.AccountResponse
// @Security BearerAuth
// @Router /accounts/profile [get]
func (a *AccountsController) GetProfile(c *gin.Context) {
	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	profile, err := a.accountService.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Modify profile fields of the authenticated account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/profile [put]
func (a *AccountsController) UpdateProfile(c *gin.Context) {
	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.UpdateProfile(c.Request.Context(), accountID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile updated successfully")
}

// ChangePassword godoc
// @Summary Change password
// @Description Set a new password for the authenticated account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.ChangePasswordRequest true "Password payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/change-password [post]
func (a *AccountsController) ChangePassword(c *gin.Context) {
	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	var req request_models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.ChangePassword(c.Request.Context(), accountID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password changed successfully")
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Sends a password reset link to the provided email if it exists
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.RequestForgotPassword true "Forgot password payload"
// @Success 200 {object} utils.APIResponse
// @Router /accounts/forgot-password [post]
func (a *AccountsController) ForgotPassword(c *gin.Context) {
	var req request_models.RequestForgotPassword
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.ForgotPassword(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "If the email exists, a reset link has been sent")
}

// ResetPassword godoc
// @Summary Reset password with token
// @Description Resets the password using a valid reset token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.ResetPasswordRequest true "Password reset payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts/reset-password [post]
func (a *AccountsController) ResetPassword(c *gin.Context) {
	var req request_models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.ResetPassword(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password has been reset successfully")
}

// ArchiveAccount godoc
// @Summary Archive the account
// @Description Retire the authenticated account; blocked while an active subscription remains
// @Tags Accounts
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/archive [post]
func (a *AccountsController) ArchiveAccount(c *gin.Context) {
	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	if err := a.accountService.ArchiveAccount(c.Request.Context(), accountID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account archived successfully")
}
