package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"comnet/internal/models/db_models"
	"comnet/internal/models/request_models"
	"comnet/internal/models/response_models"
	"comnet/internal/repositories"
	mem "comnet/pkg/memcache"
	"comnet/pkg/utils"
)

const resetTokenTTL = 15 * time.Minute

type AccountServiceInterface interface {
	Register(ctx context.Context, req request_models.SignUpRequest) (response_models.AccountResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (response_models.LoginResponse, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (response_models.AccountResponse, error)
	UpdateProfile(ctx context.Context, accountID uuid.UUID, req request_models.UpdateProfileRequest) error
	ChangePassword(ctx context.Context, accountID uuid.UUID, req request_models.ChangePasswordRequest) error
	ForgotPassword(ctx context.Context, req request_models.RequestForgotPassword) error
	ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error

	// ArchiveAccount retires the account without deleting its history. The
	// account must first be clear of active subscriptions.
	ArchiveAccount(ctx context.Context, accountID uuid.UUID) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	subRepo     repositories.ISubscriptionRepository
	mailService IMailService
	resetTokens mem.ResetTokenStore
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	subRepo repositories.ISubscriptionRepository,
	mailService IMailService,
	resetTokens mem.ResetTokenStore) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		subRepo:     subRepo,
		mailService: mailService,
		resetTokens: resetTokens,
	}
}

func (a *AccountService) Register(ctx context.Context, req request_models.SignUpRequest) (response_models.AccountResponse, error) {

	if len(req.Password) < 6 {
		return response_models.AccountResponse{}, utils.ErrInvalidPassword
	}

	existing, err := a.accountRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}
	if existing != nil {
		return response_models.AccountResponse{}, utils.ErrUsernameTaken
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Username:     req.Username,
		PasswordHash: hashed,
		Role:         db_models.RoleUser,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		City:         req.City,
		State:        req.State,
		ReferralCode: utils.GenerateReferralCode(),
	}

	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}

	return toAccountResponse(account), nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (response_models.LoginResponse, error) {

	account, err := a.accountRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrDatabaseError
	}
	if account == nil || account.Role == db_models.RoleArchived {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return response_models.LoginResponse{}, utils.ErrInvalidCredentials
	}

	// Best effort; login never fails on a bookkeeping write.
	now := utils.NowUnixSeconds()
	if err := a.accountRepo.UpdateFields(ctx, account.ID.String(), map[string]interface{}{"last_login_at": now}); err != nil {
		log.Printf("failed to record last login for %s: %v", account.Username, err)
	}

	return response_models.LoginResponse{Token: token}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID uuid.UUID) (response_models.AccountResponse, error) {

	account, err := a.accountRepo.FindByID(ctx, accountID.String())
	if err != nil {
		return response_models.AccountResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.AccountResponse{}, utils.ErrAccountNotFound
	}

	return toAccountResponse(account), nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, accountID uuid.UUID, req request_models.UpdateProfileRequest) error {

	account, err := a.accountRepo.FindByID(ctx, accountID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.AutopayEnabled != nil {
		updates["autopay_enabled"] = *req.AutopayEnabled
	}
	if req.NotificationPrefs != nil {
		updates["notification_prefs"] = *req.NotificationPrefs
	}

	if len(updates) == 0 {
		return utils.ErrNoFieldsToUpdate
	}

	if err := a.accountRepo.UpdateFields(ctx, accountID.String(), updates); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) ChangePassword(ctx context.Context, accountID uuid.UUID, req request_models.ChangePasswordRequest) error {

	account, err := a.accountRepo.FindByID(ctx, accountID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	return a.setPassword(ctx, account, req.NewPassword)
}

// ForgotPassword always reports success to the caller so account existence
// is not probeable through this endpoint.
func (a *AccountService) ForgotPassword(ctx context.Context, req request_models.RequestForgotPassword) error {

	account, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil || account.Role == db_models.RoleArchived {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, account.Email, resetTokenTTL)

	if err := a.mailService.SendMailToResetPassword(account.Email, token); err != nil {
		log.Printf("failed to send reset mail to %s: %v", account.Email, err)
	}

	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, req request_models.ResetPasswordRequest) error {

	email := a.resetTokens.Consume(req.Token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	return a.setPassword(ctx, account, req.NewPassword)
}

func (a *AccountService) ArchiveAccount(ctx context.Context, accountID uuid.UUID) error {

	account, err := a.accountRepo.FindByID(ctx, accountID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	activeCount, err := a.subRepo.CountActiveByAccount(ctx, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if activeCount > 0 {
		return utils.ErrAccountHasActiveSubs
	}

	if err := a.accountRepo.UpdateFields(ctx, accountID.String(), map[string]interface{}{"role": db_models.RoleArchived}); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) setPassword(ctx context.Context, account *db_models.Account, newPassword string) error {

	if len(newPassword) < 6 {
		return utils.ErrInvalidPassword
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdateFields(ctx, account.ID.String(), map[string]interface{}{"password_hash": hashed}); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func toAccountResponse(account *db_models.Account) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:                account.ID.String(),
		Username:          account.Username,
		Role:              account.Role,
		Name:              account.Name,
		Email:             account.Email,
		Phone:             account.Phone,
		City:              account.City,
		State:             account.State,
		AutopayEnabled:    account.AutopayEnabled,
		NotificationPrefs: account.NotificationPrefs,
		ReferralCode:      account.ReferralCode,
	}
}
