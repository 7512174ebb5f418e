package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"comnet/internal/models/db_models"
	"comnet/internal/models/request_models"
	"comnet/internal/models/response_models"
	"comnet/internal/repositories"
	"comnet/pkg/utils"
)

type ReferralServiceInterface interface {
	CreateReferral(ctx context.Context, referrerID uuid.UUID, req request_models.CreateReferralRequest) (response_models.ReferralResponse, error)
	ListReferrals(ctx context.Context, referrerID uuid.UUID) ([]response_models.ReferralResponse, error)
}

type ReferralService struct {
	referralRepo repositories.IReferralRepository
	accountRepo  repositories.AccountRepository
	mailService  IMailService

	// Snapshot of the configured reward; copied onto each referral at
	// creation so later config changes never touch issued rewards.
	defaultReward decimal.Decimal
}

func NewReferralService(
	referralRepo repositories.IReferralRepository,
	accountRepo repositories.AccountRepository,
	mailService IMailService,
	defaultReward decimal.Decimal) ReferralServiceInterface {
	return &ReferralService{
		referralRepo:  referralRepo,
		accountRepo:   accountRepo,
		mailService:   mailService,
		defaultReward: defaultReward,
	}
}

func (r *ReferralService) CreateReferral(ctx context.Context, referrerID uuid.UUID, req request_models.CreateReferralRequest) (response_models.ReferralResponse, error) {

	exists, err := r.referralRepo.Exists(ctx, referrerID, req.Email)
	if err != nil {
		return response_models.ReferralResponse{}, utils.ErrDatabaseError
	}
	if exists {
		return response_models.ReferralResponse{}, utils.ErrDuplicateReferral
	}

	referral := &db_models.Referral{
		ReferrerID:    referrerID,
		ReferredEmail: req.Email,
		Status:        db_models.ReferralStatusPending,
		RewardAmount:  r.defaultReward,
	}

	if err := r.referralRepo.CreateReferral(ctx, referral); err != nil {
		return response_models.ReferralResponse{}, utils.ErrDatabaseError
	}

	r.sendInvite(ctx, referrerID, req.Email)

	return toReferralResponse(referral), nil
}

func (r *ReferralService) ListReferrals(ctx context.Context, referrerID uuid.UUID) ([]response_models.ReferralResponse, error) {

	referrals, err := r.referralRepo.ListByReferrer(ctx, referrerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ReferralResponse, 0, len(referrals))
	for i := range referrals {
		responses = append(responses, toReferralResponse(&referrals[i]))
	}

	return responses, nil
}

// sendInvite is best-effort; a mail outage never fails referral creation.
func (r *ReferralService) sendInvite(ctx context.Context, referrerID uuid.UUID, email string) {
	referrer, err := r.accountRepo.FindByID(ctx, referrerID.String())
	if err != nil || referrer == nil {
		return
	}

	if err := r.mailService.SendReferralInvite(email, referrer.Name, referrer.ReferralCode); err != nil {
		log.Printf("failed to send referral invite to %s: %v", email, err)
	}
}

func toReferralResponse(referral *db_models.Referral) response_models.ReferralResponse {
	return response_models.ReferralResponse{
		ID:            referral.ID.String(),
		ReferredEmail: referral.ReferredEmail,
		Status:        string(referral.Status),
		RewardAmount:  referral.RewardAmount.StringFixed(2),
		CreatedDate:   time.Unix(referral.CreatedAt, 0).UTC().Format(time.RFC3339),
	}
}
