package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"comnet/internal/billing"
	"comnet/internal/models/db_models"
	"comnet/internal/models/request_models"
	"comnet/internal/models/response_models"
	"comnet/internal/repositories"
	"comnet/pkg/utils"
)

type SubscriptionServiceInterface interface {
	Subscribe(ctx context.Context, accountID uuid.UUID, req request_models.SubscribeRequest) (response_models.SubscriptionResponse, error)

	// GetActiveSubscription returns nil when the account has no plan in
	// force. Subscriptions whose paid-through date has passed are reported
	// with the derived expired status.
	GetActiveSubscription(ctx context.Context, accountID uuid.UUID) (*response_models.SubscriptionResponse, error)

	ChangePlan(ctx context.Context, accountID uuid.UUID, req request_models.ChangePlanRequest) (response_models.ChangePlanResponse, error)
	ListHistory(ctx context.Context, accountID uuid.UUID) ([]response_models.SubscriptionResponse, error)
}

type SubscriptionService struct {
	subRepo      repositories.ISubscriptionRepository
	planRepo     repositories.IPlanRepository
	paymentRepo  repositories.IPaymentRepository
	referralRepo repositories.IReferralRepository
	accountRepo  repositories.AccountRepository
}

func NewSubscriptionService(
	subRepo repositories.ISubscriptionRepository,
	planRepo repositories.IPlanRepository,
	paymentRepo repositories.IPaymentRepository,
	referralRepo repositories.IReferralRepository,
	accountRepo repositories.AccountRepository) SubscriptionServiceInterface {
	return &SubscriptionService{
		subRepo:      subRepo,
		planRepo:     planRepo,
		paymentRepo:  paymentRepo,
		referralRepo: referralRepo,
		accountRepo:  accountRepo,
	}
}

func (s *SubscriptionService) Subscribe(ctx context.Context, accountID uuid.UUID, req request_models.SubscribeRequest) (response_models.SubscriptionResponse, error) {

	plan, err := s.purchasablePlan(ctx, req.PlanID)
	if err != nil {
		return response_models.SubscriptionResponse{}, err
	}

	firstEver, err := s.isFirstSubscription(ctx, accountID)
	if err != nil {
		return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
	}

	today := utils.TodayUTC()
	newSub := &db_models.Subscription{
		AccountID: accountID,
		PlanID:    plan.ID,
		Status:    db_models.SubStatusActive,
		StartsAt:  today.Unix(),
		EndsAt:    today.AddDate(0, 0, plan.ValidityDays).Unix(),
		AutoRenew: req.AutoRenew,
	}

	// Supersession: the outgoing subscription gets no cancellation
	// metadata, it is simply no longer the one in force.
	if err := s.subRepo.ReplaceActive(ctx, accountID, newSub, nil, nil); err != nil {
		return response_models.SubscriptionResponse{}, utils.ErrDatabaseError
	}

	s.recordCharge(ctx, newSub, plan.Price, today)

	if firstEver {
		s.completeReferrals(ctx, accountID)
	}

	newSub.Plan = *plan
	return toSubscriptionResponse(newSub, today), nil
}

func (s *SubscriptionService) GetActiveSubscription(ctx context.Context, accountID uuid.UUID) (*response_models.SubscriptionResponse, error) {

	sub, err := s.subRepo.GetActiveByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, nil
	}

	resp := toSubscriptionResponse(sub, utils.TodayUTC())
	return &resp, nil
}

func (s *SubscriptionService) ChangePlan(ctx context.Context, accountID uuid.UUID, req request_models.ChangePlanRequest) (response_models.ChangePlanResponse, error) {

	newPlan, err := s.purchasablePlan(ctx, req.PlanID)
	if err != nil {
		return response_models.ChangePlanResponse{}, err
	}

	current, err := s.subRepo.GetActiveByAccount(ctx, accountID)
	if err != nil {
		return response_models.ChangePlanResponse{}, utils.ErrDatabaseError
	}

	// A plan change with no history is a first subscription too; it must
	// trigger referral completion the same way Subscribe does.
	firstEver, err := s.isFirstSubscription(ctx, accountID)
	if err != nil {
		return response_models.ChangePlanResponse{}, utils.ErrDatabaseError
	}

	today := utils.TodayUTC()

	var term *billing.CurrentTerm
	if current != nil {
		term = &billing.CurrentTerm{
			EndsAt: utils.FromUnixDate(current.EndsAt),
			Terms: billing.PlanTerms{
				Price:        current.Plan.Price,
				ValidityDays: current.Plan.ValidityDays,
			},
		}
	}

	amount, rationale := billing.CalculateSwitchPrice(term, billing.PlanTerms{
		Price:        newPlan.Price,
		ValidityDays: newPlan.ValidityDays,
	}, today)

	// Switching with time remaining keeps the paid-through date; the
	// customer never gains schedule by hopping between plans.
	endsAt := today.AddDate(0, 0, newPlan.ValidityDays)
	if term != nil {
		if remaining := billing.RemainingDays(term.EndsAt, today); remaining > 0 {
			endsAt = today.AddDate(0, 0, remaining)
		}
	}

	newSub := &db_models.Subscription{
		AccountID: accountID,
		PlanID:    newPlan.ID,
		Status:    db_models.SubStatusActive,
		StartsAt:  today.Unix(),
		EndsAt:    endsAt.Unix(),
		AutoRenew: true,
	}

	var cancelledAt *int64
	if current != nil {
		now := utils.NowUnixSeconds()
		cancelledAt = &now
	}

	if err := s.subRepo.ReplaceActive(ctx, accountID, newSub, cancelledAt, nil); err != nil {
		return response_models.ChangePlanResponse{}, utils.ErrDatabaseError
	}

	if amount.IsPositive() {
		s.recordCharge(ctx, newSub, amount, today)
	}

	if firstEver {
		s.completeReferrals(ctx, accountID)
	}

	newSub.Plan = *newPlan
	return response_models.ChangePlanResponse{
		Amount:       amount.StringFixed(2),
		Description:  rationale,
		Subscription: toSubscriptionResponse(newSub, today),
	}, nil
}

func (s *SubscriptionService) ListHistory(ctx context.Context, accountID uuid.UUID) ([]response_models.SubscriptionResponse, error) {

	subs, err := s.subRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	today := utils.TodayUTC()
	responses := make([]response_models.SubscriptionResponse, 0, len(subs))
	for i := range subs {
		responses = append(responses, toSubscriptionResponse(&subs[i], today))
	}

	return responses, nil
}

// purchasablePlan resolves a plan that can be subscribed to right now.
// Archived plans resolve for history but are not purchasable.
func (s *SubscriptionService) purchasablePlan(ctx context.Context, planID string) (*db_models.Plan, error) {
	plan, err := s.planRepo.GetPlanByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil || plan.Archived {
		return nil, utils.ErrPlanNotFound
	}
	return plan, nil
}

func (s *SubscriptionService) isFirstSubscription(ctx context.Context, accountID uuid.UUID) (bool, error) {
	count, err := s.subRepo.CountByAccount(ctx, accountID)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// recordCharge appends the lifecycle charge to the billing ledger. The
// ledger is append-mostly and owned by billing; a failed append never rolls
// back an already-committed lifecycle change.
func (s *SubscriptionService) recordCharge(ctx context.Context, sub *db_models.Subscription, amount decimal.Decimal, today time.Time) {
	payment := &db_models.Payment{
		AccountID:      sub.AccountID,
		SubscriptionID: &sub.ID,
		Amount:         amount,
		Status:         db_models.PaymentStatusPending,
		BillMonth:      int(today.Month()),
		BillYear:       today.Year(),
		TransactionRef: "sub:" + sub.ID.String(),
	}

	if err := s.paymentRepo.CreatePayment(ctx, payment); err != nil {
		log.Printf("failed to record charge for subscription %s: %v", sub.ID, err)
	}
}

// completeReferrals settles pending referrals addressed to the account's
// email once the account takes its first subscription.
func (s *SubscriptionService) completeReferrals(ctx context.Context, accountID uuid.UUID) {
	account, err := s.accountRepo.FindByID(ctx, accountID.String())
	if err != nil || account == nil || account.Email == "" {
		return
	}

	completed, err := s.referralRepo.CompletePendingByEmail(ctx, account.Email)
	if err != nil {
		log.Printf("failed to complete referrals for %s: %v", account.Email, err)
		return
	}
	if completed > 0 {
		log.Printf("completed %d referral(s) for %s", completed, account.Email)
	}
}

func toSubscriptionResponse(sub *db_models.Subscription, today time.Time) response_models.SubscriptionResponse {

	status := sub.Status
	if status == db_models.SubStatusActive && utils.FromUnixDate(sub.EndsAt).Before(today) {
		status = db_models.SubStatusExpired
	}

	cancelled := ""
	if sub.CancelledAt != nil {
		cancelled = time.Unix(*sub.CancelledAt, 0).UTC().Format(time.RFC3339)
	}

	return response_models.SubscriptionResponse{
		ID:            sub.ID.String(),
		Status:        string(status),
		StartDate:     utils.FromUnixDate(sub.StartsAt).Format("2006-01-02"),
		EndDate:       utils.FromUnixDate(sub.EndsAt).Format("2006-01-02"),
		AutoRenew:     sub.AutoRenew,
		RenewalCount:  sub.RenewalCount,
		CancelledDate: cancelled,
		Plan:          ToPlanResponse(&sub.Plan),
	}
}
