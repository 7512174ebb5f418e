package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"comnet/internal/models/db_models"
	"comnet/internal/models/request_models"
	"comnet/internal/repositories"
	"comnet/pkg/utils"
)

func newSubscriptionFixture(t *testing.T) (SubscriptionServiceInterface, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	service := NewSubscriptionService(
		repositories.NewSubscriptionRepository(db),
		repositories.NewPlanRepository(db),
		repositories.NewPaymentRepository(db),
		repositories.NewReferralRepository(db),
		repositories.NewAccountRepository(db),
	)
	return service, db
}

func TestSubscribeKeepsOneActivePerAccount(t *testing.T) {
	service, db := newSubscriptionFixture(t)
	ctx := context.Background()

	account := seedAccount(t, db, "alice", "alice@example.com", db_models.RoleUser)
	basic := seedPlan(t, db, "Basic 100", "299", 30)
	premium := seedPlan(t, db, "Premium 500", "599", 30)

	_, err := service.Subscribe(ctx, account.ID, request_models.SubscribeRequest{PlanID: basic.ID.String()})
	require.NoError(t, err)

	resp, err := service.Subscribe(ctx, account.ID, request_models.SubscribeRequest{PlanID: premium.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, "Premium 500", resp.Plan.Name)

	var activeCount int64
	require.NoError(t, db.Model(&db_models.Subscription{}).
		Where("account_id = ? AND status = ?", account.ID, db_models.SubStatusActive).
		Count(&activeCount).Error)
	assert.EqualValues(t, 1, activeCount)

	history, err := service.ListHistory(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
}

func TestSubscribeRejectsMissingAndArchivedPlans(t *testing.T) {
	service, db := newSubscriptionFixture(t)
	ctx := context.Background()

	account := seedAccount(t, db, "bob", "bob@example.com", db_models.RoleUser)

	_, err := service.Subscribe(ctx, account.ID, request_models.SubscribeRequest{PlanID: "00000000-0000-0000-0000-000000000000"})
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)

	retired := seedPlan(t, db, "Legacy", "199", 30)
	require.NoError(t, db.Model(retired).Update("archived", true).Error)

	_, err = service.Subscribe(ctx, account.ID, request_models.SubscribeRequest{PlanID: retired.ID.String()})
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestSubscribeRecordsPendingCharge(t *testing.T) {
	service, db := newSubscriptionFixture(t)
	ctx := context.Background()

	account := seedAccount(t, db, "carol", "carol@example.com", db_models.RoleUser)
	plan := seedPlan(t, db, "Standard 300", "399", 30)

	_, err := service.Subscribe(ctx, account.ID, request_models.SubscribeRequest{PlanID: plan.ID.String()})
	require.NoError(t, err)

	var payments []db_models.Payment
	require.NoError(t, db.Where("account_id = ?", account.ID).Find(&payments).Error)
	require.Len(t, payments, 1)

	assert.Equal(t, "399.00", payments[0].Amount.StringFixed(2))
	assert.Equal(t, db_models.PaymentStatusPending, payments[0].Status)
	require.NotNil(t, payments[0].SubscriptionID)
}

func TestFirstSubscriptionCompletesPendingReferrals(t *testing.T) {
	service, db := newSubscriptionFixture(t)
	ctx := context.Background()

	referrer := seedAccount(t, db, "dave", "dave@example.com", db_models.RoleUser)
	referred := seedAccount(t, db, "erin", "erin@example.com", db_models.RoleUser)
	plan := seedPlan(t, db, "Standard 300", "399", 30)

	referral := &db_models.Referral{
		ReferrerID:    referrer.ID,
		ReferredEmail: referred.Email,
		Status:        db_models.ReferralStatusPending,
		RewardAmount:  plan.Price,
	}
	require.NoError(t, db.Create(referral).Error)

	_, err := service.Subscribe(ctx, referred.ID, request_models.SubscribeRequest{PlanID: plan.ID.String()})
	require.NoError(t, err)

	var got db_models.Referral
	require.NoError(t, db.First(&got, "id = ?", referral.ID).Error)
	assert.Equal(t, db_models.ReferralStatusCompleted, got.Status)

	// A second subscription is not a first-time trigger; new pending
	// referrals stay pending.
	late := &db_models.Referral{
		ReferrerID:    referrer.ID,
		ReferredEmail: referred.Email,
		Status:        db_models.ReferralStatusPending,
		RewardAmount:  plan.Price,
	}
	require.NoError(t, db.Create(late).Error)

	_, err = service.Subscribe(ctx, referred.ID, request_models.SubscribeRequest{PlanID: plan.ID.String()})
	require.NoError(t, err)

	got = db_models.Referral{}
	require.NoError(t, db.First(&got, "id = ?", late.ID).Error)
	assert.Equal(t, db_models.ReferralStatusPending, got.Status)
}

func TestFirstSubscriptionViaChangePlanCompletesReferrals(t *testing.T) {
	service, db := newSubscriptionFixture(t)
	ctx := context.Background()

	referrer := seedAccount(t, db, "oona", "oona@example.com", db_models.RoleUser)
	referred := seedAccount(t, db, "pam", "pam@example.com", db_models.RoleUser)
	plan := seedPlan(t, db, "Standard 300", "399", 30)

	referral := &db_models.Referral{
		ReferrerID:    referrer.ID,
		ReferredEmail: referred.Email,
		Status:        db_models.ReferralStatusPending,
		RewardAmount:  plan.Price,
	}
	require.NoError(t, db.Create(referral).Error)

	// No prior subscription: ChangePlan acts as the first subscription.
	resp, err := service.ChangePlan(ctx, referred.ID, request_models.ChangePlanRequest{PlanID: plan.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, "New subscription", resp.Description)

	var got db_models.Referral
	require.NoError(t, db.First(&got, "id = ?", referral.ID).Error)
	assert.Equal(t, db_models.ReferralStatusCompleted, got.Status)
}

func TestChangePlanKeepsPaidThroughDate(t *testing.T) {
	service, db := newSubscriptionFixture(t)
	ctx := context.Background()

	account := seedAccount(t, db, "frank", "frank@example.com", db_models.RoleUser)
	basic := seedPlan(t, db, "Basic 100", "300", 30)
	premium := seedPlan(t, db, "Premium 500", "600", 30)

	today := utils.TodayUTC()
	current := &db_models.Subscription{
		AccountID: account.ID,
		PlanID:    basic.ID,
		Status:    db_models.SubStatusActive,
		StartsAt:  today.AddDate(0, 0, -20).Unix(),
		EndsAt:    today.AddDate(0, 0, 10).Unix(),
	}
	require.NoError(t, db.Create(current).Error)

	resp, err := service.ChangePlan(ctx, account.ID, request_models.ChangePlanRequest{PlanID: premium.ID.String()})
	require.NoError(t, err)

	// 10 days at 20/day minus 10 days at 10/day.
	assert.Equal(t, "100.00", resp.Amount)
	assert.Equal(t, "Upgrade for 10 days", resp.Description)
	assert.Equal(t, today.AddDate(0, 0, 10).Format("2006-01-02"), resp.Subscription.EndDate)

	var old db_models.Subscription
	require.NoError(t, db.First(&old, "id = ?", current.ID).Error)
	assert.Equal(t, db_models.SubStatusCancelled, old.Status)
	assert.NotNil(t, old.CancelledAt)
}

func TestChangePlanAfterTermElapsedChargesFullPrice(t *testing.T) {
	service, db := newSubscriptionFixture(t)
	ctx := context.Background()

	account := seedAccount(t, db, "grace", "grace@example.com", db_models.RoleUser)
	basic := seedPlan(t, db, "Basic 100", "300", 30)
	premium := seedPlan(t, db, "Premium 500", "600", 30)

	today := utils.TodayUTC()
	stale := &db_models.Subscription{
		AccountID: account.ID,
		PlanID:    basic.ID,
		Status:    db_models.SubStatusActive,
		StartsAt:  today.AddDate(0, 0, -40).Unix(),
		EndsAt:    today.AddDate(0, 0, -10).Unix(),
	}
	require.NoError(t, db.Create(stale).Error)

	resp, err := service.ChangePlan(ctx, account.ID, request_models.ChangePlanRequest{PlanID: premium.ID.String()})
	require.NoError(t, err)

	assert.Equal(t, "600.00", resp.Amount)
	assert.Equal(t, "Current plan expired, full price", resp.Description)
	assert.Equal(t, today.AddDate(0, 0, 30).Format("2006-01-02"), resp.Subscription.EndDate)
}

func TestDowngradeCreatesNoCharge(t *testing.T) {
	service, db := newSubscriptionFixture(t)
	ctx := context.Background()

	account := seedAccount(t, db, "heidi", "heidi@example.com", db_models.RoleUser)
	premium := seedPlan(t, db, "Premium 500", "600", 30)
	basic := seedPlan(t, db, "Basic 100", "300", 30)

	today := utils.TodayUTC()
	current := &db_models.Subscription{
		AccountID: account.ID,
		PlanID:    premium.ID,
		Status:    db_models.SubStatusActive,
		StartsAt:  today.AddDate(0, 0, -20).Unix(),
		EndsAt:    today.AddDate(0, 0, 10).Unix(),
	}
	require.NoError(t, db.Create(current).Error)

	resp, err := service.ChangePlan(ctx, account.ID, request_models.ChangePlanRequest{PlanID: basic.ID.String()})
	require.NoError(t, err)

	assert.Equal(t, "0.00", resp.Amount)
	assert.Equal(t, "Downgrade - 100 credit (refund not applicable)", resp.Description)

	var paymentCount int64
	require.NoError(t, db.Model(&db_models.Payment{}).
		Where("account_id = ?", account.ID).
		Count(&paymentCount).Error)
	assert.EqualValues(t, 0, paymentCount)
}

func TestGetActiveSubscriptionDerivesExpiredStatus(t *testing.T) {
	service, db := newSubscriptionFixture(t)
	ctx := context.Background()

	account := seedAccount(t, db, "ivan", "ivan@example.com", db_models.RoleUser)
	plan := seedPlan(t, db, "Basic 100", "300", 30)

	today := utils.TodayUTC()
	sub := &db_models.Subscription{
		AccountID: account.ID,
		PlanID:    plan.ID,
		Status:    db_models.SubStatusActive,
		StartsAt:  today.AddDate(0, 0, -40).Unix(),
		EndsAt:    today.AddDate(0, 0, -10).Unix(),
	}
	require.NoError(t, db.Create(sub).Error)

	resp, err := service.GetActiveSubscription(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, string(db_models.SubStatusExpired), resp.Status)

	// The stored row is untouched; expiry is derived at read time.
	var stored db_models.Subscription
	require.NoError(t, db.First(&stored, "id = ?", sub.ID).Error)
	assert.Equal(t, db_models.SubStatusActive, stored.Status)
}

func TestGetActiveSubscriptionNilWhenNone(t *testing.T) {
	service, db := newSubscriptionFixture(t)
	ctx := context.Background()

	account := seedAccount(t, db, "judy", "judy@example.com", db_models.RoleUser)

	resp, err := service.GetActiveSubscription(ctx, account.ID)
	require.NoError(t, err)
	assert.Nil(t, resp)
}
