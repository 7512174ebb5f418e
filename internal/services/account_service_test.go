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
	mem "comnet/pkg/memcache"
	"comnet/pkg/utils"
)

func newAccountFixture(t *testing.T) (AccountServiceInterface, *gorm.DB, *mailRecorder) {
	t.Helper()

	db := newTestDB(t)
	mail := newMailRecorder()
	service := NewAccountService(
		repositories.NewAccountRepository(db),
		repositories.NewSubscriptionRepository(db),
		mail,
		mem.NewResetTokens(),
	)
	return service, db, mail
}

func TestRegisterValidatesAndAssignsReferralCode(t *testing.T) {
	service, _, _ := newAccountFixture(t)
	ctx := context.Background()

	_, err := service.Register(ctx, request_models.SignUpRequest{
		Username: "short", Password: "12345", Name: "Short", Email: "short@example.com",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidPassword)

	resp, err := service.Register(ctx, request_models.SignUpRequest{
		Username: "hank", Password: "secret99", Name: "Hank", Email: "hank@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleUser, resp.Role)
	assert.NotEmpty(t, resp.ReferralCode)

	_, err = service.Register(ctx, request_models.SignUpRequest{
		Username: "hank", Password: "secret99", Name: "Hank Two", Email: "hank2@example.com",
	})
	assert.ErrorIs(t, err, utils.ErrUsernameTaken)
}

func TestLoginChecksCredentialsAndArchivedState(t *testing.T) {
	service, db, _ := newAccountFixture(t)
	ctx := context.Background()

	seedAccount(t, db, "iris", "iris@example.com", db_models.RoleUser)

	_, err := service.Login(ctx, request_models.LoginRequest{Username: "iris", Password: "wrong"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	resp, err := service.Login(ctx, request_models.LoginRequest{Username: "iris", Password: "hunter22"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	require.NoError(t, db.Model(&db_models.Account{}).
		Where("username = ?", "iris").
		Update("role", db_models.RoleArchived).Error)

	_, err = service.Login(ctx, request_models.LoginRequest{Username: "iris", Password: "hunter22"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestUpdateProfileRequiresFields(t *testing.T) {
	service, db, _ := newAccountFixture(t)
	ctx := context.Background()

	account := seedAccount(t, db, "jack", "jack@example.com", db_models.RoleUser)

	err := service.UpdateProfile(ctx, account.ID, request_models.UpdateProfileRequest{})
	assert.ErrorIs(t, err, utils.ErrNoFieldsToUpdate)

	city := "Austin"
	autopay := true
	require.NoError(t, service.UpdateProfile(ctx, account.ID, request_models.UpdateProfileRequest{
		City:           &city,
		AutopayEnabled: &autopay,
	}))

	profile, err := service.GetProfile(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Austin", profile.City)
	assert.True(t, profile.AutopayEnabled)
}

func TestPasswordResetRoundTrip(t *testing.T) {
	service, _, mail := newAccountFixture(t)
	ctx := context.Background()

	_, err := service.Register(ctx, request_models.SignUpRequest{
		Username: "kara", Password: "original99", Name: "Kara", Email: "kara@example.com",
	})
	require.NoError(t, err)

	// Unknown emails succeed silently so the endpoint cannot be used to
	// probe for accounts.
	require.NoError(t, service.ForgotPassword(ctx, request_models.RequestForgotPassword{Email: "nobody@example.com"}))
	assert.Empty(t, mail.resetTokens["nobody@example.com"])

	require.NoError(t, service.ForgotPassword(ctx, request_models.RequestForgotPassword{Email: "kara@example.com"}))
	token := mail.resetTokens["kara@example.com"]
	require.NotEmpty(t, token)

	require.NoError(t, service.ResetPassword(ctx, request_models.ResetPasswordRequest{
		Token:       token,
		NewPassword: "changed99",
	}))

	// Tokens are single use.
	err = service.ResetPassword(ctx, request_models.ResetPasswordRequest{
		Token:       token,
		NewPassword: "again99",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidResetToken)

	_, err = service.Login(ctx, request_models.LoginRequest{Username: "kara", Password: "original99"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = service.Login(ctx, request_models.LoginRequest{Username: "kara", Password: "changed99"})
	assert.NoError(t, err)
}

func TestArchiveAccountBlockedByActiveSubscription(t *testing.T) {
	service, db, _ := newAccountFixture(t)
	ctx := context.Background()

	account := seedAccount(t, db, "lena", "lena@example.com", db_models.RoleUser)
	plan := seedPlan(t, db, "Standard", "399", 30)

	today := utils.TodayUTC()
	sub := &db_models.Subscription{
		AccountID: account.ID,
		PlanID:    plan.ID,
		Status:    db_models.SubStatusActive,
		StartsAt:  today.Unix(),
		EndsAt:    today.AddDate(0, 0, 30).Unix(),
	}
	require.NoError(t, db.Create(sub).Error)

	err := service.ArchiveAccount(ctx, account.ID)
	assert.ErrorIs(t, err, utils.ErrAccountHasActiveSubs)

	require.NoError(t, db.Model(sub).Update("status", db_models.SubStatusCancelled).Error)
	require.NoError(t, service.ArchiveAccount(ctx, account.ID))

	var archived db_models.Account
	require.NoError(t, db.First(&archived, "id = ?", account.ID).Error)
	assert.Equal(t, db_models.RoleArchived, archived.Role)
}
