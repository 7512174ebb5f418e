package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"comnet/internal/models/db_models"
	"comnet/internal/repositories"
	"comnet/pkg/utils"
)

func newSpeedTestFixture(t *testing.T) (SpeedTestServiceInterface, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	service := NewSpeedTestService(
		repositories.NewSpeedTestRepository(db),
		repositories.NewSubscriptionRepository(db),
	)
	return service, db
}

func seedActiveSubscription(t *testing.T, db *gorm.DB, accountID, planID uuid.UUID) *db_models.Subscription {
	t.Helper()

	starts := utils.TodayUTC()
	sub := &db_models.Subscription{
		AccountID: accountID,
		PlanID:    planID,
		Status:    db_models.SubStatusActive,
		StartsAt:  starts.Unix(),
		EndsAt:    starts.AddDate(0, 0, 30).Unix(),
	}
	require.NoError(t, db.Create(sub).Error)
	return sub
}

func TestRunSpeedTestRequiresActiveSubscription(t *testing.T) {
	service, db := newSpeedTestFixture(t)
	ctx := context.Background()

	account := seedAccount(t, db, "wes", "wes@example.com", db_models.RoleUser)

	_, err := service.RunSpeedTest(ctx, account.ID)
	assert.ErrorIs(t, err, utils.ErrSubscriptionNotFound)
}

func TestRunSpeedTestTracksPlanSpeeds(t *testing.T) {
	service, db := newSpeedTestFixture(t)
	ctx := context.Background()

	account := seedAccount(t, db, "xan", "xan@example.com", db_models.RoleUser)
	plan := seedPlan(t, db, "Fiber 100", "29.99", 30)
	seedActiveSubscription(t, db, account.ID, plan.ID)

	result, err := service.RunSpeedTest(ctx, account.ID)
	require.NoError(t, err)

	// Measurements land between 85% and 98% of the provisioned speeds.
	assert.GreaterOrEqual(t, result.DownloadMbps, float64(plan.DownloadMbps)*0.85)
	assert.LessOrEqual(t, result.DownloadMbps, float64(plan.DownloadMbps)*0.98)
	assert.GreaterOrEqual(t, result.UploadMbps, float64(plan.UploadMbps)*0.85)
	assert.LessOrEqual(t, result.UploadMbps, float64(plan.UploadMbps)*0.98)
	assert.GreaterOrEqual(t, result.PingMs, 5.0)
	assert.LessOrEqual(t, result.PingMs, 30.0)

	var stored db_models.SpeedTest
	require.NoError(t, db.First(&stored, "id = ?", result.ID).Error)
	assert.Equal(t, result.DownloadMbps, stored.DownloadMbps)
}

func TestListRecentSpeedTestsCappedAndNewestFirst(t *testing.T) {
	service, db := newSpeedTestFixture(t)
	ctx := context.Background()

	account := seedAccount(t, db, "yara", "yara@example.com", db_models.RoleUser)
	plan := seedPlan(t, db, "Fiber 100", "29.99", 30)
	seedActiveSubscription(t, db, account.ID, plan.ID)

	for i := 0; i < 12; i++ {
		result, err := service.RunSpeedTest(ctx, account.ID)
		require.NoError(t, err)
		// Spread the rows out so the ordering is deterministic.
		require.NoError(t, db.Model(&db_models.SpeedTest{}).
			Where("id = ?", result.ID).
			Update("created_at", gorm.Expr("created_at + ?", i*60)).Error)
	}

	results, err := service.ListRecent(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, results, 10)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].TestedDate, results[i].TestedDate)
	}
}
