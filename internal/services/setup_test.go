package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"comnet/internal/infra"
	"comnet/internal/models/db_models"
	"comnet/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	return db
}

func seedAccount(t *testing.T, db *gorm.DB, username, email, role string) *db_models.Account {
	t.Helper()

	hash, err := utils.HashPassword("hunter22")
	require.NoError(t, err)

	account := &db_models.Account{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Name:         username,
		Email:        email,
		ReferralCode: utils.GenerateReferralCode(),
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

func seedPlan(t *testing.T, db *gorm.DB, name, price string, validityDays int) *db_models.Plan {
	t.Helper()

	plan := &db_models.Plan{
		Name:         name,
		DownloadMbps: 100,
		UploadMbps:   20,
		DataLimitGB:  500,
		Price:        decimal.RequireFromString(price),
		ValidityDays: validityDays,
		Tier:         db_models.TierStandard,
		Features:     datatypes.JSON(`["router included"]`),
	}
	require.NoError(t, db.Create(plan).Error)
	return plan
}

// mailRecorder stands in for the SMTP service so tests can observe what
// would have been sent.
type mailRecorder struct {
	invites     []string
	resetTokens map[string]string
}

func newMailRecorder() *mailRecorder {
	return &mailRecorder{resetTokens: map[string]string{}}
}

func (m *mailRecorder) SendReferralInvite(to, referrerName, referralCode string) error {
	m.invites = append(m.invites, to)
	return nil
}

func (m *mailRecorder) SendMailToResetPassword(email, token string) error {
	m.resetTokens[email] = token
	return nil
}
