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

func newNotificationFixture(t *testing.T) (NotificationServiceInterface, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	service := NewNotificationService(
		repositories.NewNotificationRepository(db),
		repositories.NewAccountRepository(db),
	)
	return service, db
}

func TestBroadcastReachesAllCustomers(t *testing.T) {
	service, db := newNotificationFixture(t)
	ctx := context.Background()

	admin := seedAccount(t, db, "admin", "admin@example.com", db_models.RoleAdmin)
	seedAccount(t, db, "ann", "ann@example.com", db_models.RoleUser)
	seedAccount(t, db, "ben", "ben@example.com", db_models.RoleUser)
	seedAccount(t, db, "gone", "gone@example.com", db_models.RoleArchived)

	resp, err := service.Send(ctx, admin.ID, request_models.SendNotificationRequest{
		Title:      "Maintenance window",
		Message:    "Service will be down Sunday 2-4am",
		TargetType: string(db_models.TargetAll),
	})
	require.NoError(t, err)

	// Admins and archived accounts are not broadcast recipients.
	assert.Equal(t, 2, resp.SentCount)

	var rows int64
	require.NoError(t, db.Model(&db_models.Notification{}).Count(&rows).Error)
	assert.EqualValues(t, 2, rows)
}

func TestSendToSpecificRecipients(t *testing.T) {
	service, db := newNotificationFixture(t)
	ctx := context.Background()

	admin := seedAccount(t, db, "admin", "admin@example.com", db_models.RoleAdmin)
	target := seedAccount(t, db, "carl", "carl@example.com", db_models.RoleUser)
	seedAccount(t, db, "dora", "dora@example.com", db_models.RoleUser)

	resp, err := service.Send(ctx, admin.ID, request_models.SendNotificationRequest{
		Title:        "Payment overdue",
		Message:      "Your last bill is unpaid",
		Type:         "billing",
		TargetType:   string(db_models.TargetSpecific),
		RecipientIDs: []string{target.ID.String()},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SentCount)

	notifications, err := service.ListNotifications(ctx, target.ID, false)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "billing", notifications[0].Type)
}

func TestSendRejectsBadRecipientList(t *testing.T) {
	service, db := newNotificationFixture(t)
	ctx := context.Background()

	admin := seedAccount(t, db, "admin", "admin@example.com", db_models.RoleAdmin)

	_, err := service.Send(ctx, admin.ID, request_models.SendNotificationRequest{
		Title:      "Hello",
		Message:    "World",
		TargetType: string(db_models.TargetSpecific),
	})
	assert.ErrorIs(t, err, utils.ErrInvalidRecipients)

	_, err = service.Send(ctx, admin.ID, request_models.SendNotificationRequest{
		Title:        "Hello",
		Message:      "World",
		TargetType:   string(db_models.TargetSpecific),
		RecipientIDs: []string{"not-a-uuid"},
	})
	assert.ErrorIs(t, err, utils.ErrInvalidRecipients)
}

func TestMarkReadScopedToRecipient(t *testing.T) {
	service, db := newNotificationFixture(t)
	ctx := context.Background()

	admin := seedAccount(t, db, "admin", "admin@example.com", db_models.RoleAdmin)
	owner := seedAccount(t, db, "erin", "erin@example.com", db_models.RoleUser)
	other := seedAccount(t, db, "fred", "fred@example.com", db_models.RoleUser)

	_, err := service.Send(ctx, admin.ID, request_models.SendNotificationRequest{
		Title:        "For Erin",
		Message:      "Only Erin should read this",
		TargetType:   string(db_models.TargetSpecific),
		RecipientIDs: []string{owner.ID.String()},
	})
	require.NoError(t, err)

	notifications, err := service.ListNotifications(ctx, owner.ID, true)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	notificationID := notifications[0].ID

	// Someone else cannot mark it, and cannot learn it exists.
	err = service.MarkRead(ctx, other.ID, notificationID)
	assert.ErrorIs(t, err, utils.ErrNotificationNotFound)

	require.NoError(t, service.MarkRead(ctx, owner.ID, notificationID))

	count, err := service.UnreadCount(ctx, owner.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	unread, err := service.ListNotifications(ctx, owner.ID, true)
	require.NoError(t, err)
	assert.Empty(t, unread)
}

func TestMarkReadUnknownNotification(t *testing.T) {
	service, db := newNotificationFixture(t)
	ctx := context.Background()

	account := seedAccount(t, db, "gina", "gina@example.com", db_models.RoleUser)

	err := service.MarkRead(ctx, account.ID, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, utils.ErrNotificationNotFound)
}
