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

func newTicketFixture(t *testing.T) (TicketServiceInterface, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	service := NewTicketService(repositories.NewTicketRepository(db))
	return service, db
}

func TestSubmitTicketDefaultsAndValidation(t *testing.T) {
	service, db := newTicketFixture(t)
	ctx := context.Background()

	account := seedAccount(t, db, "rosa", "rosa@example.com", db_models.RoleUser)

	resp, err := service.SubmitTicket(ctx, account.ID, request_models.SubmitTicketRequest{
		Subject:     "No connection since Tuesday",
		Description: "The ONT keeps blinking red.",
	})
	require.NoError(t, err)
	assert.Equal(t, "other", resp.Category)
	assert.Equal(t, "low", resp.Priority)
	assert.Equal(t, string(db_models.TicketStatusOpen), resp.Status)
	assert.Empty(t, resp.ResolvedDate)

	_, err = service.SubmitTicket(ctx, account.ID, request_models.SubmitTicketRequest{
		Subject:     "   ",
		Description: "whitespace subject",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidTicketDetails)
}

func TestListMyTicketsScopedAndNewestFirst(t *testing.T) {
	service, db := newTicketFixture(t)
	ctx := context.Background()

	mine := seedAccount(t, db, "sam", "sam@example.com", db_models.RoleUser)
	other := seedAccount(t, db, "tess", "tess@example.com", db_models.RoleUser)

	first, err := service.SubmitTicket(ctx, mine.ID, request_models.SubmitTicketRequest{
		Subject: "Slow evenings", Description: "Speed drops after 8pm.", Category: "technical",
	})
	require.NoError(t, err)
	require.NoError(t, db.Model(&db_models.Ticket{}).
		Where("id = ?", first.ID).
		Update("created_at", gorm.Expr("created_at - 3600")).Error)

	_, err = service.SubmitTicket(ctx, mine.ID, request_models.SubmitTicketRequest{
		Subject: "Double charge", Description: "Billed twice this month.", Category: "billing", Priority: "high",
	})
	require.NoError(t, err)

	_, err = service.SubmitTicket(ctx, other.ID, request_models.SubmitTicketRequest{
		Subject: "Router swap", Description: "Need a new router.", Category: "service",
	})
	require.NoError(t, err)

	tickets, err := service.ListMyTickets(ctx, mine.ID)
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "Double charge", tickets[0].Subject)
	assert.Equal(t, "Slow evenings", tickets[1].Subject)
}

func TestListAllTicketsIncludesAccountDetails(t *testing.T) {
	service, db := newTicketFixture(t)
	ctx := context.Background()

	account := seedAccount(t, db, "uma", "uma@example.com", db_models.RoleUser)

	_, err := service.SubmitTicket(ctx, account.ID, request_models.SubmitTicketRequest{
		Subject: "Static IP request", Description: "Need a static IP for a camera.",
	})
	require.NoError(t, err)

	tickets, err := service.ListAllTickets(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "uma", tickets[0].Username)
	assert.Equal(t, "uma@example.com", tickets[0].Email)
}

func TestUpdateTicketStatusTracksResolvedAt(t *testing.T) {
	service, db := newTicketFixture(t)
	ctx := context.Background()

	account := seedAccount(t, db, "vik", "vik@example.com", db_models.RoleUser)

	submitted, err := service.SubmitTicket(ctx, account.ID, request_models.SubmitTicketRequest{
		Subject: "Line drops", Description: "Connection drops every hour.", Priority: "medium",
	})
	require.NoError(t, err)

	resolved, err := service.UpdateTicketStatus(ctx, submitted.ID, request_models.UpdateTicketStatusRequest{Status: "resolved"})
	require.NoError(t, err)
	assert.Equal(t, string(db_models.TicketStatusResolved), resolved.Status)
	assert.NotEmpty(t, resolved.ResolvedDate)

	// Reopening clears the resolution timestamp.
	reopened, err := service.UpdateTicketStatus(ctx, submitted.ID, request_models.UpdateTicketStatusRequest{Status: "in_progress"})
	require.NoError(t, err)
	assert.Empty(t, reopened.ResolvedDate)

	var stored db_models.Ticket
	require.NoError(t, db.First(&stored, "id = ?", submitted.ID).Error)
	assert.Nil(t, stored.ResolvedAt)

	_, err = service.UpdateTicketStatus(ctx, "2c4a1f1e-0000-0000-0000-000000000000", request_models.UpdateTicketStatusRequest{Status: "closed"})
	assert.ErrorIs(t, err, utils.ErrTicketNotFound)
}
