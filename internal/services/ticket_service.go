package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"comnet/internal/models/db_models"
	"comnet/internal/models/request_models"
	"comnet/internal/models/response_models"
	"comnet/internal/repositories"
	"comnet/pkg/utils"
)

type TicketServiceInterface interface {
	SubmitTicket(ctx context.Context, accountID uuid.UUID, req request_models.SubmitTicketRequest) (response_models.TicketResponse, error)
	ListMyTickets(ctx context.Context, accountID uuid.UUID) ([]response_models.TicketResponse, error)
	ListAllTickets(ctx context.Context) ([]response_models.TicketResponse, error)
	UpdateTicketStatus(ctx context.Context, ticketID string, req request_models.UpdateTicketStatusRequest) (response_models.TicketResponse, error)
}

type TicketService struct {
	ticketRepo repositories.ITicketRepository
}

func NewTicketService(ticketRepo repositories.ITicketRepository) TicketServiceInterface {
	return &TicketService{ticketRepo: ticketRepo}
}

func (t *TicketService) SubmitTicket(ctx context.Context, accountID uuid.UUID, req request_models.SubmitTicketRequest) (response_models.TicketResponse, error) {

	subject := strings.TrimSpace(req.Subject)
	description := strings.TrimSpace(req.Description)
	if subject == "" || description == "" {
		return response_models.TicketResponse{}, utils.ErrInvalidTicketDetails
	}

	category := req.Category
	if category == "" {
		category = "other"
	}
	priority := req.Priority
	if priority == "" {
		priority = "low"
	}

	ticket := &db_models.Ticket{
		AccountID:   accountID,
		Subject:     subject,
		Description: description,
		Category:    category,
		Priority:    priority,
		Status:      db_models.TicketStatusOpen,
	}

	if err := t.ticketRepo.CreateTicket(ctx, ticket); err != nil {
		return response_models.TicketResponse{}, utils.ErrDatabaseError
	}

	return toTicketResponse(ticket, false), nil
}

func (t *TicketService) ListMyTickets(ctx context.Context, accountID uuid.UUID) ([]response_models.TicketResponse, error) {

	tickets, err := t.ticketRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TicketResponse, 0, len(tickets))
	for i := range tickets {
		responses = append(responses, toTicketResponse(&tickets[i], false))
	}

	return responses, nil
}

func (t *TicketService) ListAllTickets(ctx context.Context) ([]response_models.TicketResponse, error) {

	tickets, err := t.ticketRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TicketResponse, 0, len(tickets))
	for i := range tickets {
		responses = append(responses, toTicketResponse(&tickets[i], true))
	}

	return responses, nil
}

func (t *TicketService) UpdateTicketStatus(ctx context.Context, ticketID string, req request_models.UpdateTicketStatusRequest) (response_models.TicketResponse, error) {

	ticket, err := t.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return response_models.TicketResponse{}, utils.ErrDatabaseError
	}
	if ticket == nil {
		return response_models.TicketResponse{}, utils.ErrTicketNotFound
	}

	status := db_models.TicketStatus(req.Status)

	// ResolvedAt tracks the resolved state exactly; moving a resolved
	// ticket back to any other status clears it.
	var resolvedAt *int64
	if status == db_models.TicketStatusResolved {
		now := utils.NowUnixSeconds()
		resolvedAt = &now
	}

	if err := t.ticketRepo.UpdateStatus(ctx, ticketID, status, resolvedAt); err != nil {
		return response_models.TicketResponse{}, utils.ErrDatabaseError
	}

	ticket.Status = status
	ticket.ResolvedAt = resolvedAt

	return toTicketResponse(ticket, false), nil
}

func toTicketResponse(ticket *db_models.Ticket, withAccount bool) response_models.TicketResponse {
	resp := response_models.TicketResponse{
		ID:          ticket.ID.String(),
		Subject:     ticket.Subject,
		Description: ticket.Description,
		Category:    ticket.Category,
		Priority:    ticket.Priority,
		Status:      string(ticket.Status),
		CreatedDate: time.Unix(ticket.CreatedAt, 0).UTC().Format(time.RFC3339),
	}
	if ticket.ResolvedAt != nil {
		resp.ResolvedDate = time.Unix(*ticket.ResolvedAt, 0).UTC().Format(time.RFC3339)
	}
	if withAccount {
		resp.Username = ticket.Account.Username
		resp.Email = ticket.Account.Email
	}
	return resp
}
