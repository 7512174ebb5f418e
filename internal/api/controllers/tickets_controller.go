package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comnet/internal/models/request_models"
	"comnet/internal/services"
	"comnet/pkg/utils"
)

type TicketsController struct {
	ticketService services.TicketServiceInterface
}

func NewTicketsController(ticketService services.TicketServiceInterface) *TicketsController {
	return &TicketsController{
		ticketService: ticketService,
	}
}

// SubmitTicket godoc
// @Summary Submit a support ticket
// @Description Open a support ticket for the authenticated account
// @Tags Tickets
// @Accept json
// @Produce json
// @Param request body request_models.SubmitTicketRequest true "Ticket payload"
// @Success 200 {object} response_models.TicketResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tickets [post]
func (t *TicketsController) SubmitTicket(c *gin.Context) {
	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	var req request_models.SubmitTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Subject and description are required")
		return
	}

	ticket, err := t.ticketService.SubmitTicket(c.Request.Context(), accountID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ticket, "Ticket submitted successfully")
}

// ListMyTickets godoc
// @Summary List my tickets
// @Description Fetch the authenticated account's tickets, newest first
// @Tags Tickets
// @Accept json
// @Produce json
// @Success 200 {array} response_models.TicketResponse
// @Security BearerAuth
// @Router /tickets [get]
func (t *TicketsController) ListMyTickets(c *gin.Context) {
	accountID, ok := authenticatedAccountID(c)
	if !ok {
		return
	}

	tickets, err := t.ticketService.ListMyTickets(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tickets, "Tickets fetched successfully")
}

// ListAllTickets godoc
// @Summary List all tickets
// @Description Fetch the full support queue with account details (admin only)
// @Tags Tickets
// @Accept json
// @Produce json
// @Success 200 {array} response_models.TicketResponse
// @Security BearerAuth
// @Router /tickets/all [get]
func (t *TicketsController) ListAllTickets(c *gin.Context) {
	tickets, err := t.ticketService.ListAllTickets(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tickets, "Tickets fetched successfully")
}

// UpdateTicketStatus godoc
// @Summary Update ticket status
// @Description Move a ticket through the support workflow (admin only)
// @Tags Tickets
// @Accept json
// @Produce json
// @Param ticketId path string true "Ticket ID"
// @Param request body request_models.UpdateTicketStatusRequest true "Status payload"
// @Success 200 {object} response_models.TicketResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /tickets/{ticketId}/status [post]
func (t *TicketsController) UpdateTicketStatus(c *gin.Context) {
	ticketID := c.Param("ticketId")

	var req request_models.UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A valid status is required")
		return
	}

	ticket, err := t.ticketService.UpdateTicketStatus(c.Request.Context(), ticketID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ticket, "Ticket updated successfully")
}
