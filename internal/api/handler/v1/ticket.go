package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/festiconf/billetterie-api/internal/api/handler/v1/request"
	"github.com/festiconf/billetterie-api/internal/api/handler/v1/response"
	"github.com/festiconf/billetterie-api/internal/api/middleware"
	"github.com/festiconf/billetterie-api/internal/domain"
	"github.com/festiconf/billetterie-api/internal/pkg/pricing"
	"github.com/festiconf/billetterie-api/internal/service"
)

type TicketService interface {
	Purchase(ctx context.Context, userID uint, requested domain.TicketType, holderName, holderEmail string, holderDateOfBirth *time.Time) (domain.Ticket, error)
	ListTickets(ctx context.Context, userID uint) ([]domain.Ticket, error)
	GetTicket(ctx context.Context, userID, id uint) (domain.Ticket, error)
	CancelTicket(ctx context.Context, userID, id uint) error
}

type TicketHandler struct {
	service TicketService
}

func NewTicketHandler(service TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

// HandleListTickets godoc
//
//	@Summary		List tickets
//	@Description	Returns the caller's tickets, newest first.
//	@Tags			tickets
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.Envelope{data=[]domain.Ticket}
//	@Failure		401	{object}	response.Err
//	@Router			/tickets [get]
func (h *TicketHandler) HandleListTickets(ctx *gin.Context) {
	tickets, err := h.service.ListTickets(ctx, middleware.UserID(ctx))
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.RenderData(ctx, http.StatusOK, tickets)
}

// HandlePurchaseTicket godoc
//
//	@Summary		Buy a ticket
//	@Description	Issues one ticket immediately, bypassing the cart.
//	@Tags			tickets
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		request.PurchaseTicketRequest	true	"ticket order"
//	@Success		201		{object}	response.Envelope{data=domain.Ticket}
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Router			/tickets [post]
func (h *TicketHandler) HandlePurchaseTicket(ctx *gin.Context) {
	var req request.PurchaseTicketRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	ticketType, err := domain.ParseTicketType(req.Type)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	ticket, err := h.service.Purchase(
		ctx,
		middleware.UserID(ctx),
		ticketType,
		req.Name,
		req.Email,
		req.DateOfBirthTime(),
	)
	if err != nil {
		if errors.Is(err, pricing.ErrPassCultureAge) || errors.Is(err, domain.ErrUnknownTicketType) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.RenderData(ctx, http.StatusCreated, ticket)
}

// HandleGetTicket godoc
//
//	@Summary		Get a ticket
//	@Description	Returns one of the caller's tickets.
//	@Tags			tickets
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"ticket ID"
//	@Success		200	{object}	response.Envelope{data=domain.Ticket}
//	@Failure		401	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Router			/tickets/{id} [get]
func (h *TicketHandler) HandleGetTicket(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	ticket, err := h.service.GetTicket(ctx, middleware.UserID(ctx), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.RenderData(ctx, http.StatusOK, ticket)
}

// HandleCancelTicket godoc
//
//	@Summary		Cancel a ticket
//	@Description	Deletes one of the caller's tickets.
//	@Tags			tickets
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"ticket ID"
//	@Success		200	{object}	response.Envelope
//	@Failure		401	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Router			/tickets/{id} [delete]
func (h *TicketHandler) HandleCancelTicket(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.service.CancelTicket(ctx, middleware.UserID(ctx), uint(id)); err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.RenderData(ctx, http.StatusOK, gin.H{"deleted": id})
}
