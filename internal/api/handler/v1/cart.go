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
	"github.com/festiconf/billetterie-api/internal/service"
)

type CartService interface {
	GetCart(ctx context.Context, userID uint) (domain.Cart, error)
	AddItem(ctx context.Context, userID uint, requested domain.TicketType, name, email string, dateOfBirth time.Time) (domain.CartItem, error)
	RemoveItem(ctx context.Context, userID, itemID uint) error
	Clear(ctx context.Context, userID uint) error
	Confirm(ctx context.Context, userID uint) ([]domain.Ticket, error)
}

type CartHandler struct {
	service CartService
}

func NewCartHandler(service CartService) *CartHandler {
	return &CartHandler{service: service}
}

// HandleGetCart godoc
//
//	@Summary		Get cart
//	@Description	Returns the caller's cart, creating an empty one on first access.
//	@Tags			cart
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.Envelope{data=domain.Cart}
//	@Failure		401	{object}	response.Err
//	@Router			/cart [get]
func (h *CartHandler) HandleGetCart(ctx *gin.Context) {
	cart, err := h.service.GetCart(ctx, middleware.UserID(ctx))
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.RenderData(ctx, http.StatusOK, cart)
}

// HandleAddItem godoc
//
//	@Summary		Add a cart item
//	@Description	Validates eligibility for the participant and adds one ticket intent to the cart.
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		request.AddCartItemRequest	true	"ticket intent"
//	@Success		201		{object}	response.Envelope{data=domain.CartItem}
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Router			/cart/items [post]
func (h *CartHandler) HandleAddItem(ctx *gin.Context) {
	var req request.AddCartItemRequest
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

	item, err := h.service.AddItem(
		ctx,
		middleware.UserID(ctx),
		ticketType,
		req.Name,
		req.Email,
		req.DateOfBirthTime(),
	)
	if err != nil {
		if errors.Is(err, service.ErrPassCultureAge) || errors.Is(err, domain.ErrUnknownTicketType) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.RenderData(ctx, http.StatusCreated, item)
}

// HandleRemoveItem godoc
//
//	@Summary		Remove a cart item
//	@Description	Removes one item from the caller's cart.
//	@Tags			cart
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"cart item ID"
//	@Success		200	{object}	response.Envelope
//	@Failure		401	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Router			/cart/items/{id} [delete]
func (h *CartHandler) HandleRemoveItem(ctx *gin.Context) {
	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.service.RemoveItem(ctx, middleware.UserID(ctx), uint(itemID)); err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.RenderData(ctx, http.StatusOK, gin.H{"deleted": itemID})
}

// HandleClearCart godoc
//
//	@Summary		Clear cart
//	@Description	Deletes the caller's cart and everything in it.
//	@Tags			cart
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.Envelope
//	@Failure		401	{object}	response.Err
//	@Router			/cart [delete]
func (h *CartHandler) HandleClearCart(ctx *gin.Context) {
	if err := h.service.Clear(ctx, middleware.UserID(ctx)); err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.RenderData(ctx, http.StatusOK, gin.H{"cleared": true})
}

// HandleConfirmCart godoc
//
//	@Summary		Confirm cart
//	@Description	Atomically converts every cart item into a ticket and empties the cart.
//	@Tags			cart
//	@Produce		json
//	@Security		BearerAuth
//	@Success		201	{object}	response.Envelope{data=[]domain.Ticket}
//	@Failure		400	{object}	response.Err
//	@Failure		401	{object}	response.Err
//	@Router			/cart/confirm [post]
func (h *CartHandler) HandleConfirmCart(ctx *gin.Context) {
	tickets, err := h.service.Confirm(ctx, middleware.UserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrCartEmpty) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.RenderData(ctx, http.StatusCreated, tickets)
}
