package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/festiconf/billetterie-api/internal/api/handler/v1/request"
	"github.com/festiconf/billetterie-api/internal/api/handler/v1/response"
	"github.com/festiconf/billetterie-api/internal/api/middleware"
	"github.com/festiconf/billetterie-api/internal/domain"
	"github.com/festiconf/billetterie-api/internal/service"
)

type PlanningService interface {
	ListEntries(ctx context.Context, userID uint) ([]domain.PlanningEntry, error)
	Register(ctx context.Context, userID, conferenceID uint) (domain.PlanningEntry, error)
	Unregister(ctx context.Context, userID, entryID uint) error
}

type PlanningHandler struct {
	service PlanningService
}

func NewPlanningHandler(service PlanningService) *PlanningHandler {
	return &PlanningHandler{service: service}
}

// HandleListPlanning godoc
//
//	@Summary		List planning
//	@Description	Returns the caller's conference registrations in programme order. Requires at least one ticket.
//	@Tags			planning
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.Envelope{data=[]domain.PlanningEntry}
//	@Failure		401	{object}	response.Err
//	@Failure		403	{object}	response.Err
//	@Router			/planning [get]
func (h *PlanningHandler) HandleListPlanning(ctx *gin.Context) {
	entries, err := h.service.ListEntries(ctx, middleware.UserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrNoTicket) {
			response.RenderErr(ctx, response.ErrForbidden(err))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.RenderData(ctx, http.StatusOK, entries)
}

// HandleRegister godoc
//
//	@Summary		Register for a conference
//	@Description	Adds a capacity-checked registration to the caller's planning. Requires at least one ticket.
//	@Tags			planning
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		request.RegisterPlanningRequest	true	"registration"
//	@Success		201		{object}	response.Envelope{data=domain.PlanningEntry}
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		403		{object}	response.Err
//	@Failure		404		{object}	response.Err
//	@Failure		409		{object}	response.Err
//	@Router			/planning [post]
func (h *PlanningHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterPlanningRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	entry, err := h.service.Register(ctx, middleware.UserID(ctx), req.ConferenceID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoTicket):
			response.RenderErr(ctx, response.ErrForbidden(err))
		case errors.Is(err, service.ErrConferenceNotFound):
			response.RenderErr(ctx, response.ErrNotFound(err))
		case errors.Is(err, service.ErrConferenceFull), errors.Is(err, service.ErrAlreadyRegistered):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	response.RenderData(ctx, http.StatusCreated, entry)
}

// HandleUnregister godoc
//
//	@Summary		Unregister from a conference
//	@Description	Removes one of the caller's planning entries.
//	@Tags			planning
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"planning entry ID"
//	@Success		200	{object}	response.Envelope
//	@Failure		401	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Router			/planning/{id} [delete]
func (h *PlanningHandler) HandleUnregister(ctx *gin.Context) {
	entryID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.service.Unregister(ctx, middleware.UserID(ctx), uint(entryID)); err != nil {
		if errors.Is(err, service.ErrPlanningEntryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.RenderData(ctx, http.StatusOK, gin.H{"deleted": entryID})
}
