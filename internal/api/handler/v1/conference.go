package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/festiconf/billetterie-api/internal/api/handler/v1/request"
	"github.com/festiconf/billetterie-api/internal/api/handler/v1/response"
	"github.com/festiconf/billetterie-api/internal/api/middleware"
	"github.com/festiconf/billetterie-api/internal/domain"
)

const conferenceDayLayout = "2006-01-02"

type ConferenceService interface {
	CreateConference(ctx context.Context, conference domain.Conference) (domain.Conference, error)
	ListConferences(ctx context.Context, category string, day *time.Time, userID uint) ([]domain.Conference, error)
}

type ConferenceHandler struct {
	service ConferenceService
}

func NewConferenceHandler(service ConferenceService) *ConferenceHandler {
	return &ConferenceHandler{service: service}
}

// HandleListConferences godoc
//
//	@Summary		List conferences
//	@Description	Returns the programme, optionally filtered by category or day. Authenticated callers also see their registration status.
//	@Tags			conferences
//	@Produce		json
//	@Param			category	query		string	false	"category filter"
//	@Param			date		query		string	false	"day filter, YYYY-MM-DD"
//	@Success		200			{object}	response.Envelope{data=[]domain.Conference}
//	@Failure		400			{object}	response.Err
//	@Router			/conferences [get]
func (h *ConferenceHandler) HandleListConferences(ctx *gin.Context) {
	var day *time.Time
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse(conferenceDayLayout, raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		day = &parsed
	}

	conferences, err := h.service.ListConferences(ctx, ctx.Query("category"), day, middleware.UserID(ctx))
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.RenderData(ctx, http.StatusOK, conferences)
}

// HandleCreateConference godoc
//
//	@Summary		Create a conference
//	@Description	Adds a conference to the programme. Admin only.
//	@Tags			conferences
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		request.CreateConferenceRequest	true	"conference"
//	@Success		201		{object}	response.Envelope{data=domain.Conference}
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Failure		403		{object}	response.Err
//	@Router			/conferences [post]
func (h *ConferenceHandler) HandleCreateConference(ctx *gin.Context) {
	if middleware.UserRole(ctx) != domain.RoleAdmin {
		response.RenderErr(ctx, response.ErrAdminOnly())

		return
	}

	var req request.CreateConferenceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	conference, err := h.service.CreateConference(ctx, domain.Conference{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.DateTime(),
		Location:    req.Location,
		Capacity:    req.Capacity,
		Category:    req.Category,
	})
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.RenderData(ctx, http.StatusCreated, conference)
}
