package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/festiconf/billetterie-api/internal/api/handler/v1/response"
	"github.com/festiconf/billetterie-api/internal/api/middleware"
	"github.com/festiconf/billetterie-api/internal/domain"
)

type AdminService interface {
	GetDashboardStats(ctx context.Context) (domain.DashboardStats, error)
}

type AdminHandler struct {
	service AdminService
}

func NewAdminHandler(service AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// HandleGetStats godoc
//
//	@Summary		Dashboard stats
//	@Description	Aggregated sales and attendance figures. Admin only.
//	@Tags			admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.Envelope{data=domain.DashboardStats}
//	@Failure		401	{object}	response.Err
//	@Failure		403	{object}	response.Err
//	@Router			/admin/stats [get]
func (h *AdminHandler) HandleGetStats(ctx *gin.Context) {
	if middleware.UserRole(ctx) != domain.RoleAdmin {
		response.RenderErr(ctx, response.ErrAdminOnly())

		return
	}

	stats, err := h.service.GetDashboardStats(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.RenderData(ctx, http.StatusOK, stats)
}
