package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/festiconf/billetterie-api/internal/api/handler/v1/response"
)

// HandleHealthcheck godoc
//
//	@Summary		Healthcheck
//	@Description	Reports whether the API is up.
//	@Tags			healthcheck
//	@Produce		json
//	@Success		200	{object}	response.Envelope
//	@Router			/ [get]
func HandleHealthcheck(ctx *gin.Context) {
	response.RenderData(ctx, http.StatusOK, gin.H{"status": "ok"})
}
