// Package response renders every payload in the API's envelope:
// {"success": bool, "data": ..., "error": "..."}.
package response

import (
	"github.com/gin-gonic/gin"
)

type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

func RenderData(ctx *gin.Context, statusCode int, data interface{}) {
	ctx.JSON(statusCode, Envelope{
		Success: true,
		Data:    data,
	})
}
