package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	HTTPStatusCode int    `json:"-"`
	Success        bool   `json:"success"`
	ErrorMsg       string `json:"error"`
}

func (e *Err) Error() string {
	return e.ErrorMsg
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.HTTPStatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		ErrorMsg:       err.Error(),
	}
}

func ErrUnauthorized() *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		ErrorMsg:       "authentication required",
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		ErrorMsg:       err.Error(),
	}
}

func ErrForbidden(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusForbidden,
		ErrorMsg:       err.Error(),
	}
}

func ErrNotFound(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		ErrorMsg:       err.Error(),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusConflict,
		ErrorMsg:       err.Error(),
	}
}

// ErrInternalServerError logs the full failure server side and hands the
// caller a generic message only.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		HTTPStatusCode: http.StatusInternalServerError,
		ErrorMsg:       "internal server error",
	}
}

var errAccessDenied = errors.New("access denied")

// ErrAdminOnly is rendered when a non-admin reaches an admin surface.
func ErrAdminOnly() *Err {
	return ErrForbidden(errAccessDenied)
}
