package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/festiconf/billetterie-api/internal/api/handler/v1/request"
	"github.com/festiconf/billetterie-api/internal/api/handler/v1/response"
	"github.com/festiconf/billetterie-api/internal/api/middleware"
	"github.com/festiconf/billetterie-api/internal/domain"
	"github.com/festiconf/billetterie-api/internal/pkg/jwthelper"
	"github.com/festiconf/billetterie-api/internal/service"
)

const (
	tokenCookieName   = "token"
	tokenCookieMaxAge = int(7 * 24 * time.Hour / time.Second)
)

type AuthService interface {
	Signup(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
}

type AuthUserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

type AuthHandler struct {
	authService AuthService
	userService AuthUserService
	signingKey  []byte
}

func NewAuthHandler(authService AuthService, userService AuthUserService, signingKey string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		signingKey:  []byte(signingKey),
	}
}

// HandleSignup godoc
//
//	@Summary		Sign up
//	@Description	Creates an account and opens a session.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.SignupRequest	true	"signup form"
//	@Success		201		{object}	response.Envelope{data=response.LoginResponse}
//	@Failure		400		{object}	response.Err
//	@Failure		409		{object}	response.Err
//	@Router			/auth/signup [post]
func (h *AuthHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.authService.Signup(ctx, domain.User{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		DateOfBirth: req.DateOfBirthTime(),
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(err))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	h.openSession(ctx, http.StatusCreated, user)
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Verifies credentials and opens a session.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.LoginRequest	true	"credentials"
//	@Success		200		{object}	response.Envelope{data=response.LoginResponse}
//	@Failure		400		{object}	response.Err
//	@Failure		401		{object}	response.Err
//	@Router			/auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	h.openSession(ctx, http.StatusOK, user)
}

// HandleGetMe godoc
//
//	@Summary		Current user
//	@Description	Returns the account behind the session token.
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	response.Envelope{data=domain.User}
//	@Failure		401	{object}	response.Err
//	@Failure		404	{object}	response.Err
//	@Router			/auth/me [get]
func (h *AuthHandler) HandleGetMe(ctx *gin.Context) {
	user, err := h.userService.GetUser(ctx, middleware.UserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	response.RenderData(ctx, http.StatusOK, user)
}

func (h *AuthHandler) openSession(ctx *gin.Context, statusCode int, user domain.User) {
	token, err := jwthelper.GenerateToken(h.signingKey, user.ID, user.Email, user.Role)
	if err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.SetCookie(tokenCookieName, token, tokenCookieMaxAge, "/", "", false, true)
	response.RenderData(ctx, statusCode, response.LoginResponse{Token: token, User: user})
}
