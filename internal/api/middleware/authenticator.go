package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/festiconf/billetterie-api/internal/api/handler/v1/response"
	"github.com/festiconf/billetterie-api/internal/pkg/jwthelper"
)

// Context keys set for downstream handlers once a token has been verified.
const (
	ContextKeyUserID    = "userID"
	ContextKeyUserEmail = "userEmail"
	ContextKeyUserRole  = "userRole"
)

const tokenCookieName = "token"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{signingKey: []byte(signingKey)}
}

// VerifyJWT aborts with 401 unless the request carries a valid token, either
// in the session cookie or as an Authorization bearer header.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := a.parseRequestToken(ctx)
		if !ok {
			response.RenderErr(ctx, response.ErrUnauthorized())

			return
		}

		ctx.Set(ContextKeyUserID, claims.UserID)
		ctx.Set(ContextKeyUserEmail, claims.Email)
		ctx.Set(ContextKeyUserRole, claims.Role)
		ctx.Next()
	}
}

// OptionalJWT sets the user context keys when a valid token is present but
// lets anonymous requests through untouched.
func (a *Authenticator) OptionalJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if claims, ok := a.parseRequestToken(ctx); ok {
			ctx.Set(ContextKeyUserID, claims.UserID)
			ctx.Set(ContextKeyUserEmail, claims.Email)
			ctx.Set(ContextKeyUserRole, claims.Role)
		}

		ctx.Next()
	}
}

func (a *Authenticator) parseRequestToken(ctx *gin.Context) (*jwthelper.Claims, bool) {
	tokenString, err := ctx.Cookie(tokenCookieName)
	if err != nil || tokenString == "" {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return nil, false
		}

		tokenString = strings.TrimPrefix(header, "Bearer ")
	}

	claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
	if err != nil {
		return nil, false
	}

	return claims, true
}

// UserID reads the authenticated user's ID from the request context.
// It returns zero for anonymous requests.
func UserID(ctx *gin.Context) uint {
	id, ok := ctx.Get(ContextKeyUserID)
	if !ok {
		return 0
	}

	userID, ok := id.(uint)
	if !ok {
		return 0
	}

	return userID
}

// UserRole reads the authenticated user's role from the request context.
func UserRole(ctx *gin.Context) string {
	return ctx.GetString(ContextKeyUserRole)
}
