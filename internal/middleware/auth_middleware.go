package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ndthang/quizhub/internal/auth"
	"github.com/ndthang/quizhub/internal/dto"
	"github.com/ndthang/quizhub/internal/model"
	"github.com/rs/zerolog/log"
)

// Principal identifies the authenticated caller for the duration of a request.
type Principal struct {
	ID   uint
	Name string
	Role string
}

const principalKey = "principal"

// AuthMiddleware authenticates requests from the session cookie and exposes a
// typed Principal to downstream handlers.
type AuthMiddleware struct {
	tokens *auth.TokenService
}

func NewAuthMiddleware(tokens *auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth rejects requests without a valid session cookie and stores the
// caller's Principal in the gin context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(auth.SessionCookieName)
		if err != nil || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
			return
		}

		claims, err := m.tokens.Parse(token)
		if err != nil {
			log.Debug().Err(err).Msg("RequireAuth: invalid session token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired session"})
			return
		}

		ctx.Set(principalKey, Principal{ID: claims.UserID, Name: claims.Name, Role: claims.Role})
		ctx.Next()
	}
}

// AdminOnly gates a route group on the admin role. Must run after RequireAuth.
func (m *AuthMiddleware) AdminOnly() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		principal, ok := GetPrincipal(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
			return
		}
		if principal.Role != model.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Admin access required"})
			return
		}
		ctx.Next()
	}
}

// GetPrincipal returns the Principal stored by RequireAuth.
func GetPrincipal(ctx *gin.Context) (Principal, bool) {
	value, exists := ctx.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	principal, ok := value.(Principal)
	return principal, ok
}
