package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/param211/corpmart/internal/identity"
	obscontext "github.com/param211/corpmart/internal/observability/context"
)

const authScheme = "Token"

func tokenFromHeader(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], authScheme) {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// TokenAuthRequired rejects requests without a valid token and stores the
// resolved identity on the request context.
func (s *Server) TokenAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := tokenFromHeader(c)
		if key == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		caller, err := s.userSvc.Authenticate(c.Request.Context(), key)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		ctx := identity.WithIdentity(c.Request.Context(), caller)
		ctx = obscontext.WithUserID(ctx, caller.UserID.String())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// TokenAuthOptional resolves an identity when a valid token is present and
// lets anonymous requests through untouched. A malformed or unknown token is
// treated as anonymous rather than rejected.
func (s *Server) TokenAuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := tokenFromHeader(c)
		if key == "" {
			c.Next()
			return
		}

		caller, err := s.userSvc.Authenticate(c.Request.Context(), key)
		if err != nil {
			c.Next()
			return
		}

		ctx := identity.WithIdentity(c.Request.Context(), caller)
		ctx = obscontext.WithUserID(ctx, caller.UserID.String())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (s *Server) StaffRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := identity.FromContext(c.Request.Context())
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		if !caller.Staff {
			AbortWithError(c, ErrForbidden)
			return
		}
		c.Next()
	}
}
