package http

import (
	"github.com/gin-gonic/gin"

	"github.com/minhvu/blogspace/pkg/auth"
)

// IdentityMiddleware is the context builder: it decodes the Authorization
// header once per request, before any resolver runs. Decoding fails open, so
// a missing or invalid token leaves the request unauthenticated instead of
// rejecting it; the flows decide what unauthenticated callers may do.
func IdentityMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := jwtSvc.DecodeHeader(c.GetHeader("Authorization"))
		if identity != nil {
			ctx := auth.WithIdentity(c.Request.Context(), identity)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}
