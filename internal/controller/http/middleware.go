package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/campus-portal/internal/model"
)

const identityKey = "identity"

// RequireAuth resolves the bearer token to an identity and aborts with 401
// when it cannot. Handlers behind it can rely on identityFrom succeeding.
func (a *API) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		identity, err := a.users.Authenticate(c.Request.Context(), token)
		if err != nil {
			a.respondError(c, err)
			c.Abort()
			return
		}
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set(identityKey, *identity)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func identityFrom(c *gin.Context) model.Identity {
	return c.MustGet(identityKey).(model.Identity)
}
