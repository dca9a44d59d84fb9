package middleware

import (
	"net/http"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName holds the signed tenant session token.
	CookieName = "tenant_session"

	LoginPath          = "/tenant-login"
	ChangePasscodePath = "/tenant/settings/change-passcode"

	sessionKey = "tenant_session"
)

// TenantGuard admits only requests carrying a valid tenant session. Anything
// else is redirected to the login page, and a tenant who still has to rotate
// the issued passcode is sent to the change-passcode page from every other
// tenant route.
func TenantGuard(auth usecase.ITenantAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil || strings.TrimSpace(token) == "" {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		session := auth.Verify(c.Request.Context(), token)
		if session == nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		if session.MustChangePass && c.Request.URL.Path != ChangePasscodePath {
			c.Redirect(http.StatusFound, ChangePasscodePath)
			c.Abort()
			return
		}

		c.Set(sessionKey, *session)
		c.Next()
	}
}

// SessionFrom returns the session TenantGuard stored on the context.
func SessionFrom(c *gin.Context) (entities.TenantSession, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return entities.TenantSession{}, false
	}
	s, ok := v.(entities.TenantSession)
	return s, ok
}
