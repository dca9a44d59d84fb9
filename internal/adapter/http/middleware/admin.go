package middleware

import (
	"net/http"
	"rental_portal/internal/domain/entities"
	"rental_portal/internal/usecase/interfaces"
	"rental_portal/pkg"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const adminKey = "admin_identity"

var errAdminUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Admin authentication required", http.StatusUnauthorized)

// AdminAuth requires a bearer token the identity provider vouches for.
func AdminAuth(identity interfaces.IAdminIdentity, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errAdminUnauthorized.HTTPStatus, errAdminUnauthorized.ToHTTPError())
			return
		}

		admin, err := identity.CurrentAdmin(c.Request.Context(), token)
		if err != nil {
			logger.Error("[admin][middleware] identity lookup failed", zap.Error(err))
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if admin == nil {
			c.AbortWithStatusJSON(errAdminUnauthorized.HTTPStatus, errAdminUnauthorized.ToHTTPError())
			return
		}

		c.Set(adminKey, *admin)
		c.Next()
	}
}

func AdminFrom(c *gin.Context) (entities.AdminIdentity, bool) {
	v, ok := c.Get(adminKey)
	if !ok {
		return entities.AdminIdentity{}, false
	}
	a, ok := v.(entities.AdminIdentity)
	return a, ok
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
