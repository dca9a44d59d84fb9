package middleware

import (
	"crypto/subtle"
	"net/http"
	"rental_portal/pkg"

	"github.com/gin-gonic/gin"
)

var errCronUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)

// CronAuth checks the shared scheduler secret. With no secret configured the
// endpoints are open.
func CronAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}
		token, ok := BearerToken(c.GetHeader("Authorization"))
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(errCronUnauthorized.HTTPStatus, errCronUnauthorized.ToHTTPError())
			return
		}
		c.Next()
	}
}
