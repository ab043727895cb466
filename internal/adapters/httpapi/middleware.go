package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carbonx/internal/ports/output"
)

// AdminGate grants access when the pw query parameter equals the shared
// admin password. Plain string comparison, no session, no rate limit — a
// documented weak control kept from the original site; failure is a
// re-prompt, not a hard fault.
func AdminGate(password string, translator output.Translator, defaultLocale string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("pw") != password {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error: translator.T(requestLocale(c, defaultLocale), "errors.access_denied", nil),
			})
			return
		}
		c.Next()
	}
}
