package middlewares

import (
	"net/http"

	"github.com/nantel10/code-baba/models"
	"github.com/nantel10/code-baba/services"

	"github.com/gin-gonic/gin"
)

// AdminRequired gates roster-management routes on the x-admin-code
// header. The group code is not enough here.
func AdminRequired(identity *services.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.GetHeader("x-admin-code")
		tier, ok := identity.Verify(code)
		if !ok || tier != models.TierAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin code required"})
			return
		}
		c.Next()
	}
}
