package middleware

import (
	"net/http"

	"estateconnect/models"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware gates admin routes on the role resolved by
// JWTAuthUserMiddleware, which must run earlier in the chain.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("userRole")
		if !exists || role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
