// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	userRepo "estateconnect/database/repository/user"
	"estateconnect/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthUserMiddleware protects routes that require a signed-in user. The
// token must validate and its hash must match the one stored on the account,
// so sign-out revokes access immediately.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		rec, err := repo.GetByTokenHash(computedHash)
		if err != nil || rec == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
			return
		}

		c.Set("userID", rec.ID)
		c.Set("userRole", rec.Role)
		c.Next()
	}
}
