package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tidewater-lab/site-backend/internal/auth"
)

// RequireAdmin gates mutating routes behind a valid session cookie. A
// missing cookie or a token that fails verification aborts with 401; the
// response never distinguishes the cause.
func RequireAdmin(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "Unauthorized"})
			return
		}

		claims, err := gate.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "Unauthorized"})
			return
		}

		c.Set("admin_email", claims.Email)
		c.Next()
	}
}
