package http

import "github.com/gin-gonic/gin"

// Register attaches the auth routes. The login limiter only guards login;
// logout is always allowed.
func (h *Handler) Register(rg *gin.RouterGroup, loginLimiter gin.HandlerFunc) {
	rg.POST("/login", loginLimiter, h.login)
	rg.POST("/logout", h.logout)
}
