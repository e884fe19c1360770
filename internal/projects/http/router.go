package http

import "github.com/gin-gonic/gin"

// Register attaches the project API routes. Reads are public; every
// mutation goes through the admin gate.
func (h *Handler) Register(rg *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.POST("", requireAdmin, h.create)
	rg.PUT("/:id", requireAdmin, h.update)
	rg.DELETE("/:id", requireAdmin, h.delete)
}

// RegisterPages attaches the server-rendered public pages.
func (h *Handler) RegisterPages(r gin.IRouter) {
	r.GET("/project/:id", h.detailPage)
}
