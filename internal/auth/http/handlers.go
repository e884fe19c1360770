package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tidewater-lab/site-backend/internal/auth"
)

// Handler bundles the dependencies for the auth endpoints.
type Handler struct {
	gate *auth.Gate
}

func New(gate *auth.Gate) *Handler {
	return &Handler{gate: gate}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "message": "invalid body"})
		return
	}

	token, err := h.gate.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "Invalid credentials"})
		return
	}

	h.setSessionCookie(c, token, int(h.gate.TTL().Seconds()))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// setSessionCookie writes the session cookie: HttpOnly so page scripts can
// never read it, SameSite=Lax so it only rides same-site requests.
func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, maxAge, "/", "", false, true)
}
