package http

import (
	"github.com/tidewater-lab/site-backend/internal/pages"
	"github.com/tidewater-lab/site-backend/internal/projects/service"
)

// Handler bundles the dependencies for the projects HTTP endpoints.
type Handler struct {
	svc   *service.ProjectService
	pages *pages.Renderer
}

func New(svc *service.ProjectService, renderer *pages.Renderer) *Handler {
	return &Handler{svc: svc, pages: renderer}
}
