package bootstrap

import (
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/tidewater-lab/site-backend/config"
	httpapi "github.com/tidewater-lab/site-backend/internal/api/http"
	"github.com/tidewater-lab/site-backend/internal/api/http/middleware"
	"github.com/tidewater-lab/site-backend/internal/auth"
	authhttp "github.com/tidewater-lab/site-backend/internal/auth/http"
	authmw "github.com/tidewater-lab/site-backend/internal/auth/middleware"
	"github.com/tidewater-lab/site-backend/internal/pages"
	projhttp "github.com/tidewater-lab/site-backend/internal/projects/http"
	"github.com/tidewater-lab/site-backend/internal/projects/repository"
	"github.com/tidewater-lab/site-backend/internal/projects/service"
	"github.com/tidewater-lab/site-backend/internal/uploads"
)

type RouterDeps struct {
	ServiceName string
	Cfg         *config.Config
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	cfg := dep.Cfg

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	if cfg.App.Environment != "production" {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
		corsCfg.AllowCredentials = true
		r.Use(cors.New(corsCfg))
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, cfg.App.Version, cfg.Storage.DataFile)
	healthHandler.RegisterRoutes(r)

	gate := auth.NewGate(cfg.Admin.Email, cfg.Admin.Password, cfg.Auth.Secret, cfg.Auth.TokenTTL)
	store := repository.NewStore(cfg.Storage.DataFile)
	files := uploads.NewManager(cfg.Storage.UploadsDir)
	svc := service.New(store, files)

	projHandler := projhttp.New(svc, pages.NewRenderer())
	projHandler.Register(r.Group("/api/projects"), authmw.RequireAdmin(gate))
	projHandler.RegisterPages(r)

	authHandler := authhttp.New(gate)
	authHandler.Register(r.Group("/auth"), middleware.LoginRateLimit(rate.Every(2*time.Second), 5))

	r.Static("/uploads", cfg.Storage.UploadsDir)
	r.Static("/assets", filepath.Join(cfg.Storage.PublicDir, "assets"))
	r.StaticFile("/admin", filepath.Join(cfg.Storage.PublicDir, "admin.html"))

	return r
}
