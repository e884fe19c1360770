package main

import (
	"log"

	"github.com/tidewater-lab/site-backend/config"
	"github.com/tidewater-lab/site-backend/internal/bootstrap"
	"github.com/tidewater-lab/site-backend/internal/projects/repository"
	"github.com/tidewater-lab/site-backend/internal/uploads"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	if err := repository.NewStore(cfg.Storage.DataFile).Ensure(); err != nil {
		log.Fatalf("store init: %v", err)
	}
	if err := uploads.NewManager(cfg.Storage.UploadsDir).Ensure(); err != nil {
		log.Fatalf("uploads init: %v", err)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "site-backend",
		Cfg:         cfg,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
