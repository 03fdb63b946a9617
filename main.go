package main

import (
	"log"

	"github.com/courtline/shuttlescore/config"
	_ "github.com/courtline/shuttlescore/docs"
	"github.com/courtline/shuttlescore/internal/match"
	"github.com/courtline/shuttlescore/internal/player"
	"github.com/courtline/shuttlescore/internal/setting"
	"github.com/courtline/shuttlescore/routes"
)

// @title ShuttleScore REST API
// @version 1.0
// @description Badminton tournament operations: scheduling, live scoring, roster and stats.
// @host localhost:5328
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&match.Match{}, &match.Score{},
		&player.Player{}, &setting.Setting{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	if err := setting.Seed(config.DB); err != nil {
		log.Fatalf("Failed to seed default settings: %v", err)
	}

	r := routes.SetupRoutes(config.DB, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
