package main

import (
	"context"
	"log"
	"time"

	"github.com/jogajunto/backend/config"
	_ "github.com/jogajunto/backend/docs"
	"github.com/jogajunto/backend/internal/availability"
	"github.com/jogajunto/backend/internal/game"
	"github.com/jogajunto/backend/internal/location"
	"github.com/jogajunto/backend/internal/matching"
	"github.com/jogajunto/backend/internal/notification"
	"github.com/jogajunto/backend/internal/player"
	"github.com/jogajunto/backend/routes"
)

// @title JogaJunto REST API
// @version 1.0
// @description Community matchmaking server for padel, beach tennis and tennis.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&player.Player{}, &player.RefreshToken{},
		&location.Location{},
		&availability.Availability{},
		&game.Game{}, &game.GamePlayer{},
		&notification.Notification{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	if cfg.Matching.IntervalMinutes > 0 {
		startMatchingTicker(cfg)
	}

	r := routes.SetupRoutes(config.DB, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// startMatchingTicker runs the availability matching pass in the background.
// Expired availabilities are swept first so they never enter a pass.
func startMatchingTicker(cfg *config.Config) {
	availabilityRepo := availability.NewAvailabilityRepository(config.DB)
	service := matching.NewService(
		availabilityRepo,
		location.NewLocationRepository(config.DB),
		notification.NewNotificationRepository(config.DB),
		cfg.Matching.RadiusKm,
	)

	interval := time.Duration(cfg.Matching.IntervalMinutes) * time.Minute
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			if n, err := availabilityRepo.ExpireOverdue(time.Now()); err != nil {
				log.Printf("matching: expiry sweep failed: %v", err)
			} else if n > 0 {
				log.Printf("matching: expired %d availabilities", n)
			}

			stats, err := service.RunPass(context.Background())
			if err != nil {
				log.Printf("matching: pass failed: %v", err)
				continue
			}
			log.Printf("matching: pass done, %d candidates, %d matches, %d notified", stats.Candidates, stats.Matches, stats.Notified)
		}
	}()
	log.Printf("Matching pass scheduled every %d minutes", cfg.Matching.IntervalMinutes)
}
