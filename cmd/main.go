package main

import (
	"context"
	"log"

	"github.com/Noor881/contentforge-ai-sub001/config"
	"github.com/Noor881/contentforge-ai-sub001/db"
	"github.com/Noor881/contentforge-ai-sub001/internal/security/handler"
	repo "github.com/Noor881/contentforge-ai-sub001/internal/security/repository/postgres"
	"github.com/Noor881/contentforge-ai-sub001/internal/security/service"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer dbPool.Close()

	securityRepo := repo.NewPostgresRepository(dbPool)
	activityService := service.NewActivityService(securityRepo, securityRepo)
	securityService := service.NewSecurityService(securityRepo, activityService, cfg)
	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.AccessExpiryMin)

	securityHandler := handler.NewSecurityHandler(securityService)
	adminHandler := handler.NewAdminHandler(securityService, activityService, tokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, securityHandler, adminHandler)
	log.Fatal(app.Listen(":" + cfg.Port))
}
