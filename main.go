package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"saaarchi/auth"
	"saaarchi/cache"
	"saaarchi/config"
	"saaarchi/database"
	"saaarchi/handlers"
	"saaarchi/mailer"
	"saaarchi/services"
	"saaarchi/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := database.Open(ctx, cfg.Database.URL, cfg.Database.MongoDatabase)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer store.Close()

	pageCache, closeCache, err := cache.New(ctx, cfg.Cache.RedisURL)
	if err != nil {
		log.Fatal("Failed to set up page cache:", err)
	}
	defer closeCache()

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal("Failed to load templates:", err)
	}

	notifier := mailer.NewNotifier(
		mailer.NewResendSender(cfg.Mail.ResendAPIKey),
		cfg.Mail.ContactFrom,
		cfg.Mail.ContactTo,
	)
	if cfg.Mail.ResendAPIKey == "" {
		log.Println("RESEND_API_KEY not set, contact messages will fail until it is")
	}

	r := gin.Default()
	handlers.RegisterRoutes(r, handlers.Deps{
		Projects:    services.NewProjectService(store, pageCache),
		Contact:     notifier,
		Auth:        auth.NewService(cfg.Session.Secret, cfg.SecureCookies(), config.AdminCredentials),
		Store:       store,
		Cache:       pageCache,
		Renderer:    renderer,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	log.Printf("Server starting on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Server error:", err)
	}
}
