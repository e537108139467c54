package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ppgarage/backoffice/internal/application/services"
	"github.com/ppgarage/backoffice/internal/config"
	"github.com/ppgarage/backoffice/internal/infrastructure/assets"
	"github.com/ppgarage/backoffice/internal/infrastructure/database"
	"github.com/ppgarage/backoffice/internal/infrastructure/persistence"
	"github.com/ppgarage/backoffice/internal/interfaces/rest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("✅ Database connection established")

	if err := persistence.InitSchema(context.Background(), db); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	log.Println("📦 Schema ready")

	store := assets.NewStore(cfg.UploadDir)
	svcMgr := services.NewServiceManager(db, store)
	log.Println("🔧 Service manager initialized")

	router := rest.NewRouter(svcMgr, rest.RouterOptions{
		TemplateGlob: cfg.TemplateGlob,
		UploadDir:    cfg.UploadDir,
	})

	log.Println("🚀 PP Garage back office started")
	log.Printf("📍 Dashboard:    http://localhost:%s/", cfg.Port)
	log.Printf("💰 Prices API:   http://localhost:%s/api/precios-servicios", cfg.Port)
	log.Printf("💚 Health check: http://localhost:%s/health", cfg.Port)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// SIGTERM from kill, SIGINT from Ctrl-C; SIGKILL can't be caught
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// In-flight requests get 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
