package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/config"
	"github.com/yeremiapane/restaurant-site/database"
	"github.com/yeremiapane/restaurant-site/kds"
	"github.com/yeremiapane/restaurant-site/router"
	"github.com/yeremiapane/restaurant-site/services"
	"github.com/yeremiapane/restaurant-site/utils"
)

func main() {
	utils.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load config: %v", err)
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		utils.ErrorLogger.Printf("Invalid LOG_LEVEL %q, keeping info: %v", cfg.LogLevel, err)
	}
	utils.InfoLogger.Printf("Config loaded: %s", cfg)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := buildApp(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to build app: %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.SetupRouter(app),
	}

	go func() {
		utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.InfoLogger.Println("Shutting down server...")
	app.Sessions.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Printf("Server forced to shutdown: %v", err)
	}
}

// buildApp adalah composition root: katalog dimuat sekali, lalu state
// container dan hub dibuat dan di-inject ke router
func buildApp(cfg *config.Config) (*router.App, error) {
	db, err := config.InitDB(cfg.DB)
	if err != nil {
		return nil, err
	}

	// Database eksternal (mysql) sudah berisi menu; sqlite in-memory perlu di-seed
	if cfg.DB.Driver == config.DriverSQLite {
		if err := database.SeedCatalog(db, database.SeedMenu()); err != nil {
			return nil, err
		}
	}

	items, err := database.LoadCatalog(db)
	if err != nil {
		return nil, err
	}
	utils.InfoLogger.Printf("Catalog loaded: %d items", len(items))

	sessions := services.NewSessionStore(cfg.SessionTTL)
	sessions.StartSweeper(cfg.SessionSweep)

	return &router.App{
		Config:   cfg,
		Catalog:  services.NewCatalogWithSections(items, database.Sections),
		Sessions: sessions,
		Hub:      kds.NewHub(),
		Assigner: services.NewRandomTableAssigner(cfg.TableCount, time.Now().UnixNano()),
	}, nil
}
