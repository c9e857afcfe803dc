package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"idocx/config"
	"idocx/database"
	"idocx/errs"
	"idocx/routes"
	"idocx/storage"
)

func main() {
	app, err := NewApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Start(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// Application ties together configuration, database, storage and the HTTP
// server.
type Application struct {
	config *config.Config
	server *http.Server
	store  storage.Adapter
	router *gin.Engine
}

// NewApplication loads configuration and builds the server skeleton. The
// database and storage backends are initialized in Start.
func NewApplication() (*Application, error) {
	cfg := config.LoadConfig()
	if err := cfg.ValidateConfig(); err != nil {
		return nil, err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.SetTrustedProxies([]string{"127.0.0.1", "::1"})
	router.Use(gin.Recovery())

	return &Application{
		config: cfg,
		router: router,
		server: &http.Server{
			Addr:         cfg.GetServerAddress(),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}, nil
}

// Start initializes all components, serves until a shutdown signal arrives
// and then drains gracefully.
func (app *Application) Start() error {
	log.Printf("Starting %s v%s in %s mode",
		app.config.AppName, app.config.AppVersion, app.config.Environment)

	if err := app.initializeDatabase(); err != nil {
		return err
	}
	if err := app.initializeStorage(); err != nil {
		return err
	}

	routes.SetupRoutes(app.router, app.store)

	go func() {
		log.Printf("Server listening on %s", app.server.Addr)
		if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
	return nil
}

func (app *Application) initializeDatabase() error {
	log.Println("Initializing database...")

	manager := database.GetManager()
	if err := manager.Initialize(app.config.MongoURI, app.config.DBName); err != nil {
		return err
	}
	if err := database.CreateIndexes(); err != nil {
		return err
	}

	log.Println("Database initialized")
	return nil
}

func (app *Application) initializeStorage() error {
	log.Printf("Initializing %s storage...", app.config.StorageProvider)

	store, err := storage.NewAdapter(app.config)
	if err != nil {
		return errs.Wrap(errs.CodeStorageInitialization, "failed to initialize storage", err)
	}
	app.store = store

	log.Println("Storage initialized")
	return nil
}

func (app *Application) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	if err := database.GetManager().Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server shutdown complete")
}
