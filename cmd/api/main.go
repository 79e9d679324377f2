package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fatah2004/KechEx/internal/config"
	"github.com/fatah2004/KechEx/internal/database"
	"github.com/fatah2004/KechEx/internal/handler"
	"github.com/fatah2004/KechEx/internal/middleware"
	"github.com/fatah2004/KechEx/internal/session"
	"github.com/fatah2004/KechEx/internal/store"
	"github.com/fatah2004/KechEx/internal/worker"
)

// main is the application entrypoint for the KechEx storefront.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Str("store", cfg.DocStore).Msg("starting kechex storefront")

	// 3. Build the document store backend
	docStore, closeStore, err := buildStore(cfg)
	if err != nil {
		log.Error().Err(err).Msg("document store initialization failed")
		fmt.Fprintf(os.Stderr, "document store initialization failed: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	// 4. Initialize view sessions
	sessions := session.NewManager(docStore, cfg.View.SessionTTL, cfg.View.CarouselInterval)
	defer sessions.Close()

	// 5. Initialize handlers
	viewHandler := handler.NewViewHandler(sessions, cfg.View.SessionTTL)
	handlers := &Handlers{
		Health:  handler.NewHealthHandler(docStore),
		Page:    handler.NewPageHandler(viewHandler),
		View:    viewHandler,
		Catalog: handler.NewCatalogHandler(docStore),
	}

	// 6. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers)

	// 7. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 8. Start workers
	go worker.NewSessionReaper(sessions, cfg.View.SessionReapInterval).Start(ctx)

	// 9. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 11. Cancel context to stop workers
	cancel()

	// 12. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health  *handler.HealthHandler
	Page    *handler.PageHandler
	View    *handler.ViewHandler
	Catalog *handler.CatalogHandler
}

// buildStore constructs the configured document store backend and a
// close function for its underlying connection.
func buildStore(cfg *config.Config) (store.Store, func(), error) {
	switch cfg.DocStore {
	case config.StorePostgres:
		db, err := database.Connect(&cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := runMigrations(db.DB); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		log.Info().Msg("migrations completed successfully")
		return store.NewPostgres(db), func() { _ = db.Close() }, nil

	case config.StoreRedis:
		client, err := database.ConnectRedis(&cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Msg("redis connected successfully")
		return store.NewRedis(client), func() { _ = client.Close() }, nil

	case config.StoreMemory:
		return store.NewMemory(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown document store backend %q", cfg.DocStore)
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Server-rendered product detail page
	router.GET("/products/:productId", handlers.Page.GetProductPage)

	// Session-scoped view interactions
	v := router.Group("/v1/products/:productId/view")
	{
		v.GET("", handlers.View.GetState)
		v.POST("/carousel/select", handlers.View.SelectImage)
		v.POST("/carousel/next", handlers.View.NextImage)
		v.POST("/carousel/prev", handlers.View.PrevImage)
		v.POST("/quantity/increment", handlers.View.IncrementQuantity)
		v.POST("/quantity/decrement", handlers.View.DecrementQuantity)
		v.POST("/modal/open", handlers.View.OpenModal)
		v.POST("/modal/close", handlers.View.CloseModal)
		v.POST("/order", handlers.View.SubmitOrder)
		v.POST("/alert/dismiss", handlers.View.DismissAlert)
	}

	// Catalog ingest (external catalog-management process)
	router.POST("/v1/catalog/products", handlers.Catalog.CreateProduct)
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
