package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tunisiaclean/internal/config"
	"tunisiaclean/internal/handler"
	"tunisiaclean/internal/repository"
	"tunisiaclean/internal/service"
	"tunisiaclean/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(cfg.Server.GinMode)
	logger := utils.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	logger.Info("Tunisia Clean Places %s (built %s, commit %s)", Version, BuildTime, GitCommit)
	for _, w := range cfg.Warnings {
		logger.Warn("%s", w)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("❌ %v", err)
		os.Exit(1)
	}
	logger.Info("✅ Server stopped")
}

func run(cfg *config.Config, logger *utils.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info("✅ Catalog loaded from %s: %d locations", cfg.Catalog.Source, catalog.Len())

	router, err := newRouter(cfg, catalog, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	logger.Info("✅ Services initialized")

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("🚀 Starting server on %s", addr)
	logger.Info("📝 API: http://localhost:%d/api/v1", cfg.Server.Port)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("🛑 Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// loadCatalog builds the immutable catalog from the configured source
func loadCatalog(ctx context.Context, cfg *config.Config, logger *utils.Logger) (*repository.Catalog, error) {
	if cfg.Catalog.Source != config.CatalogSourcePostgres {
		return repository.NewCatalog(repository.SeedLocations())
	}

	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		return nil, err
	}
	// The catalog is read once; the connection is not needed afterwards
	defer repo.Close()
	logger.Info("✅ Connected to PostgreSQL database")

	if cfg.Catalog.SeedOnStart {
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		if err := repo.UpsertLocations(ctx, repository.SeedLocations()); err != nil {
			return nil, err
		}
		logger.Info("✅ Built-in locations written to PostgreSQL")
	}

	locs, err := repo.LoadLocations(ctx)
	if err != nil {
		return nil, err
	}
	return repository.NewCatalog(locs)
}

// newRouter wires services and handlers onto a gin engine
func newRouter(cfg *config.Config, catalog *repository.Catalog, logger *utils.Logger) (*gin.Engine, error) {
	searchService := service.NewSearchService(
		catalog,
		cfg.Search.SuggestionMinLength,
		cfg.Search.SuggestionLimit,
		logger,
	)
	chatService, err := service.NewChatService(cfg.Chat.MaxSessions, cfg.Chat.TypingDelay, logger)
	if err != nil {
		return nil, err
	}
	dashboardService := service.NewDashboardService(catalog)

	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = config.SplitList(cfg.Server.AllowedOrigins)
	corsConfig.AllowMethods = config.SplitList(cfg.Server.AllowedMethods)
	corsConfig.AllowHeaders = config.SplitList(cfg.Server.AllowedHeaders)
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"service":    "tunisia-clean-places",
			"locations":  catalog.Len(),
			"sessions":   chatService.SessionCount(),
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	handler.RegisterRoutes(
		router.Group("/api/v1"),
		handler.NewSearchHandler(searchService),
		handler.NewChatHandler(chatService),
		handler.NewDashboardHandler(dashboardService),
	)

	setupNoRoute(router)

	return router, nil
}
