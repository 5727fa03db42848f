package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"order-desk/internal/cart"
	"order-desk/internal/catalog"
	"order-desk/internal/config"
	"order-desk/internal/database"
	"order-desk/internal/handler"
	"order-desk/internal/model"
	"order-desk/internal/repository"
	"order-desk/internal/router"
	"order-desk/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting order-desk API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	promotionRepo := repository.NewPromotionRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Build the immutable catalogue snapshot from the configured source
	cat, err := buildCatalog(ctx, cfg.Catalog, productRepo, promotionRepo, logger)
	if err != nil {
		return fmt.Errorf("failed to build catalogue: %w", err)
	}

	// Initialize cart session store
	cartStore := cart.NewStore(logger)

	// Initialize services
	productService := service.NewProductService(cat, logger)
	promotionService := service.NewPromotionService(cat, logger)
	cartService := service.NewCartService(cartStore, cat, logger)
	orderService := service.NewOrderService(orderRepo, cartStore, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	promotionHandler := handler.NewPromotionHandler(promotionService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	// Initialize router
	mux := router.New(productHandler, promotionHandler, cartHandler, orderHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// catalogPageSize bounds the per-query fetch when loading the catalogue from
// the database at startup.
const catalogPageSize = 500

// buildCatalog assembles the startup catalogue snapshot from the configured
// source. The S3 source falls back to the local file when the loader cannot
// be initialised, matching the behaviour of the file-based deployments.
func buildCatalog(
	ctx context.Context,
	cfg config.CatalogConfig,
	productRepo repository.ProductRepository,
	promotionRepo repository.PromotionRepository,
	logger zerolog.Logger,
) (*catalog.Catalog, error) {
	switch cfg.Source {
	case config.CatalogSourceDB:
		var products []model.Product
		for offset := 0; ; offset += catalogPageSize {
			page, err := productRepo.GetAll(ctx, catalogPageSize, offset)
			if err != nil {
				return nil, fmt.Errorf("failed to load products from database: %w", err)
			}
			products = append(products, page...)
			if len(page) < catalogPageSize {
				break
			}
		}

		promotions, err := promotionRepo.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load promotions from database: %w", err)
		}

		logger.Info().
			Int("products", len(products)).
			Int("promotions", len(promotions)).
			Msg("catalogue loaded from database")

		return catalog.New(products, promotions)

	case config.CatalogSourceFile:
		return catalog.Build(ctx, catalog.NewFileLoader(logger), cfg.FilePath)

	case config.CatalogSourceS3:
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3Bucket, cfg.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local catalogue file")
			return catalog.Build(ctx, catalog.NewFileLoader(logger), cfg.FilePath)
		}
		return catalog.Build(ctx, s3Loader, cfg.S3Key)

	default:
		return nil, fmt.Errorf("unknown catalogue source %q", cfg.Source)
	}
}
