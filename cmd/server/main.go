package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sitestock/backend/internal/application/registry"
	"github.com/sitestock/backend/internal/application/stock"
	"github.com/sitestock/backend/internal/domain/register"
	"github.com/sitestock/backend/internal/infrastructure/cache"
	"github.com/sitestock/backend/internal/infrastructure/config"
	"github.com/sitestock/backend/internal/infrastructure/logger"
	"github.com/sitestock/backend/internal/infrastructure/sheets"
	"github.com/sitestock/backend/internal/interfaces/http/handler"
	"github.com/sitestock/backend/internal/interfaces/http/middleware"
	"github.com/sitestock/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting site stock backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("sheets_backend", cfg.Sheets.Backend),
	)

	// Pick the row store backend
	var backing register.RowStore
	if cfg.Sheets.Backend == "google" {
		client, err := sheets.NewClient(context.Background(), cfg.Sheets, log)
		if err != nil {
			log.Fatal("Failed to create sheets client", zap.Error(err))
		}
		backing = client
		log.Info("Connected to spreadsheet", zap.String("spreadsheet_id", cfg.Sheets.SpreadsheetID))
	} else {
		backing = sheets.NewMemoryStore()
		log.Warn("Using in-memory store; data will not survive restarts")
	}

	// Read-through cache: movement registers turn over fastest, masters
	// barely change.
	registerCache := cache.NewRegisterCache(backing,
		cache.WithTTL(cfg.Cache.DefaultTTL),
		cache.WithLogger(log),
		cache.WithRegisterTTL(register.RegisterInward, cfg.Cache.MovementTTL),
		cache.WithRegisterTTL(register.RegisterOutward, cfg.Cache.MovementTTL),
		cache.WithRegisterTTL(register.RegisterReturns, cfg.Cache.MovementTTL),
		cache.WithRegisterTTL(register.RegisterDamage, cfg.Cache.MovementTTL),
		cache.WithRegisterTTL(register.RegisterVendor, cfg.Cache.MasterTTL),
		cache.WithRegisterTTL(register.RegisterMaterialMaster, cfg.Cache.MasterTTL),
		cache.WithRegisterTTL(register.RegisterGradeMaster, cfg.Cache.MasterTTL),
	)
	store := cache.NewCachedStore(backing, registerCache)

	// Application services
	vendorService := registry.NewVendorService(store, log)
	movementService := registry.NewMovementService(store, log)
	workflowService := registry.NewWorkflowService(store, log)
	boqService := registry.NewBOQService(store, log)
	masterService := registry.NewMasterService(store, log)
	limitService := registry.NewLimitService(store, log)
	stockService := stock.NewStockService(store, log)
	reconciliationService := stock.NewReconciliationService(store, stockService, log)
	closingService := stock.NewClosingService(store, stockService, log)
	reportService := stock.NewReportService(stockService, log)
	dashboardService := stock.NewDashboardService(store, stockService, log)

	// Seed the master catalogs; a no-op once they are populated.
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	materialsSeeded, gradesSeeded, err := masterService.Seed(seedCtx)
	cancelSeed()
	if err != nil {
		log.Warn("Master catalog seeding failed", zap.Error(err))
	} else if materialsSeeded || gradesSeeded {
		log.Info("Master catalogs seeded",
			zap.Bool("materials", materialsSeeded),
			zap.Bool("grades", gradesSeeded))
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so the recovery and request logs
	// carry it.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.RequestLogger(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Setup(engine, router.Handlers{
		System:   handler.NewSystemHandler(registerCache),
		Vendor:   handler.NewVendorHandler(vendorService),
		Movement: handler.NewMovementHandler(movementService),
		Workflow: handler.NewWorkflowHandler(workflowService),
		BOQ:      handler.NewBOQHandler(boqService),
		Master:   handler.NewMasterHandler(masterService),
		Stock:    handler.NewStockHandler(stockService, limitService, reconciliationService, closingService),
		Report:   handler.NewReportHandler(reportService, dashboardService),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
