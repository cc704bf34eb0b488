// File: estateconnect/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estateconnect/config"
	"estateconnect/cron"
	"estateconnect/database"
	listingRepoPkg "estateconnect/database/repository/listing"
	userRepoPkg "estateconnect/database/repository/user"
	"estateconnect/handlers"
	"estateconnect/middleware"
	"estateconnect/routes"
	"estateconnect/services/catalog"
	"estateconnect/services/directory"
	"estateconnect/services/feed"
	"estateconnect/services/user"
	"estateconnect/services/wizard"
	"estateconnect/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	listingRepo := listingRepoPkg.NewMongoListingRepo()
	if err := userRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create user indexes: %v", err)
	}
	if err := listingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create listing indexes: %v", err)
	}
	if err := catalog.EnsureSeeded(listingRepo); err != nil {
		logger.Sugar().Fatalf("main: failed to seed listings: %v", err)
	}

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	handlers.SetUserService(userService)

	catalogService := &catalog.DefaultCatalogService{
		Repo:  listingRepo,
		Cache: utils.GetCacheClient(),
	}
	handlers.SetCatalogService(catalogService)

	queueClient := cron.NewQueueClient()
	defer queueClient.Close()

	wizardService := &wizard.DefaultWizardService{
		Catalog: catalogService,
		Store:   wizard.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Queue:   queueClient,
	}

	directoryStore := directory.NewStore()

	rotatorCtx, stopRotator := context.WithCancel(context.Background())
	defer stopRotator()
	rotator := feed.NewRotator(5 * time.Second)
	go rotator.Start(rotatorCtx)

	// Background worker that promotes reviewed listings.
	cron.InitReviewWorker(catalogService)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:  userRepo,
		Catalog:   handlers.NewCatalogHandler(catalogService),
		Wizard:    handlers.NewWizardHandler(wizardService),
		Directory: handlers.NewDirectoryHandler(directoryStore),
		Admin:     handlers.NewAdminHandler(userService, catalogService),
		Feed:      handlers.NewFeedHandler(rotator),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	stopRotator()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
