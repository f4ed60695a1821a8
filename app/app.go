// File: app/app.go
package app

import (
	"context"
	"go-taskboard-api/config"
	"go-taskboard-api/db"
	"go-taskboard-api/handler"
	"go-taskboard-api/logger"
	"go-taskboard-api/repository"
	"go-taskboard-api/router"
	"go-taskboard-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations("file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error applying migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	// --- Wiring All Layers Together ---
	// Repositories, services and handlers are constructed here and injected
	// explicitly; no layer reaches for shared globals.
	jwtCfg := config.AppConfig.JWT
	accessTTL := time.Duration(jwtCfg.AccessTTLMinutes) * time.Minute
	refreshTTL := time.Duration(jwtCfg.RefreshTTLHours) * time.Hour

	userRepo := repository.NewUserRepository(database)
	tokenRepo := repository.NewTokenRepository(database)
	boardRepo := repository.NewBoardRepository(database)
	listRepo := repository.NewListRepository(database)
	cardRepo := repository.NewCardRepository(database)
	commentRepo := repository.NewCommentRepository(database)
	activityRepo := repository.NewActivityRepository(database)

	hasher := service.NewPasswordHasher()
	issuer := service.NewTokenIssuer(jwtCfg.SecretKey, accessTTL)

	authService := service.NewAuthService(userRepo, tokenRepo, hasher, issuer, refreshTTL)
	userService := service.NewUserService(userRepo, tokenRepo)
	boardService := service.NewBoardService(boardRepo, redisClient)
	listService := service.NewListService(listRepo)
	cardService := service.NewCardService(cardRepo)
	commentService := service.NewCommentService(commentRepo)
	activityService := service.NewActivityService(activityRepo)

	authHandler := handler.NewAuthHandler(authService, config.AppConfig.Cookie.Secure)
	userHandler := handler.NewUserHandler(userService)
	boardHandler := handler.NewBoardHandler(boardService, userService)
	listHandler := handler.NewListHandler(listService, boardService, userService, activityService)
	cardHandler := handler.NewCardHandler(cardService, listService, boardService, userService, activityService)
	commentHandler := handler.NewCommentHandler(commentService, cardService, boardService, userService, activityService)
	activityHandler := handler.NewActivityHandler(activityService, boardService)
	guard := handler.NewAuthGuard(issuer)

	r := router.NewRouter(authHandler, userHandler, boardHandler, listHandler, cardHandler, commentHandler, activityHandler, guard)

	// Periodic sweep of expired refresh tokens. Lookups already treat
	// expired records as absent; this only bounds storage growth.
	sweeperDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := tokenRepo.DeleteExpired(); err != nil {
					logger.Log.WithError(err).Warn("Refresh token sweep failed")
				}
			case <-sweeperDone:
				return
			}
		}
	}()

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")
	close(sweeperDone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
