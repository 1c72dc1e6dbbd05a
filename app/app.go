// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"go-transactions-api/config"
	"go-transactions-api/datasource"
	"go-transactions-api/db"
	"go-transactions-api/handler"
	"go-transactions-api/logger"
	"go-transactions-api/repository"
	"go-transactions-api/router"
	"go-transactions-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
)

// App is the wired HTTP application.
type App struct {
	DB     *sql.DB
	Router http.Handler
}

// New wires repositories, services and handlers. A nil redis client selects
// the in-process seed lock.
func New(database *sql.DB, redisClient *redis.Client, source datasource.Source) *App {
	var locker service.SeedLocker = service.NewLocalSeedLocker()
	if redisClient != nil {
		locker = service.NewRedisSeedLocker(redisClient, config.AppConfig.Seed.LockTTL)
	}

	transactionRepo := repository.NewTransactionRepository(database)

	seedService := service.NewSeedService(database, transactionRepo, source, locker)
	transactionService := service.NewTransactionService(transactionRepo)

	r := router.NewRouter(
		handler.NewHealthHandler(database),
		handler.NewTransactionHandler(transactionService),
		handler.NewSeedHandler(seedService),
	)

	return &App{DB: database, Router: r}
}

func Run() {
	logger.Init()
	if err := config.LoadConfig("."); err != nil {
		logger.Log.Fatalf("Error loading configuration: %v", err)
	}
	logger.Configure(config.AppConfig.Log.Level, config.AppConfig.Log.Format)
	logger.Log.Info("Configuration loaded successfully")

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStart()

	if config.AppConfig.Database.AutoMigrate {
		if err := db.RunMigrations(db.DSN(true)); err != nil {
			logger.Log.Fatalf("Error running database migrations: %v", err)
		}
	}

	database, err := db.Connect(startCtx)
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	var redisClient *redis.Client
	if config.AppConfig.Redis.Enabled {
		redisClient, err = db.ConnectRedis(startCtx)
		if err != nil {
			logger.Log.Fatalf("Error connecting to redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		logger.Log.Info("Redis disabled, seed lock is local to this process")
	}

	source := datasource.NewHTTPSource(config.AppConfig.Seed.URL, config.AppConfig.Seed.Timeout)
	application := New(database, redisClient, source)

	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           application.Router,
		ReadHeaderTimeout: 10 * time.Second,
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

	ctx, cancel := context.WithTimeout(context.Background(), config.AppConfig.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Errorf("Server forced to shutdown: %v", err)
		return
	}

	logger.Log.Info("Server exited properly")
}
