package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/geo_sector_dispatch/internal/config"
	v1 "github.com/shenikar/geo_sector_dispatch/internal/handler/http/v1"
	"github.com/shenikar/geo_sector_dispatch/internal/metrics"
	"github.com/shenikar/geo_sector_dispatch/internal/repository"
	"github.com/shenikar/geo_sector_dispatch/internal/sector"
	"github.com/shenikar/geo_sector_dispatch/internal/service"
	"github.com/shenikar/geo_sector_dispatch/pkg/logger"
	"github.com/shenikar/geo_sector_dispatch/pkg/postgres"
	redisclient "github.com/shenikar/geo_sector_dispatch/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/geo_sector_dispatch/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Geo Sector Dispatch API
// @version 1.0
// @description Routes geolocated uploads to the provider responsible for the sector.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// openSnapshotRepository подключает выбранное хранилище снимков.
// Возвращаемая функция закрывает соединение.
func openSnapshotRepository(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.SnapshotRepository, func(), error) {
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		if err := runMigrations(cfg, log); err != nil {
			return nil, nil, err
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, cfg.PersistTimeout)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Successfully connected to PostgreSQL")
		return repository.NewPostgresSnapshotRepository(dbpool), dbpool.Close, nil

	case config.StorageSQLite:
		db, err := repository.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.WithField("path", cfg.SQLitePath).Info("Successfully opened SQLite snapshot store")
		return repository.NewSQLiteSnapshotRepository(db), func() { _ = db.Close() }, nil

	default:
		redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
			Timeout:  cfg.PersistTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info("Successfully connected to Redis")
		return repository.NewRedisSnapshotRepository(redisClient), func() { _ = redisClient.Close() }, nil
	}
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Загрузка реестра секторов
	registry, err := sector.LoadFile(cfg.BoundaryFile, sector.LoadOptions{
		SectorProperty:   cfg.BoundarySectorProperty,
		ProviderProperty: cfg.BoundaryProviderProperty,
		Permissive:       cfg.BoundaryPermissive,
		Logger:           log,
	})
	if err != nil {
		log.Fatalf("Failed to load boundary dataset: %v", err)
	}
	log.WithField("sectors", registry.Len()).Info("Boundary registry loaded")

	collector, err := metrics.NewCollector(nil)
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}
	collector.SetSectors(registry.Len())

	snapshotRepo, closeRepo, err := openSnapshotRepository(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open snapshot storage: %v", err)
	}
	defer closeRepo()

	// Хранилище уведомлений: восстанавливаем снимок и запускаем фоновую запись
	store := service.NewNotificationStore(snapshotRepo, log, cfg, collector)
	store.Reload(ctx)
	store.Start(ctx)

	dispatchService := service.NewDispatchService(registry, store, log, collector)

	handler := v1.NewHandler(dispatchService, store, registry, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(collector.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	cancel()
	if err := store.Flush(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to persist notifications on shutdown")
	}

	log.Info("Server gracefully stopped")
}
