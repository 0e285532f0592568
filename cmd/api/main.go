package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/theobroma-digital/geo-api/internal/config"
	"github.com/theobroma-digital/geo-api/internal/http/handler"
	"github.com/theobroma-digital/geo-api/internal/querystats"
	"github.com/theobroma-digital/geo-api/internal/repository/postgres"
	"github.com/theobroma-digital/geo-api/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	tracker := querystats.NewTracker(logger.Named("query"))
	if err := tracker.SetThreshold(cfg.SlowQueryThreshold); err != nil {
		logger.Fatal("slow query threshold", zap.Error(err))
	}

	db, err := postgres.Open(cfg.DatabaseURL, cfg.MaxOpenConns, querystats.NewLogger(tracker, logger.Named("gorm")))
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := postgres.Ping(pingCtx, db); err != nil {
		cancel()
		logger.Fatal("database unreachable", zap.Error(err))
	}
	cancel()

	farmRepo := postgres.NewFarmRepository(db)
	lotRepo := postgres.NewLotRepository(db)
	treeRepo := postgres.NewTreeRepository(db)

	farmUsecase := usecase.NewFarmUsecase(farmRepo)
	lotUsecase := usecase.NewLotUsecase(lotRepo, treeRepo)
	securityUsecase := usecase.NewSecurityUsecase(treeRepo, nil)
	weatherUsecase := usecase.NewWeatherUsecase(lotRepo, nil)
	analyticsUsecase := usecase.NewAnalyticsUsecase(farmRepo, lotRepo)
	statsUsecase := usecase.NewStatsUsecase(tracker)

	app := fiber.New(fiber.Config{
		AppName:               "Theobroma Digital API",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	handler.NewHealthHandler(db).Register(app)
	handler.NewFarmHandler(farmUsecase, lotUsecase).Register(app)
	handler.NewSecurityHandler(farmUsecase, securityUsecase).Register(app)
	handler.NewWeatherHandler(farmUsecase, weatherUsecase).Register(app)
	handler.NewAnalyticsHandler(farmUsecase, analyticsUsecase).Register(app)
	handler.NewDebugHandler(statsUsecase).Register(app)

	scheduler, err := newStatsSummaryJob(cfg.StatsSummaryInterval, tracker, logger)
	if err != nil {
		logger.Fatal("stats summary job", zap.Error(err))
	}
	scheduler.Start()

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("listening", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := scheduler.Shutdown(); err != nil {
		logger.Warn("scheduler shutdown", zap.Error(err))
	}
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("server shutdown", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// newStatsSummaryJob periodically logs a one-line query-performance
// summary so slow-query drift shows up in logs without polling the debug
// endpoint.
func newStatsSummaryJob(interval time.Duration, tracker *querystats.Tracker, logger *zap.Logger) (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			perf := tracker.Snapshot()
			logger.Info("query performance summary",
				zap.Int64("total_queries", perf.TotalQueries),
				zap.Float64("avg_query_time", perf.AvgQueryTime),
				zap.Float64("max_query_time", perf.MaxQueryTime),
				zap.Int64("slow_queries", perf.SlowQueriesCount),
			)
		}),
	)
	if err != nil {
		return nil, err
	}
	return scheduler, nil
}
