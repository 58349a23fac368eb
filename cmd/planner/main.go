package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Taeppir/Link/internal/pkg/config"
	"github.com/Taeppir/Link/internal/pkg/database"
	"github.com/Taeppir/Link/internal/pkg/health"
	"github.com/Taeppir/Link/internal/pkg/logger"
	"github.com/Taeppir/Link/internal/pkg/middleware"
	"github.com/Taeppir/Link/internal/pkg/models"
	natspkg "github.com/Taeppir/Link/internal/pkg/nats"
	nsqpkg "github.com/Taeppir/Link/internal/pkg/nsq"
	"github.com/Taeppir/Link/internal/pkg/server"
	"github.com/Taeppir/Link/services/planner"
	"github.com/Taeppir/Link/services/planner/gateway"
	"github.com/Taeppir/Link/services/planner/handler"
	"github.com/Taeppir/Link/services/planner/repository"
	"github.com/Taeppir/Link/services/planner/usecase"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

const loopBuffer = 64

func main() {
	configPath := "config/planner.env"
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	shutdown := server.NewShutdownManager(zapLogger)
	healthService := health.NewHealthService()

	httpEngine := gateway.NewHTTPEngine(configs.Engine, zapLogger)
	healthService.AddChecker("routing_engine", health.CheckerFunc(httpEngine.CheckHealth))
	engine := buildEngine(configs, httpEngine, shutdown, healthService)

	board := repository.NewReportBoard()
	projector := buildProjector(configs, board, shutdown, healthService)
	portRepo := repository.NewPortRepo(configs.Ports.CSVPath)

	loop := usecase.NewLoop(loopBuffer)
	plannerUC := usecase.NewPlannerUC(configs, loop, engine, projector, portRepo, board)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	// panic recovery should be first
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger, appName))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)
	handler.NewHandler(plannerUC, configs).RegisterRoutes(e)

	logger.Info("Dependencies registered", logger.Strings("checks", healthService.Names()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		plannerUC.InitEngine(gctx)
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		zapLogger.Error("Planner stopped with error", logger.Err(err))
	}

	cleanupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdown.Shutdown(cleanupCtx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
}

// buildEngine puts the Redis route cache in front of the engine when one is configured
func buildEngine(configs *models.Config, httpEngine *gateway.HTTPEngine, shutdown *server.ShutdownManager, hs *health.HealthService) planner.RoutingEngine {
	if configs.Redis.Host == "" || configs.Engine.CacheTTL <= 0 {
		return httpEngine
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Warn("Route cache disabled", logger.Err(err))
		return httpEngine
	}
	shutdown.Register(func(context.Context) error {
		logger.Info("Closing Redis connection...")
		return redisClient.Close()
	})
	hs.AddChecker("redis", health.NewRedisHealthChecker(redisClient))

	ttl := time.Duration(configs.Engine.CacheTTL) * time.Minute
	logger.Info("Route cache enabled", logger.Duration("ttl", ttl))
	return gateway.NewCachedEngine(httpEngine, redisClient, ttl)
}

// buildProjector creates the report sinks listed in REPORT_SINKS.
// A sink whose broker is unreachable is skipped.
func buildProjector(configs *models.Config, board *repository.ReportBoard, shutdown *server.ShutdownManager, hs *health.HealthService) *gateway.MultiProjector {
	var sinks []planner.ReportProjector
	for _, name := range strings.Split(configs.Report.Sinks, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "":
		case "board":
			sinks = append(sinks, board)
		case "log":
			sinks = append(sinks, gateway.LogProjector{})
		case "nats":
			client, err := natspkg.NewClient(configs.NATS.URL, configs.App.Name)
			if err != nil {
				logger.Warn("NATS report sink disabled", logger.Err(err))
				continue
			}
			shutdown.Register(func(context.Context) error {
				logger.Info("Closing NATS connection...")
				client.Close()
				return nil
			})
			hs.AddChecker("nats", health.NewNATSHealthChecker(client.GetConn))
			sinks = append(sinks, gateway.NewNATSProjector(client, configs.NATS.ReportSubject))
		case "nsq":
			producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
			if err != nil {
				logger.Warn("NSQ report sink disabled", logger.Err(err))
				continue
			}
			shutdown.Register(func(context.Context) error {
				logger.Info("Stopping NSQ producer...")
				producer.Stop()
				return nil
			})
			hs.AddChecker("nsq", health.CheckerFunc(func(context.Context) error {
				return producer.Ping()
			}))
			sinks = append(sinks, gateway.NewNSQProjector(producer, configs.NSQ.ReportTopic))
		default:
			logger.Warn("Unknown report sink", logger.String("sink", name))
		}
	}

	logger.Info("Report sinks configured", logger.Int("sinks", len(sinks)))
	return gateway.NewMultiProjector(sinks...)
}
