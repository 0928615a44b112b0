package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dinesmart/cmd"
	httpadapter "dinesmart/internal/adapters/in/http"
	"dinesmart/internal/adapters/in/seed"
	"dinesmart/internal/adapters/out/eventlog"
	"dinesmart/internal/adapters/out/memory"
	"dinesmart/internal/adapters/out/postgres"
	"dinesmart/internal/adapters/out/rabbitmq"
	"dinesmart/internal/core/domain/model/kernel"
	"dinesmart/internal/core/domain/model/table"
	"dinesmart/internal/core/ports"
	"dinesmart/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	publisher, closePublisher := newPublisher(configs, logger)
	defer closePublisher()

	uowFactory := newUnitOfWorkFactory(configs, publisher, logger)
	app := cmd.NewCompositionRoot(configs, uowFactory, newFloorPlan(configs), kernel.NewSystemClock(), logger)

	if configs.SeedFile != "" {
		loaded, err := seed.NewLoader(app.CreateAddMenuItemCommandHandler(), logger).LoadFile(ctx, configs.SeedFile)
		if err != nil {
			log.Fatalf("Error seeding menu: %v", err)
		}
		logger.Info("menu seeded", "file", configs.SeedFile, "items", loaded)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.ParseConfig(os.LookupEnv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

// newPublisher sends order events to RabbitMQ when a broker is configured
// and to the log otherwise.
func newPublisher(configs cmd.Config, logger *slog.Logger) (ports.OrderEventPublisher, func()) {
	if configs.AMQPURL == "" {
		return eventlog.NewPublisher(logger), func() {}
	}

	publisher, err := rabbitmq.Dial(configs.AMQPURL, configs.AMQPExchange)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("closing rabbitmq publisher", "error", err)
		}
	}
}

// newFloorPlan reads the tables from the seed file. Without one the floor
// has no tables.
func newFloorPlan(configs cmd.Config) *memory.FloorPlan {
	var tables []table.Table
	if configs.SeedFile != "" {
		var err error
		if tables, err = seed.ReadFloorPlanFile(configs.SeedFile); err != nil {
			log.Fatalf("Error reading floor plan: %v", err)
		}
	}

	plan, err := memory.NewFloorPlan(tables...)
	if err != nil {
		log.Fatalf("Error building floor plan: %v", err)
	}
	return plan
}

func newUnitOfWorkFactory(
	configs cmd.Config,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ports.UnitOfWorkFactory {
	if configs.Storage == cmd.StorageMemory {
		return memory.NewUnitOfWorkFactory(memory.NewStore(), publisher, logger)
	}

	db, err := postgres.Open(configs.Connection())
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return postgres.NewGormUnitOfWorkFactory(db, publisher, logger)
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		log.Fatalf("Error loading swagger spec: %v", err)
	}
	validator, err := httpadapter.RequestValidator(swagger)
	if err != nil {
		log.Fatalf("Error building request validator: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(logger))
	if configs.HTTPRateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(configs.HTTPRateLimit))))
	}
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if err = httpadapter.RegisterDocs(e, swagger); err != nil {
		log.Fatalf("Error registering docs: %v", err)
	}

	servers.RegisterHandlers(e, app.CreateHTTPServer())

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	})
}
