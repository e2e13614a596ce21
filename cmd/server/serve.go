package main

import (
	"context"
	"errors"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/bizsim/internal/cache"
	"github.com/fadilmartias/bizsim/internal/config"
	"github.com/fadilmartias/bizsim/internal/domain/fiber/handler"
	"github.com/fadilmartias/bizsim/internal/logger"
	"github.com/fadilmartias/bizsim/internal/middleware"
	"github.com/fadilmartias/bizsim/internal/quiz"
	"github.com/fadilmartias/bizsim/internal/repository"
	"github.com/fadilmartias/bizsim/internal/service"
	"github.com/fadilmartias/bizsim/internal/simulation"
	"github.com/fadilmartias/bizsim/internal/usecase"
	"github.com/fadilmartias/bizsim/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appConfig := config.LoadAppConfig()
	llmConfig := config.LoadLLMConfig()
	geminiConfig := config.LoadGeminiConfig()
	simConfig := config.LoadSimulationConfig()

	var db *gorm.DB
	if config.LoadDBConfig().Enabled() {
		var err error
		if db, err = ConnectDB(); err != nil {
			return err
		}
		if err := Migrate(db); err != nil {
			return err
		}
	} else {
		logger.Log.Warn("DB_HOST not set, running in preview mode without persistence")
	}

	provider, err := service.NewProvider(ctx, llmConfig, config.LoadOpenRouterConfig(), geminiConfig)
	switch {
	case errors.Is(err, service.ErrNoProvider):
		logger.Log.Warn("no model API key configured, using templates only", zap.String("provider", llmConfig.Provider))
	case err != nil:
		return err
	}

	var examples simulation.ExampleSource
	if db != nil {
		embedder, err := service.NewEmbedder(ctx, geminiConfig, llmConfig)
		switch {
		case err == nil:
			examples = usecase.NewCaseStudyExamples(repository.NewCaseStudyRepository(db), embedder)
		case !errors.Is(err, service.ErrNoProvider):
			logger.Log.Warn("case study search disabled", zap.Error(err))
		}
	}

	socialProof := cache.NewNoopCache()
	if redisConfig := config.LoadRedisConfig(); redisConfig.Enabled() {
		c, err := cache.NewRedisCache(ctx, redisConfig)
		if err != nil {
			logger.Log.Warn("social proof cache disabled", zap.Error(err))
		} else {
			socialProof = c
		}
	}

	rng := simulation.DefaultRand
	generator := simulation.NewGenerator(provider, rng, simulation.NewGeneratorConfig(simConfig, llmConfig))
	feedback := simulation.NewFeedbackGenerator(provider, examples, rng, llmConfig.RequestTimeout)
	uc := usecase.NewSimulationUsecase(usecase.NewRepositories(db), generator, feedback, socialProof, rng, simConfig)

	app := newApp(appConfig)
	handler.RegisterMetrics(app)
	handler.NewSimulationHandler(uc).RegisterRoutes(app)
	handler.NewSessionHandler(uc).RegisterRoutes(app)
	handler.NewViewHandler(uc).RegisterRoutes(app)
	handler.NewQuizHandler(quiz.NewGenerator(provider, llmConfig.RequestTimeout)).RegisterRoutes(app)

	go monitorGoroutines(ctx)
	go func() {
		<-ctx.Done()
		logger.Log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Log.Error("shutdown", zap.Error(err))
		}
	}()

	logger.Log.Info("server running", zap.String("port", appConfig.Port))
	return app.Listen(appConfig.Port)
}

func newApp(appConfig *config.AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" || code == fiber.StatusInternalServerError {
				message = "Internal Server Error"
			}
			return util.ErrorResponse(c, util.ErrorResponseFormat{Code: code, Message: message}, err)
		},
	})

	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(middleware.Metrics())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))
	return app
}

func monitorGoroutines(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			logger.Log.Debug("active goroutines", zap.Int("count", runtime.NumGoroutine()))
		}
	}
}
