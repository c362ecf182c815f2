package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/shenikar/eagle_eye/internal/config"
	"github.com/shenikar/eagle_eye/internal/dashboard"
	"github.com/shenikar/eagle_eye/internal/forensic"
	v1 "github.com/shenikar/eagle_eye/internal/handler/http/v1"
	"github.com/shenikar/eagle_eye/internal/models"
	"github.com/shenikar/eagle_eye/internal/narrative"
	"github.com/shenikar/eagle_eye/internal/registry"
	"github.com/shenikar/eagle_eye/internal/repository"
	"github.com/shenikar/eagle_eye/internal/service"
	"github.com/shenikar/eagle_eye/internal/simulator"
	"github.com/shenikar/eagle_eye/internal/webhook"
	"github.com/shenikar/eagle_eye/pkg/logger"
	redisclient "github.com/shenikar/eagle_eye/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/eagle_eye/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// version задается через ldflags при сборке
var version = "dev"

// @title Eagle Eye Surveillance API
// @version 1.0
// @description Operator API of the Eagle Eye surveillance dashboard: cameras, incident history, critical alerts and forensic plate search.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "eagle-eye",
		Short:        "Surveillance dashboard core: simulated cameras, incident router and alert presenter",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API with the camera fleet and webhook worker",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	})

	var (
		duration time.Duration
		seed     uint64
	)
	simulate := &cobra.Command{
		Use:   "simulate",
		Short: "Run the camera fleet and router headless, then print dashboard stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd.Context(), duration, seed)
		},
	}
	simulate.Flags().DurationVar(&duration, "duration", time.Minute, "how long to run the simulation")
	simulate.Flags().Uint64Var(&seed, "seed", 0, "simulator seed, overrides SIMULATOR_SEED")
	root.AddCommand(simulate)

	return root
}

// core - компоненты, общие для serve и simulate
type core struct {
	fleet     *simulator.Fleet
	generator *narrative.Generator
}

func buildCore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*core, error) {
	cameras := registry.Default(cfg.CameraCount)
	if cfg.CameraRegistryPath != "" {
		loaded, err := registry.Load(cfg.CameraRegistryPath)
		if err != nil {
			return nil, err
		}
		cameras = loaded
	}
	log.WithField("cameras", len(cameras)).Info("Camera registry loaded")

	simCfg := simulator.DefaultConfig()
	simCfg.PredictiveChance = cfg.PredictiveChance
	simCfg.ForwardThreshold = cfg.ForwardConfidenceThreshold
	if cfg.SimulatorSeed != 0 {
		simCfg.Seed = cfg.SimulatorSeed
	}

	transport, err := buildTransport(ctx, cfg)
	if err != nil {
		return nil, err
	}
	policy := narrative.Policy{Attempts: cfg.NarrativeRetries, Backoff: cfg.NarrativeBackoff}
	log.WithField("provider", cfg.NarrativeProvider).Info("Narrative generator configured")

	return &core{
		fleet:     simulator.NewFleet(cameras, simCfg, log),
		generator: narrative.NewGenerator(transport, policy, log),
	}, nil
}

func buildTransport(ctx context.Context, cfg *config.Config) (narrative.Transport, error) {
	switch cfg.NarrativeProvider {
	case config.NarrativeProviderChat:
		return narrative.NewChatTransport(cfg.NarrativeAPIURL, cfg.NarrativeAPIKey, cfg.NarrativeModel, cfg.NarrativeTimeout), nil
	case config.NarrativeProviderBedrock:
		transport, err := narrative.NewBedrockTransport(ctx, narrative.BedrockOptions{
			Region:          cfg.AWSRegion,
			ModelID:         cfg.NarrativeModel,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		return transport, nil
	}
	return nil, nil
}

func runServe(parent context.Context) error {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	c, err := buildCore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build core: %w", err)
	}

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		return err
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	workerDone := webhookWorker.Start(ctx)

	// Инициализация репозиториев
	sightingRepo := repository.NewSightingRepository(redisClient, cfg.ForensicCacheTTL)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(dashboard.NewState(), c.generator, webhookPublisher, log)
	forensicService := service.NewForensicService(sightingRepo, forensic.NewGenerator(uint64(time.Now().UnixNano())), log)
	cameraService := service.NewCameraService(c.fleet, log)

	// Запуск камер и маршрутизатора
	routerDone := make(chan struct{})
	go func() {
		defer close(routerDone)
		incidentService.Run(ctx, c.fleet.Start(ctx))
	}()

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, forensicService, cameraService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	cancel()
	<-routerDone
	incidentService.Close()
	<-workerDone

	log.Info("Server gracefully stopped")
	return nil
}

func runSimulate(parent context.Context, duration time.Duration, seed uint64) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if seed != 0 {
		cfg.SimulatorSeed = seed
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	c, err := buildCore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build core: %w", err)
	}

	// без Redis оповещения не публикуются
	incidentService := service.NewIncidentService(dashboard.NewState(), c.generator, nil, log)

	log.WithField("duration", duration).Info("Headless simulation started")
	incidentService.Run(ctx, c.fleet.Start(ctx))
	incidentService.Close()

	return printStats(incidentService.Stats(context.Background()))
}

func printStats(stats models.DashboardStats) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(stats); err != nil {
		return fmt.Errorf("failed to print stats: %w", err)
	}
	return nil
}
