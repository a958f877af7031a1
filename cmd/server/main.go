package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/profile-directory/adapters/event"
	httpAdapter "github.com/khoahotran/profile-directory/adapters/http"
	"github.com/khoahotran/profile-directory/adapters/persistence"
	profileUC "github.com/khoahotran/profile-directory/internal/application/usecase/profile"
	searchUC "github.com/khoahotran/profile-directory/internal/application/usecase/search"
	settingsUC "github.com/khoahotran/profile-directory/internal/application/usecase/settings"
	submissionUC "github.com/khoahotran/profile-directory/internal/application/usecase/submission"
	"github.com/khoahotran/profile-directory/internal/config"
	"github.com/khoahotran/profile-directory/pkg/logger"
	"github.com/khoahotran/profile-directory/pkg/tracing"
)

func main() {
	fmt.Println("Start Profile Directory API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(cfg, appLogger, cfg.Tracing.ServiceName)
	if err != nil {
		appLogger.Fatal("Failed to initialize tracing", err)
	}

	// Stores
	seed, err := persistence.LoadSeed(cfg.Seed.File)
	if err != nil {
		appLogger.Fatal("Failed to load seed data", err, zap.String("file", cfg.Seed.File))
	}
	profileRepo := persistence.NewMemoryProfileRepo(seed.Profiles, appLogger)
	settingsRepo := persistence.NewMemorySettingsRepo(seed.Settings, appLogger)

	// Notifier
	notifier, closeNotifier, err := event.NewNotifier(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize notifier", err, zap.String("driver", cfg.Notifier.Driver))
	}

	// Use Cases
	submissionUseCase := submissionUC.NewSubmissionUseCase(notifier, appLogger)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Health: httpAdapter.NewHealthHandler(cfg.App.Env),
		Profile: httpAdapter.NewProfileHandler(
			profileUC.NewListProfilesUseCase(profileRepo, appLogger),
			profileUC.NewGetProfileUseCase(profileRepo, appLogger),
			profileUC.NewCreateProfileUseCase(profileRepo, appLogger),
			profileUC.NewUpdateProfileUseCase(profileRepo, appLogger),
			profileUC.NewDeleteProfileUseCase(profileRepo, appLogger),
			appLogger,
		),
		Search:     httpAdapter.NewSearchHandler(searchUC.NewSearchUseCase(profileRepo, appLogger), appLogger),
		Settings:   httpAdapter.NewSettingsHandler(settingsUC.NewSettingsUseCase(settingsRepo, appLogger), appLogger),
		Submission: httpAdapter.NewSubmissionHandler(submissionUseCase, appLogger),
	}

	router, err := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CORSOrigins: cfg.CORS.Origins,
		BodyLimit:   cfg.App.BodyLimit,
		ServiceName: cfg.Tracing.ServiceName,
	}, handlers, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to build router", err)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		appLogger.Info("Server running",
			zap.String("port", cfg.App.Port),
			zap.String("environment", cfg.App.Env),
			zap.String("health_url", fmt.Sprintf("http://localhost:%s/health", cfg.App.Port)),
			zap.String("api_base_url", fmt.Sprintf("http://localhost:%s/api", cfg.App.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	stop()
	appLogger.Info("Shutdown signal received, draining connections", zap.Duration("timeout", cfg.App.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
	submissionUseCase.Wait()
	closeNotifier()
	if err := shutdownTracing(shutdownCtx); err != nil {
		appLogger.Warn("Tracer shutdown failed", zap.Error(err))
	}

	appLogger.Info("Server stopped")
}
