package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/khoahotran/profile-directory/adapters/event"
	submissionUC "github.com/khoahotran/profile-directory/internal/application/usecase/submission"
	"github.com/khoahotran/profile-directory/internal/config"
	"github.com/khoahotran/profile-directory/pkg/logger"
)

func main() {
	fmt.Println("Starting Profile Directory Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env).With(zap.String("component", "worker"))
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker Use Case
	processor := submissionUC.NewSubmissionUseCase(event.NewLogNotifier(appLogger), appLogger)

	// Kafka Consumer
	consumer, err := event.NewKafkaConsumer(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize Kafka consumer", err)
	}
	defer consumer.Close()

	appLogger.Info("Worker listening",
		zap.Strings("topics", []string{event.TopicContactSubmissions, event.TopicBookingSubmissions}),
		zap.String("group_id", cfg.Kafka.GroupID),
	)

	if err := consumer.Run(ctx, processor.ProcessEvent); err != nil {
		consumer.Close()
		appLogger.Fatal("Worker stopped with error", err)
	}
	appLogger.Info("Worker stopped")
}
