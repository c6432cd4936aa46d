package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang-warga-nlp/internal/analyzer/config"
	"golang-warga-nlp/internal/analyzer/delivery/consumer"
	"golang-warga-nlp/internal/analyzer/service"
	"golang-warga-nlp/pkg/common"
	"golang-warga-nlp/pkg/logger"
	"golang-warga-nlp/pkg/redis"

	"github.com/spf13/cobra"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the analysis worker",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Analysis Worker", logger.StringField("name", cfg.App.Name))

	// Initialize Redis
	redisClient, err := redis.NewClient(redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	// MKSTREAM creates the stream if it doesn't exist
	if err := redisClient.EnsureGroup(ctx, common.RedisStreamAnalysisRequest, common.RedisStreamGroup); err != nil {
		appLogger.Fatal("Failed to create consumer group", logger.ErrorField(err))
	}

	// Initialize services
	analysisSvc := service.NewAnalysisService(cfg, appLogger, service.DefaultStrategies(cfg.NLP.SummarySentences))
	streamSvc := service.NewStreamService(cfg, appLogger, redisClient.Client, analysisSvc)

	// Initialize and start the Redis consumer
	redisConsumer := consumer.NewRedisConsumer(cfg, streamSvc, appLogger)
	redisConsumer.Start(ctx)

	appLogger.Info("Analysis worker started. Waiting for tasks...")

	// Wait for interrupt signal to gracefully shut down the worker
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down analysis worker...")
	cancel()
	redisConsumer.Stop()
	appLogger.Info("Analysis worker stopped.")
}

func main() {
	rootCmd := &cobra.Command{Use: "analysis-worker"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-nlp.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing analysis-worker CLI: %s\n", err)
		os.Exit(1)
	}
}
