package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-warga-nlp/internal/analyzer/config"
	delivery "golang-warga-nlp/internal/analyzer/delivery/http"
	_ "golang-warga-nlp/internal/analyzer/docs"
	"golang-warga-nlp/internal/analyzer/dto"
	"golang-warga-nlp/internal/analyzer/repository"
	"golang-warga-nlp/internal/analyzer/service"
	"golang-warga-nlp/pkg/logger"
	"golang-warga-nlp/pkg/redis"

	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var (
	configPath      string
	analyzeFile     string
	analyzeTask     string
	analyzeCtx      string
	analyzeMinified bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the NLP HTTP service",
	Run:   runServe,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyzes a text file and prints the result as JSON",
	RunE:  runAnalyze,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	appLogger.Info("Starting NLP Service", logger.StringField("name", cfg.App.Name), logger.StringField("version", cfg.App.Version))

	// Initialize Redis only when async jobs are enabled
	var jobSvc service.JobService
	if cfg.Redis.Enabled {
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
		jobSvc = service.NewJobService(cfg, appLogger, redisClient.Client)
	}

	// Initialize services
	analysisSvc := service.NewAnalysisService(cfg, appLogger, service.DefaultStrategies(cfg.NLP.SummarySentences))
	sourceRepo := repository.NewSourceRepository(cfg.Crawler, appLogger)
	crawlerSvc := service.NewCrawlerService(appLogger, sourceRepo, analysisSvc)

	// Initialize Echo server and routes
	e := delivery.NewServer(cfg, appLogger)
	delivery.RegisterAPIRoutes(e, cfg,
		delivery.NewNLPHandler(analysisSvc, jobSvc, appLogger),
		delivery.NewCrawlerHandler(crawlerSvc, appLogger),
	)
	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.StringField("address", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = appLogger.Sync() }()

	text, err := readInput(cmd.InOrStdin(), analyzeFile)
	if err != nil {
		return err
	}

	analysisSvc := service.NewAnalysisService(cfg, appLogger, service.DefaultStrategies(cfg.NLP.SummarySentences))
	output, err := analysisSvc.Analyze(cmd.Context(), &dto.AnalyzeRequest{
		Text:    text,
		Context: analyzeCtx,
		Task:    analyzeTask,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	if !analyzeMinified {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(output.Data)
}

// readInput reads the whole file, or stdin when path is empty or "-".
func readInput(stdin io.Reader, path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(b), nil
}

// @title Warga NLP API
// @version 1.0
// @description Indonesian text analysis for neighbourhood (RT) reports: summarization, sentiment, entity extraction and conclusions.
// @BasePath /api
func main() {
	rootCmd := &cobra.Command{
		Use:          "nlp-service",
		Short:        "Indonesian NLP analysis service",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-nlp.yaml", "Path to the configuration file")

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "-", "Text file to analyze, - for stdin")
	analyzeCmd.Flags().StringVarP(&analyzeTask, "task", "t", "full", "Task: summarization, sentiment, ner or full")
	analyzeCmd.Flags().StringVar(&analyzeCtx, "context", "general", "Context: general, keuangan, keamanan or administrasi")
	analyzeCmd.Flags().BoolVar(&analyzeMinified, "compact", false, "Print compact JSON")

	rootCmd.AddCommand(serveCmd, analyzeCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing nlp-service CLI: %s\n", err)
		os.Exit(1)
	}
}
