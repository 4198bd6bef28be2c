// NOCForge server: ingests network alerts over HTTP, runs them through the
// AI agent workflow, and streams agent activity to operators over WebSocket.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/nocforge/nocforge/pkg/agent/executor"
	"github.com/nocforge/nocforge/pkg/api"
	"github.com/nocforge/nocforge/pkg/cleanup"
	"github.com/nocforge/nocforge/pkg/config"
	"github.com/nocforge/nocforge/pkg/database"
	"github.com/nocforge/nocforge/pkg/events"
	"github.com/nocforge/nocforge/pkg/llm"
	"github.com/nocforge/nocforge/pkg/queue"
	"github.com/nocforge/nocforge/pkg/services"
	"github.com/nocforge/nocforge/pkg/tools"
	"github.com/nocforge/nocforge/pkg/version"
	"github.com/nocforge/nocforge/pkg/workflow"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configPath := flag.String("config",
		getEnv("CONFIG_FILE", "./deploy/config/config.yaml"),
		"Path to configuration file")
	flag.Parse()

	// Load .env from the config directory so secrets referenced by the YAML
	// are in the environment before expansion.
	envPath := filepath.Join(filepath.Dir(*configPath), ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting NOCForge",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config", *configPath)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	alertService := services.NewAlertService(dbClient.Client)
	sessionService := services.NewSessionService(dbClient.Client)
	messageService := services.NewMessageService(dbClient.Client)
	actionService := services.NewActionService(dbClient.Client)
	approvalService := services.NewApprovalService(dbClient.Client)
	incidentService := services.NewIncidentService(dbClient.Client)
	workflowService := services.NewWorkflowService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. Streaming infrastructure
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	catchupQuerier := events.NewEventServiceAdapter(eventService)
	connManager := events.NewConnectionManager(catchupQuerier, 10*time.Second)

	// NotifyListener holds a dedicated pgx connection for LISTEN
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NotifyListener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Streaming infrastructure initialized")

	// 5. Tool registry wired to the device and knowledge backends
	registry := tools.NewRegistry()
	if err := tools.RegisterCatalog(registry, tools.CatalogDeps{
		Devices:   tools.NewHTTPDeviceBackend(cfg.Backends.DeviceURL, os.Getenv("DEVICE_API_KEY"), 0),
		Knowledge: tools.NewHTTPKnowledgeBackend(cfg.Backends.KnowledgeURL, os.Getenv("KNOWLEDGE_API_KEY"), 0),
		Incidents: incidentService,
	}); err != nil {
		slog.Error("Failed to register tool catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("Tool catalog registered", "tools", len(registry.List()))

	// 6. LLM client and agent executor
	llmClient, err := llm.New(&cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "provider", cfg.LLM.ActiveProvider, "error", err)
		os.Exit(1)
	}
	slog.Info("LLM client initialized", "provider", cfg.LLM.ActiveProvider, "model", llmClient.Model())

	store := services.NewExecutorStore(sessionService, messageService, actionService, approvalService)
	agentExecutor := executor.New(llmClient, registry, store, executor.Config{
		IterationTimeout: cfg.Agents.RunTimeout,
		ApprovalTTL:      time.Duration(cfg.Approvals.ExpiryMinutes) * time.Minute,
	})

	// Every executor event also lands on the session's WebSocket channel.
	runner := events.NewPublishingRunner(agentExecutor, store, eventPublisher)

	// 7. Workflow engine and worker pool
	engine := workflow.NewEngine(
		services.NewWorkflowAlertStore(alertService),
		services.NewWorkflowSessionFactory(sessionService),
		incidentService,
		workflowService,
		runner,
		store,
	)

	workerPool := queue.NewWorkerPool(podID, &cfg.Queue, &cfg.Approvals, alertService, engine, approvalService)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// Event log retention
	cleanupService := cleanup.NewService(&cfg.Retention, eventService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 8. HTTP server
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	server := api.NewServer(api.Deps{
		DB:        dbClient,
		Alerts:    alertService,
		Sessions:  sessionService,
		Approvals: approvalService,
		Incidents: incidentService,
		Workflows: workflowService,
		Runner:    runner,
		Resumer:   engine,
		Publisher: eventPublisher,
		Manager:   connManager,
	})

	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("NOCForge started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop claiming new alerts, finish active work,
	// then drain HTTP.
	workerPool.Stop()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
