package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketchat/auth"
	"marketchat/domain/event"
	"marketchat/infrastructure/grpc/server"
	"marketchat/internal"
	"marketchat/moderation"
	"marketchat/observability"
	"marketchat/repositories"
	"marketchat/runtime/workers"
	"marketchat/services"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	sdkgrpc "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal or a fatal error.
// Returning instead of exiting lets the deferred closes flush badger and bluge.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}
	policy, err := moderation.ParsePolicy(config.MessagePolicy)
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Storage (BadgerDB + Bluge)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	messageRepository := repositories.NewMessageRepository(db, logger, config.LimitMessages)
	userRepository := repositories.NewUserRepository(db)
	blocklistRepository := repositories.NewBlocklistRepository(db, logger)
	searchIndex := repositories.NewSearchIndex(blugeWriter, logger)

	// 3. Blocklist: the seed file is merged into what moderators already added
	if config.BlocklistFile != "" {
		seed, err := moderation.LoadBlocklistFile(config.BlocklistFile)
		if err != nil {
			return exitConfig, err
		}
		if err := blocklistRepository.Add(seed...); err != nil {
			return exitRuntime, fmt.Errorf("blocklist seed failed: %w", err)
		}
	}
	words, err := blocklistRepository.All()
	if err != nil {
		return exitRuntime, fmt.Errorf("blocklist loading failed: %w", err)
	}
	moderator, err := moderation.NewModerator(words, charReplacement, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("moderator init failed: %w", err)
	}

	// 4. Audit pipeline under supervision
	auditChan := make(chan event.Event, config.BufferSize)
	censoredHandler := event.NewCensoredHandler(logger)
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	monitoring := observability.NewMonitoringWorker(logger, config.MetricInterval,
		func() (int, int) { return len(auditChan), cap(auditChan) })
	sup.Add(
		workers.NewAuditWorker(logger, auditChan, censoredHandler, event.NewSecurityHandler(logger)),
		monitoring,
	)

	// 5. Services
	issuer := auth.NewTokenIssuer(config.JWTSecret, config.AuthTokenDuration)
	messagingService := services.NewMessagingService(logger, policy, moderator, charReplacement,
		messageRepository, blocklistRepository, searchIndex, auditChan)
	authService := services.NewAuthService(logger, userRepository, issuer, auditChan)
	if config.AdminEmail != "" {
		if err := authService.SeedAdmin(config.AdminEmail, config.AdminPassword); err != nil {
			return exitConfig, fmt.Errorf("admin account seeding failed: %w", err)
		}
	}

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 2)
	supervisorDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supervisorDone)
	}()

	var debugServer *http.Server
	if logger.Enabled(ctx, slog.LevelDebug) {
		debugServer = internal.NewDebugServer(logger, db, config.DebugPort, "/inspect", repositories.InspectRecord, func() map[string]any {
			stats := censoredHandler.Stats()
			return map[string]any{
				"redacted_messages": stats.Messages,
				"rules":             stats.Rules,
				"words":             stats.Words,
				"process":           monitoring.Latest(),
				"worker_restarts":   sup.Restarts(),
			}
		})
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort))
		go func() {
			if err := debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("Debug server stopped", "error", err)
			}
		}()
	}

	// 7. gRPC Server
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	s := server.New(issuer,
		server.NewMessagingServer(logger, messagingService),
		server.NewAuthServer(authService, issuer),
		grpc.ChainUnaryInterceptor(sdkgrpc.UnaryLoggingInterceptor(logger)),
	)

	go func() {
		logger.Info("Starting gRPC server", "address", address, "policy", policy.Name(), "blocked_words", len(words))
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("gRPC exposed service", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 9. Graceful shutdown: no new message can reach the audit channel once gRPC is stopped
	logger.Info("Shutting down gracefully...")
	s.GracefulStop()
	if debugServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = debugServer.Shutdown(shutdownCtx)
	}
	sup.Stop()
	<-supervisorDone
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}
