package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"timeline-lab/auth"
	"timeline-lab/contract"
	"timeline-lab/domain/timeline"
	"timeline-lab/infrastructure/directory"
	"timeline-lab/infrastructure/grpc/server"
	"timeline-lab/infrastructure/storage"
	"timeline-lab/infrastructure/wire"
	"timeline-lab/internal"
	pb "timeline-lab/proto/timeline/v1"
	"timeline-lab/runtime"
	"timeline-lab/runtime/workers"
	"timeline-lab/services"
	"timeline-lab/sink"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Master terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Returning an exit code instead of calling os.Exit lets every defer (database
// cleanup first) run before the process ends.
func run() (int, error) {
	// 1. Configuration & Logger
	// A missing .env is fine: the environment may already be set.
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx := context.Background()

	actors, err := directory.LoadFile(config.ActorDirectoryPath)
	if err != nil {
		return exitConfig, err
	}
	logger.Info("Actor directory loaded", "actors", actors.Len())

	tokens, err := auth.NewTokenManager(config.JWTSecret)
	if err != nil {
		return exitConfig, err
	}

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		url := fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint)
		logger.Info("Debug Badger inspector available", "url", url)
		database.StartDebugServer(db, config.DebugPort, endpoint, ScheduleMapper)
	}

	defer func() {
		// Defer ensures the database lock is released and buffers are flushed before the function returns.
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Setup Supervision & Orchestration
	sup := workers.NewSupervisor(logger).WithRestartInterval(config.RestartInterval)
	registry := runtime.NewRegistry()
	scheduleRepository := storage.NewScheduleRepository(db, logger)
	journalRepository := storage.NewJournalRepository(db, logger, nil)
	journal := sink.NewJournalSink(logger, journalRepository, config.JournalBufferSize)

	orchestrator := runtime.NewOrchestrator(
		logger, sup, registry,
		scheduleRepository, actors,
		[]contract.EventSink{sink.NewAuditSink(logger), journal},
		config.BufferSize, config.SubscriberBufferSize, config.SinkTimeout,
	)

	housekeeper, err := workers.NewHousekeeper(logger, config.HousekeepingCron, orchestrator.ReleaseBefore)
	if err != nil {
		return exitConfig, fmt.Errorf("invalid HOUSEKEEPING_CRON %q: %w", config.HousekeepingCron, err)
	}
	sup.Add(journal, housekeeper, workers.NewHeartbeatWorker(logger, orchestrator.Stats, config.HeartbeatInterval))

	// 4. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Error (gRPC & Orchestrator)
	errChan := make(chan error, 2)

	// 5. Start the Engine (schedule owners and housekeeping)
	go func() {
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	// 6. gRPC Server Setup
	address := config.Address()
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(logger),
			auth.UnaryInterceptor(tokens),
		),
		grpc.ChainStreamInterceptor(
			auth.StreamInterceptor(tokens),
		))
	timelineService := services.NewTimelineService(orchestrator)
	pb.RegisterTimelineServiceServer(s, server.NewTimelineServer(logger, timelineService))

	// Use an error channel to capture Serve() issues asynchronously.
	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("📡 gRPC exposed services", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. Wait for Stop or Error
	// The execution blocks here until either a signal is received or the server crashes.
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 8. Final Cleanup (Graceful Shutdown)
	// Owners are released first: every subscription ends and the streams can drain.
	logger.Info("Shutting down gracefully...")
	orchestrator.Stop()
	s.GracefulStop()
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.INFO)
	}

	return options
}

// ScheduleMapper renders schedule snapshots and journaled deltas in the
// Badger inspector. Date index entries have no value and keep the default
// rendering.
func ScheduleMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	switch {
	case strings.HasPrefix(key, "journal:"):
		var envPb pb.Envelope
		if err := proto.Unmarshal(val, &envPb); err != nil {
			row.Detail = "Error: unmarshal failed"
			return row
		}
		row.Type = "DELTA"
		row.Detail = fmt.Sprintf("#%d %s by %s", envPb.GetSequence(), envPb.GetKind(), envPb.GetActorRef())
		return row
	case !strings.HasPrefix(key, "schedule:"):
		row.Type = "INDEX"
		return row
	}

	var dayPb pb.ScheduleDay
	if err := proto.Unmarshal(val, &dayPb); err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}
	day := wire.ScheduleFromPb(&dayPb)
	row.Type = "SCHEDULE"
	counts := lo.CountValuesBy(day.Events, func(e timeline.TimelineEvent) timeline.Status { return e.Status })
	row.Detail = fmt.Sprintf("%s v%d: %d events", day.Date.Format(time.DateOnly), day.Version, len(day.Events))
	row.Scores = fmt.Sprintf("done:%d live:%d late:%d todo:%d",
		counts[timeline.StatusCompleted], counts[timeline.StatusInProgress],
		counts[timeline.StatusDelayed], counts[timeline.StatusNotStarted])
	return row
}
