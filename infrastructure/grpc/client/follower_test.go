package client_test

import (
	"context"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"timeline-lab/auth"
	"timeline-lab/domain/timeline"
	"timeline-lab/errors"
	"timeline-lab/infrastructure/directory"
	"timeline-lab/infrastructure/grpc/client"
	"timeline-lab/infrastructure/grpc/server"
	"timeline-lab/internal/testkit"
	"timeline-lab/projection"
	pb "timeline-lab/proto/timeline/v1"
	"timeline-lab/runtime"
	"timeline-lab/runtime/workers"
	"timeline-lab/services"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type harness struct {
	orchestrator *runtime.Orchestrator
	tokens       *auth.TokenManager
	client       pb.TimelineServiceClient
	log          *slog.Logger
}

func startHarness(t *testing.T) *harness {
	t.Helper()
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	orchestrator := runtime.NewOrchestrator(log,
		workers.NewSupervisor(log), runtime.NewRegistry(),
		testkit.NewScheduleStore(testkit.WeddingDay()), directory.New(testkit.Actors()...),
		nil, 16, 16, 100*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = orchestrator.Start(ctx) }()

	tokens, err := auth.NewTokenManager(strings.Repeat("s", 32))
	req.NoError(err)
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(auth.UnaryInterceptor(tokens)),
		grpc.ChainStreamInterceptor(auth.StreamInterceptor(tokens)),
	)
	pb.RegisterTimelineServiceServer(grpcServer, server.NewTimelineServer(log, services.NewTimelineService(orchestrator)))
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	req.NoError(err)
	go func() { _ = grpcServer.Serve(lis) }()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	req.NoError(err)

	t.Cleanup(func() {
		_ = conn.Close()
		grpcServer.Stop()
		orchestrator.Stop()
		cancel()
	})
	return &harness{orchestrator: orchestrator, tokens: tokens, client: pb.NewTimelineServiceClient(conn), log: log}
}

func (h *harness) follower(t *testing.T, actorRef string) (*client.Follower, *projection.Reconciler) {
	t.Helper()
	token, err := h.tokens.GenerateToken(actorRef, time.Hour)
	require.NoError(t, err)
	reconciler := projection.NewReconciler(h.log)
	follower := client.NewFollower(h.log, h.client, reconciler, testkit.ScheduleID, token).
		WithRetryInterval(10 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = follower.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return follower, reconciler
}

func TestFollower_ConvergesWithServer(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	h := startHarness(t)

	// Given the coordinator and the photographer follow the day
	coordinator, coordinatorView := h.follower(t, testkit.Coordinator.Ref)
	photographer, photographerView := h.follower(t, testkit.Photographer.Ref)
	req.Eventually(func() bool { return coordinatorView.Synced() && photographerView.Synced() },
		2*time.Second, 10*time.Millisecond)

	// When they both act on the schedule
	_, err := coordinator.Submit(ctx, timeline.ReportDelayIntent{EventID: "ceremony", Minutes: 15, Reason: "Bride is late", Cascade: true})
	req.NoError(err)
	deltas, err := photographer.Submit(ctx, timeline.ToggleChecklistIntent{EventID: "photos", ItemID: "family", Completed: true})
	req.NoError(err)
	req.Len(deltas, 1)
	_, err = coordinator.Submit(ctx, timeline.BroadcastIntent{Text: "Photos at 10:45", Priority: timeline.PriorityHigh})
	req.NoError(err)

	// Then both local copies converge on the authoritative schedule
	expected, err := h.orchestrator.Snapshot(ctx, testkit.ScheduleID)
	req.NoError(err)
	req.Equal(uint64(5), expected.Version)
	for _, view := range []*projection.Reconciler{coordinatorView, photographerView} {
		req.Eventually(func() bool { return view.Day().Version == expected.Version && len(view.Messages()) == 1 },
			2*time.Second, 10*time.Millisecond)
		day := view.Day()
		photos, err := day.Event("photos")
		req.NoError(err)
		req.True(testkit.At(10, 45).Equal(photos.StartTime))
		req.True(photos.Checklist[0].Completed)
		req.Equal("Photos at 10:45", view.Messages()[0].Text)
	}
}

func TestFollower_ErrorsCrossTheWire(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	h := startHarness(t)
	guest, _ := h.follower(t, testkit.Guest.Ref)
	stranger, _ := h.follower(t, "mallory")
	coordinator, _ := h.follower(t, testkit.Coordinator.Ref)

	_, err := guest.Submit(ctx, timeline.StartIntent{EventID: "ceremony"})
	req.ErrorIs(err, errors.ErrUnauthorized)
	_, err = stranger.Submit(ctx, timeline.StartIntent{EventID: "ceremony"})
	req.ErrorIs(err, errors.ErrUnauthorized)
	_, err = coordinator.Submit(ctx, timeline.CompleteIntent{EventID: "ceremony"})
	req.ErrorIs(err, errors.ErrInvalidTransition)
	_, err = coordinator.Submit(ctx, timeline.StartIntent{EventID: "fireworks"})
	req.ErrorIs(err, errors.ErrNotFound)
	_, err = coordinator.Submit(ctx, timeline.ReportDelayIntent{EventID: "ceremony", Minutes: -1})
	req.ErrorIs(err, errors.ErrInvariantViolation)
}

func TestServer_RequiresToken(t *testing.T) {
	req := require.New(t)
	h := startHarness(t)

	_, err := h.client.Snapshot(context.Background(), &pb.SnapshotRequest{ScheduleId: testkit.ScheduleID})

	req.Equal(codes.Unauthenticated, status.Code(err))
}

func TestFollower_ResyncsAfterRelease(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	h := startHarness(t)
	coordinator, view := h.follower(t, testkit.Coordinator.Ref)
	req.Eventually(view.Synced, 2*time.Second, 10*time.Millisecond)
	_, err := coordinator.Submit(ctx, timeline.StartIntent{EventID: "ceremony"})
	req.NoError(err)

	// When the server drops every subscriber of the schedule
	h.orchestrator.Release(testkit.ScheduleID)

	// Then the follower resubscribes from a fresh snapshot and keeps up
	req.Eventually(func() bool { return coordinator.Resyncs() >= 1 && view.Synced() }, 2*time.Second, 10*time.Millisecond)
	req.Eventually(func() bool {
		_, err := coordinator.Submit(ctx, timeline.CompleteIntent{EventID: "ceremony"})
		return err == nil
	}, 2*time.Second, 50*time.Millisecond)
	req.Eventually(func() bool { return view.Day().Version == 2 }, 2*time.Second, 10*time.Millisecond)
}
