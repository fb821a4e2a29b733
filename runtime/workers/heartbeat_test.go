package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestHeartbeatWorker_ReportsEngineAndProcess(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given an engine owning two schedules followed by three clients
	stats := func() EngineStats { return EngineStats{ActiveSchedules: 2, Subscribers: 3} }
	heartbeat := NewHeartbeatWorker(log, stats, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = heartbeat.Run(ctx) }()

	// Then the beat carries both the engine figures and the process footprint
	req.Eventually(func() bool { return !heartbeat.Latest().At.IsZero() }, time.Second, 10*time.Millisecond)
	latest := heartbeat.Latest()
	req.Equal(2, latest.ActiveSchedules)
	req.Equal(3, latest.Subscribers)
	req.NotZero(latest.PID)
	req.NotZero(latest.RAMBytes)
}
