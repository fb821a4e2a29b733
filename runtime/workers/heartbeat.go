package workers

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"timeline-lab/contract"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*HeartbeatWorker)(nil)

// EngineStats is what the engine reports about itself on every beat.
type EngineStats struct {
	ActiveSchedules int
	Subscribers     int
	PendingRequests int
}

// NodeStatus is one heartbeat: engine load plus the process footprint.
type NodeStatus struct {
	EngineStats
	PID        int
	PIDStatus  string
	CPUPercent float64
	RAMBytes   uint64
	At         time.Time
}

type StatsFunc func() EngineStats

// HeartbeatWorker logs the health of the master at a fixed interval so an
// operator can tell a quiet day from a stuck one.
type HeartbeatWorker struct {
	log      *slog.Logger
	stats    StatsFunc
	interval time.Duration
	mu       sync.RWMutex
	latest   NodeStatus
}

func NewHeartbeatWorker(log *slog.Logger, stats StatsFunc, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, stats: stats, interval: interval}
}

func (w *HeartbeatWorker) GetName() contract.WorkerName {
	return "heartbeat"
}

// Run executes the main loop of the worker, sampling the engine and the
// process (CPU, RAM, status) on every tick.
func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			status := w.beat(p)
			w.log.Info("Heartbeat",
				"active_schedules", status.ActiveSchedules,
				"subscribers", status.Subscribers,
				"pending_requests", status.PendingRequests,
				"pid_status", status.PIDStatus,
				"cpu_percent", status.CPUPercent,
				"ram_bytes", status.RAMBytes)
		}
	}
}

// Latest returns the last recorded beat, zero before the first tick.
func (w *HeartbeatWorker) Latest() NodeStatus {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.latest
}

func (w *HeartbeatWorker) beat(p *process.Process) NodeStatus {
	status := NodeStatus{EngineStats: w.stats(), PID: int(p.Pid), At: time.Now().UTC()}
	rss, cpu, pidStatus, err := selfStats(p)
	if err != nil {
		// engine figures are still worth reporting
		w.log.Error("Failed to collect self stats", "err", err)
	} else {
		status.RAMBytes, status.CPUPercent, status.PIDStatus = rss, cpu, pidStatus
	}
	w.mu.Lock()
	w.latest = status
	w.mu.Unlock()
	return status
}

// selfStats retrieves technical metrics (Memory, CPU, and OS Status) for the given process.
func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
