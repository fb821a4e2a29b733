package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"timeline-lab/contract"

	cronlib "github.com/robfig/cron/v3"
)

const defaultHousekeepingTick = time.Minute

var _ contract.Worker = (*Housekeeper)(nil)

// cronParser supports standard 5-field cron and descriptors like "@daily".
var cronParser = cronlib.NewParser(
	cronlib.Minute | cronlib.Hour | cronlib.Dom | cronlib.Month | cronlib.Dow | cronlib.Descriptor,
)

// ReleaseFunc releases every schedule owner whose day is before the given
// time and returns the released schedule ids.
type ReleaseFunc func(before time.Time) []string

// Housekeeper releases the owners of past days on a cron schedule, so a
// long running master does not keep every wedding it ever served in memory.
type Housekeeper struct {
	log      *slog.Logger
	schedule cronlib.Schedule
	release  ReleaseFunc
	tick     time.Duration
	clock    func() time.Time
	mu       sync.Mutex
	next     time.Time
}

func NewHousekeeper(log *slog.Logger, expr string, release ReleaseFunc) (*Housekeeper, error) {
	schedule, err := cronParser.Parse(expr)
	if err != nil {
		return nil, err
	}
	return &Housekeeper{
		log:      log,
		schedule: schedule,
		release:  release,
		tick:     defaultHousekeepingTick,
		clock:    func() time.Time { return time.Now().UTC() },
	}, nil
}

func (h *Housekeeper) WithTick(d time.Duration) *Housekeeper {
	h.tick = d
	return h
}

func (h *Housekeeper) WithClock(clock func() time.Time) *Housekeeper {
	h.clock = clock
	return h
}

func (h *Housekeeper) GetName() contract.WorkerName {
	return "housekeeper"
}

// Run checks on every tick whether the cron schedule is due.
func (h *Housekeeper) Run(ctx context.Context) error {
	h.mu.Lock()
	h.next = h.schedule.Next(h.clock())
	h.mu.Unlock()
	h.log.Debug("Housekeeping scheduled", "next", h.Next())

	ticker := time.NewTicker(h.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			h.runIfDue()
		}
	}
}

// Next is the next time the housekeeping is due.
func (h *Housekeeper) Next() time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.next
}

func (h *Housekeeper) runIfDue() {
	now := h.clock()
	h.mu.Lock()
	due := !now.Before(h.next)
	if due {
		h.next = h.schedule.Next(now)
	}
	h.mu.Unlock()
	if !due {
		return
	}
	released := h.release(now)
	h.log.Info("Housekeeping done", "released", len(released), "next", h.Next())
}
