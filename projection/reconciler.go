// Package projection keeps a client-side copy of a schedule in sync with
// the deltas it receives, and derives what is live and what is next from it.
// It never mutates the authoritative schedule and never emits deltas.
package projection

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"timeline-lab/domain/event"
	"timeline-lab/domain/progress"
	"timeline-lab/domain/timeline"
	"timeline-lab/errors"

	"github.com/samber/lo"
)

const (
	DefaultTick        = 30 * time.Second
	defaultMaxMessages = 50
)

type Option func(*Reconciler)

// WithTick sets how often live/next/percent are re-derived.
func WithTick(d time.Duration) Option {
	return func(r *Reconciler) {
		if d > 0 {
			r.tick = d
		}
	}
}

func WithClock(clock func() time.Time) Option {
	return func(r *Reconciler) { r.clock = clock }
}

// WithObserver registers a callback invoked with every recomputed view.
func WithObserver(observer func(progress.View)) Option {
	return func(r *Reconciler) { r.observers = append(r.observers, observer) }
}

// WithMaxMessages bounds how many coordinator messages are kept.
func WithMaxMessages(n int) Option {
	return func(r *Reconciler) {
		if n > 0 {
			r.maxMessages = n
		}
	}
}

// Reconciler is the local projection of one schedule.
type Reconciler struct {
	mu          sync.RWMutex
	log         *slog.Logger
	day         timeline.ScheduleDay
	synced      bool
	messages    []event.CoordinatorMessage
	maxMessages int
	view        progress.View
	tick        time.Duration
	clock       func() time.Time
	observers   []func(progress.View)
}

func NewReconciler(log *slog.Logger, opts ...Option) *Reconciler {
	r := &Reconciler{
		log:         log,
		tick:        DefaultTick,
		maxMessages: defaultMaxMessages,
		clock:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reset replaces the local copy with a full snapshot.
func (r *Reconciler) Reset(day timeline.ScheduleDay) {
	r.mu.Lock()
	r.day = day.Clone()
	r.synced = true
	r.mu.Unlock()
	r.log.Debug("Projection reset", "schedule_id", day.ScheduleID, "version", day.Version)
	r.Recompute(r.clock())
}

// Apply upserts a delta. Deltas already covered by the local copy are
// ignored, which makes Apply idempotent. A delta beyond the next expected
// sequence returns ErrSequenceGap and leaves the copy untouched: the caller
// must resync from a snapshot.
func (r *Reconciler) Apply(delta event.DomainEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.synced {
		return errors.ErrNotSynced
	}
	if delta.ScheduleID() != r.day.ScheduleID {
		return errors.New(errors.CodeInvariantViolation, "delta for schedule %s applied to %s",
			delta.ScheduleID(), r.day.ScheduleID)
	}

	// Coordinator messages do not move the sequence: they carry the last
	// state sequence the server had when they were sent.
	if m, ok := delta.(event.CoordinatorMessage); ok {
		if m.Seq() > r.day.Version {
			return r.gap(m.Seq())
		}
		if slices.ContainsFunc(r.messages, func(kept event.CoordinatorMessage) bool { return sameMessage(kept, m) }) {
			return nil
		}
		r.messages = append(r.messages, m)
		if len(r.messages) > r.maxMessages {
			r.messages = slices.Clone(r.messages[len(r.messages)-r.maxMessages:])
		}
		return nil
	}

	switch {
	case delta.Seq() <= r.day.Version:
		return nil
	case delta.Seq() > r.day.Version+1:
		return r.gap(delta.Seq())
	}

	switch d := delta.(type) {
	case event.EventStarted:
		r.upsert(d.Event)
	case event.EventCompleted:
		r.upsert(d.Event)
	case event.EventDelayed:
		r.upsert(d.Event)
	case event.EventUpdated:
		r.upsert(d.Event)
	case event.ChecklistUpdated:
		r.upsertItem(d.EventID, d.Item)
	}
	r.day.Version = delta.Seq()
	r.day.UpdatedAt = delta.OccurredAt()
	return nil
}

// sameMessage identifies a broadcast by its sequence, sender, server
// timestamp and text. A redelivered message matches on all four.
func sameMessage(a, b event.CoordinatorMessage) bool {
	return a.Seq() == b.Seq() &&
		a.Message.SenderRef == b.Message.SenderRef &&
		a.Message.Timestamp.Equal(b.Message.Timestamp) &&
		a.Message.Text == b.Message.Text
}

func (r *Reconciler) gap(seq uint64) error {
	r.log.Info("Sequence gap detected", "schedule_id", r.day.ScheduleID,
		"expected", r.day.Version+1, "received", seq)
	return errors.ErrSequenceGap
}

// upsert replaces the event with the same id, or inserts it, keeping the
// events ordered by start time.
func (r *Reconciler) upsert(e timeline.TimelineEvent) {
	e = e.Clone()
	if i := r.day.IndexOf(e.ID); i >= 0 {
		r.day.Events[i] = e
	} else {
		r.day.Events = append(r.day.Events, e)
	}
	slices.SortStableFunc(r.day.Events, func(a, b timeline.TimelineEvent) int {
		return a.StartTime.Compare(b.StartTime)
	})
}

func (r *Reconciler) upsertItem(eventID string, item timeline.ChecklistItem) {
	i := r.day.IndexOf(eventID)
	if i < 0 {
		r.log.Debug("Checklist update for an unknown event", "event_id", eventID)
		return
	}
	checklist := r.day.Events[i].Checklist
	for j := range checklist {
		if checklist[j].ID == item.ID {
			checklist[j] = item
			return
		}
	}
	r.day.Events[i].Checklist = append(checklist, item)
}

// Recompute derives the view at now and notifies the observers.
func (r *Reconciler) Recompute(now time.Time) progress.View {
	r.mu.Lock()
	if !r.synced {
		r.mu.Unlock()
		return progress.View{At: now}
	}
	view := progress.Snapshot(r.day, now)
	r.view = view
	observers := slices.Clone(r.observers)
	r.mu.Unlock()

	for _, observe := range observers {
		observe(view)
	}
	return view
}

// Run recomputes the view on a fixed tick, whether or not deltas arrive,
// until ctx is cancelled.
func (r *Reconciler) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Recompute(r.clock())
		}
	}
}

// View returns the last computed view.
func (r *Reconciler) View() progress.View {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.view
}

// Day returns a copy of the local schedule.
func (r *Reconciler) Day() timeline.ScheduleDay {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.day.Clone()
}

func (r *Reconciler) Messages() []timeline.CoordinatorMessage {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Map(r.messages, func(m event.CoordinatorMessage, _ int) timeline.CoordinatorMessage { return m.Message })
}

func (r *Reconciler) Synced() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.synced
}

// Invalidate marks the copy stale until the next Reset.
func (r *Reconciler) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.synced = false
}
