// Package runtime wires schedule owners, subscriptions and fanout together.
// It orchestrates the system without containing business logic or domain rules.
package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"timeline-lab/contract"
	"timeline-lab/domain/event"
	"timeline-lab/domain/timeline"
	"timeline-lab/errors"
	"timeline-lab/runtime/workers"
	"timeline-lab/sink"
)

var _ contract.IOrchestrator = (*Orchestrator)(nil)

// Orchestrator keeps one owner per schedule id. Owners are loaded lazily
// from the repository and run under the supervisor; schedules are fully
// independent from each other.
type Orchestrator struct {
	mu                   sync.Mutex
	log                  *slog.Logger
	owners               map[string]*workers.ScheduleWorker
	supervisor           contract.ISupervisor
	registry             contract.IRegistry
	repository           contract.IScheduleRepository
	directory            contract.IActorDirectory
	fanout               *workers.EventFanout
	bufferSize           int
	subscriberBufferSize int
	clock                func() time.Time
}

func NewOrchestrator(log *slog.Logger, supervisor *workers.Supervisor,
	registry *Registry, repository contract.IScheduleRepository, directory contract.IActorDirectory,
	permanentSinks []contract.EventSink,
	bufferSize, subscriberBufferSize int, sinkTimeout time.Duration) *Orchestrator {
	return &Orchestrator{
		log:                  log,
		owners:               make(map[string]*workers.ScheduleWorker),
		supervisor:           supervisor,
		registry:             registry,
		repository:           repository,
		directory:            directory,
		fanout:               workers.NewEventFanout(log, registry, permanentSinks, sinkTimeout),
		bufferSize:           bufferSize,
		subscriberBufferSize: subscriberBufferSize,
		clock:                func() time.Time { return time.Now().UTC() },
	}
}

// Stats counts the loaded schedules and the clients following them.
func (o *Orchestrator) Stats() workers.EngineStats {
	o.mu.Lock()
	ids := make([]string, 0, len(o.owners))
	stats := workers.EngineStats{ActiveSchedules: len(o.owners)}
	for id, owner := range o.owners {
		ids = append(ids, id)
		stats.PendingRequests += owner.Pending()
	}
	o.mu.Unlock()
	for _, id := range ids {
		stats.Subscribers += len(o.registry.GetSinksForSchedule(id))
	}
	return stats
}

// WithClock replaces the server clock used to stamp transitions.
func (o *Orchestrator) WithClock(clock func() time.Time) *Orchestrator {
	o.clock = clock
	return o
}

// Start runs the supervisor and blocks until ctx is cancelled.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
	return nil
}

// Stop releases every owner and disconnects every subscriber.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.mu.Lock()
	ids := make([]string, 0, len(o.owners))
	for id := range o.owners {
		ids = append(ids, id)
	}
	o.mu.Unlock()
	for _, id := range ids {
		o.Release(id)
	}
	o.supervisor.Stop()
}

// Register persists a schedule prepared by the planning collaborator and
// starts its owner. An already running owner is left untouched.
func (o *Orchestrator) Register(ctx context.Context, day timeline.ScheduleDay) error {
	if err := day.Validate(); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.owners[day.ScheduleID]; ok {
		o.log.Info("Schedule already running", "schedule_id", day.ScheduleID)
		return nil
	}
	if err := o.repository.Save(ctx, day); err != nil {
		return err
	}
	return o.spawn(day)
}

// SubmitIntent resolves the actor, then hands the intent to the owner of
// the schedule. It returns the deltas that were committed and broadcast.
func (o *Orchestrator) SubmitIntent(ctx context.Context, scheduleID, actorRef string, intent timeline.Intent) ([]event.DomainEvent, error) {
	if err := timeline.ValidateIntent(intent); err != nil {
		return nil, err
	}
	actor, err := o.directory.Resolve(ctx, actorRef)
	switch {
	case errors.IsCode(err, errors.CodeNotFound):
		return nil, errors.Wrap(errors.CodeUnauthorized, err, "unknown actor %q", actorRef)
	case err != nil:
		return nil, err
	}
	owner, err := o.owner(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	return owner.Submit(ctx, actor, intent)
}

// Snapshot returns the full current state, for initial load and resync.
func (o *Orchestrator) Snapshot(ctx context.Context, scheduleID string) (timeline.ScheduleDay, error) {
	owner, err := o.owner(ctx, scheduleID)
	if err != nil {
		return timeline.ScheduleDay{}, err
	}
	return owner.Snapshot(ctx)
}

// Subscribe opens the delta stream of a client on a schedule. Nothing
// published before the subscription is replayed.
func (o *Orchestrator) Subscribe(ctx context.Context, scheduleID, clientID string) (*sink.Subscriber, error) {
	if _, err := o.owner(ctx, scheduleID); err != nil {
		return nil, err
	}
	subscriber := sink.NewSubscriber(o.log, scheduleID, clientID, o.subscriberBufferSize)
	if previous := o.registry.Subscribe(clientID, scheduleID, subscriber); previous != nil {
		if p, ok := previous.(*sink.Subscriber); ok {
			p.Disconnect(errors.New(errors.CodeDeliveryFailure, "replaced by a new subscription"))
		}
	}
	o.log.Debug("Client subscribed", "schedule_id", scheduleID, "client_id", clientID)
	return subscriber, nil
}

// Unsubscribe tears down the subscription of a client, whoever owns it.
func (o *Orchestrator) Unsubscribe(scheduleID, clientID string) {
	if s, ok := o.registry.Unsubscribe(clientID, scheduleID).(*sink.Subscriber); ok {
		s.Close()
	}
}

// Disconnect tears down one subscription. A newer subscription of the same
// client is left alone.
func (o *Orchestrator) Disconnect(subscriber *sink.Subscriber) {
	o.registry.UnsubscribeSink(subscriber.ClientID, subscriber.ScheduleID, subscriber)
	subscriber.Close()
}

// Schedules lists the stored schedules of a date range.
func (o *Orchestrator) Schedules(ctx context.Context, from, to time.Time) ([]timeline.ScheduleDay, error) {
	return o.repository.ListByDateRange(ctx, from, to)
}

// Release stops the owner of a schedule and disconnects its subscribers.
// The next request reloads the schedule from the repository.
func (o *Orchestrator) Release(scheduleID string) {
	o.mu.Lock()
	owner, ok := o.owners[scheduleID]
	delete(o.owners, scheduleID)
	o.mu.Unlock()
	if !ok {
		return
	}
	owner.Stop()
	o.fanout.Close(scheduleID, errors.New(errors.CodeDeliveryFailure, "schedule %s released", scheduleID))
	o.log.Info("Schedule released", "schedule_id", scheduleID)
}

// ReleaseBefore releases every owner whose day is strictly before day and
// returns their schedule ids.
func (o *Orchestrator) ReleaseBefore(day time.Time) []string {
	cutoff := day.Truncate(24 * time.Hour)
	o.mu.Lock()
	var ids []string
	for id, owner := range o.owners {
		if owner.Date().Before(cutoff) {
			ids = append(ids, id)
		}
	}
	o.mu.Unlock()
	for _, id := range ids {
		o.Release(id)
	}
	return ids
}

func (o *Orchestrator) owner(ctx context.Context, scheduleID string) (*workers.ScheduleWorker, error) {
	o.mu.Lock()
	owner, ok := o.owners[scheduleID]
	o.mu.Unlock()
	if ok {
		return owner, nil
	}

	// Loading is blocking I/O: done outside the lock, the first loader wins.
	day, err := o.repository.Load(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if owner, ok := o.owners[scheduleID]; ok {
		return owner, nil
	}
	if err := o.spawn(day); err != nil {
		return nil, err
	}
	return o.owners[scheduleID], nil
}

// spawn must be called with o.mu held.
func (o *Orchestrator) spawn(day timeline.ScheduleDay) error {
	owner := workers.NewScheduleWorker(o.log, day, o.repository, o.fanout, o.bufferSize, o.clock)
	if err := o.supervisor.Spawn(owner); err != nil {
		return err
	}
	o.owners[day.ScheduleID] = owner
	o.log.Info("Schedule owner started", "schedule_id", day.ScheduleID, "events", len(day.Events), "version", day.Version)
	return nil
}
