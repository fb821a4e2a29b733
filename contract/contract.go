//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"timeline-lab/domain/event"
	"timeline-lab/domain/timeline"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Spawn(worker Worker) error
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	if named, ok := w.(interface{ GetName() WorkerName }); ok {
		return string(named.GetName())
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives deltas. Consume must never block the publisher.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IRegistry maps a schedule to the sinks of its connected clients.
type IRegistry interface {
	GetSinksForSchedule(scheduleID string) map[string]EventSink
	// Subscribe returns the sink it replaced for the same client, if any.
	Subscribe(clientID, scheduleID string, sink EventSink) EventSink
	Unsubscribe(clientID, scheduleID string) EventSink
	// UnsubscribeSink removes the client only while it still owns sink.
	UnsubscribeSink(clientID, scheduleID string, sink EventSink) bool
	UnsubscribeAll(scheduleID string) []EventSink
}

type IOrchestrator interface {
	SubmitIntent(ctx context.Context, scheduleID, actorRef string, intent timeline.Intent) ([]event.DomainEvent, error)
	Snapshot(ctx context.Context, scheduleID string) (timeline.ScheduleDay, error)
	Release(scheduleID string)
	Start(ctx context.Context) error
	Stop()
}
