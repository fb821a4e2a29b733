//go:generate go run go.uber.org/mock/mockgen -source=collaborators.go -destination=../mocks/mock_collaborators.go -package=mocks
package contract

import (
	"context"
	"time"

	"timeline-lab/domain/authority"
	"timeline-lab/domain/event"
	"timeline-lab/domain/timeline"
)

// IScheduleRepository is the durable store of schedule snapshots.
// It is a blocking load/save boundary kept off the hot path: the engine
// only calls it to load an owner and to commit an intent.
type IScheduleRepository interface {
	Load(ctx context.Context, scheduleID string) (timeline.ScheduleDay, error)
	Save(ctx context.Context, day timeline.ScheduleDay) error
	ListByDateRange(ctx context.Context, from, to time.Time) ([]timeline.ScheduleDay, error)
}

// IActorDirectory resolves an actor reference into a role and identity.
type IActorDirectory interface {
	Resolve(ctx context.Context, actorRef string) (authority.Actor, error)
}

// IJournalRepository keeps every delta broadcast on a schedule, oldest first.
type IJournalRepository interface {
	Append(ctx context.Context, env event.Envelope) error
	// Read pages forward from cursor, nil meaning the first entry.
	Read(ctx context.Context, scheduleID string, cursor *string) ([]event.Envelope, *string, error)
}
