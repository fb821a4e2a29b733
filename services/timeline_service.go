package services

import (
	"context"
	"time"

	"timeline-lab/domain/event"
	"timeline-lab/domain/timeline"
	"timeline-lab/runtime"
	"timeline-lab/sink"
)

type ITimelineService interface {
	SubmitIntent(ctx context.Context, scheduleID, actorRef string, intent timeline.Intent) ([]event.DomainEvent, error)
	Snapshot(ctx context.Context, scheduleID string) (timeline.ScheduleDay, error)
	Subscribe(ctx context.Context, scheduleID, clientID string) (*sink.Subscriber, error)
	Unsubscribe(subscriber *sink.Subscriber)
	Register(ctx context.Context, day timeline.ScheduleDay) error
	Schedules(ctx context.Context, from, to time.Time) ([]timeline.ScheduleDay, error)
}

type TimelineService struct {
	orchestrator *runtime.Orchestrator
}

func NewTimelineService(o *runtime.Orchestrator) *TimelineService {
	return &TimelineService{orchestrator: o}
}

func (s *TimelineService) SubmitIntent(ctx context.Context, scheduleID, actorRef string, intent timeline.Intent) ([]event.DomainEvent, error) {
	return s.orchestrator.SubmitIntent(ctx, scheduleID, actorRef, intent)
}

func (s *TimelineService) Snapshot(ctx context.Context, scheduleID string) (timeline.ScheduleDay, error) {
	return s.orchestrator.Snapshot(ctx, scheduleID)
}

func (s *TimelineService) Subscribe(ctx context.Context, scheduleID, clientID string) (*sink.Subscriber, error) {
	return s.orchestrator.Subscribe(ctx, scheduleID, clientID)
}

// Unsubscribe only removes this subscription; a newer one of the same
// client survives.
func (s *TimelineService) Unsubscribe(subscriber *sink.Subscriber) {
	s.orchestrator.Disconnect(subscriber)
}

func (s *TimelineService) Register(ctx context.Context, day timeline.ScheduleDay) error {
	return s.orchestrator.Register(ctx, day)
}

func (s *TimelineService) Schedules(ctx context.Context, from, to time.Time) ([]timeline.ScheduleDay, error) {
	return s.orchestrator.Schedules(ctx, from, to)
}
