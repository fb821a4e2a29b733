package sink

import (
	"context"
	"log/slog"

	"timeline-lab/contract"
	"timeline-lab/domain/event"
)

var _ contract.EventSink = AuditSink{}

// AuditSink logs every delta with the actor that caused it.
type AuditSink struct {
	log *slog.Logger
}

func NewAuditSink(log *slog.Logger) AuditSink {
	return AuditSink{log: log}
}

func (a AuditSink) Consume(_ context.Context, e event.DomainEvent) error {
	attrs := []any{
		"schedule_id", e.ScheduleID(),
		"sequence", e.Seq(),
		"kind", e.Kind(),
		"actor_ref", e.ActorRef(),
	}
	switch evt := e.(type) {
	case event.EventStarted:
		attrs = append(attrs, "event_id", evt.Event.ID)
	case event.EventCompleted:
		attrs = append(attrs, "event_id", evt.Event.ID)
	case event.EventDelayed:
		attrs = append(attrs, "event_id", evt.Event.ID,
			"delay_minutes", evt.Event.DelayMinutes,
			"reason", evt.Event.DelayReason,
			"cascade", evt.Cascade)
	case event.EventUpdated:
		attrs = append(attrs, "event_id", evt.Event.ID,
			"start", evt.Event.StartTime,
			"end", evt.Event.EndTime,
			"cascaded", evt.Event.CascadedDelay)
	case event.ChecklistUpdated:
		attrs = append(attrs, "event_id", evt.EventID, "item_id", evt.Item.ID, "completed", evt.Item.Completed)
	case event.CoordinatorMessage:
		attrs = append(attrs, "priority", evt.Message.Priority)
	}
	a.log.Info("Schedule delta", attrs...)
	return nil
}
