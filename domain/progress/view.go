package progress

import (
	"time"

	"timeline-lab/domain/timeline"

	"github.com/samber/lo"
)

type EventView struct {
	EventID        string
	Title          string
	Category       timeline.Category
	Status         timeline.Status
	Classification Classification
	Percent        float64
	StartTime      time.Time
	EndTime        time.Time
	CascadedDelay  bool
	DelayMinutes   int
}

// View is what a client shows at one instant: what is happening now,
// what is next, and where every event stands.
type View struct {
	At      time.Time
	Current *EventView
	Next    *EventView
	Events  []EventView
}

// Snapshot derives the full view of a day at now.
func Snapshot(day timeline.ScheduleDay, now time.Time) View {
	view := View{
		At: now,
		Events: lo.Map(day.Events, func(e timeline.TimelineEvent, _ int) EventView {
			return toEventView(e, now)
		}),
	}
	if current, ok := Current(day, now); ok {
		view.Current = lo.ToPtr(toEventView(current, now))
	}
	if next, ok := Next(day, now); ok {
		view.Next = lo.ToPtr(toEventView(next, now))
	}
	return view
}

func toEventView(e timeline.TimelineEvent, now time.Time) EventView {
	return EventView{
		EventID:        e.ID,
		Title:          e.Title,
		Category:       e.Category,
		Status:         e.Status,
		Classification: Classify(e, now),
		Percent:        Percent(e, now),
		StartTime:      e.StartTime,
		EndTime:        e.EndTime,
		CascadedDelay:  e.CascadedDelay,
		DelayMinutes:   e.DelayMinutes,
	}
}
