// Package progress derives live/upcoming/past classification and percent
// complete from wall-clock time. Everything here is pure: nothing is stored,
// every client recomputes from its own clock.
package progress

import (
	"time"

	"timeline-lab/domain/timeline"

	"github.com/samber/lo"
)

type Classification string

const (
	Upcoming Classification = "upcoming"
	Live     Classification = "live"
	Past     Classification = "past"
)

// IsLive holds when now falls within the current, possibly cascaded, bounds.
func IsLive(e timeline.TimelineEvent, now time.Time) bool {
	return !now.Before(e.StartTime) && !now.After(e.EndTime)
}

func IsPast(e timeline.TimelineEvent, now time.Time) bool {
	return now.After(e.EndTime)
}

func IsUpcoming(e timeline.TimelineEvent, now time.Time) bool {
	return now.Before(e.StartTime)
}

func Classify(e timeline.TimelineEvent, now time.Time) Classification {
	switch {
	case IsUpcoming(e, now):
		return Upcoming
	case IsPast(e, now):
		return Past
	default:
		return Live
	}
}

// Percent is 0 before start, 100 once completed and otherwise the elapsed
// share of the planned window, clamped to [0, 100].
func Percent(e timeline.TimelineEvent, now time.Time) float64 {
	switch e.Status {
	case timeline.StatusNotStarted:
		return 0
	case timeline.StatusCompleted:
		return 100
	}
	window := e.EndTime.Sub(e.StartTime)
	if window <= 0 {
		return 0
	}
	p := float64(now.Sub(e.StartTime)) / float64(window) * 100
	return min(100, max(0, p))
}

// Current returns the first live event by start time.
func Current(day timeline.ScheduleDay, now time.Time) (timeline.TimelineEvent, bool) {
	return lo.Find(day.Events, func(e timeline.TimelineEvent) bool {
		return IsLive(e, now)
	})
}

// Next returns the event with the smallest start strictly after now.
func Next(day timeline.ScheduleDay, now time.Time) (timeline.TimelineEvent, bool) {
	var (
		next  timeline.TimelineEvent
		found bool
	)
	for _, e := range day.Events {
		if !e.StartTime.After(now) {
			continue
		}
		if !found || e.StartTime.Before(next.StartTime) {
			next, found = e, true
		}
	}
	return next, found
}
