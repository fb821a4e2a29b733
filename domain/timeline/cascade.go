package timeline

import (
	"time"

	"timeline-lab/errors"
)

// Cascade returns a copy of events where every event strictly after
// delayedIndex is shifted by minutes and flagged as cascaded.
// The delayed event keeps its own bounds. Shifting does not trigger
// another cascade, so the order of the day is preserved.
func Cascade(events []TimelineEvent, delayedIndex, minutes int) ([]TimelineEvent, error) {
	if delayedIndex < 0 || delayedIndex >= len(events) {
		return nil, errors.New(errors.CodeNotFound, "no event at position %d", delayedIndex)
	}
	if minutes <= 0 {
		return nil, errors.New(errors.CodeInvariantViolation, "cascade offset must be positive, got %d", minutes)
	}
	offset := time.Duration(minutes) * time.Minute
	res := make([]TimelineEvent, len(events))
	for i, e := range events {
		cp := e.Clone()
		if i > delayedIndex {
			cp.StartTime = cp.StartTime.Add(offset)
			cp.EndTime = cp.EndTime.Add(offset)
			cp.CascadedDelay = true
		}
		res[i] = cp
	}
	return res, nil
}
