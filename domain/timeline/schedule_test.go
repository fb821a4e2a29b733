package timeline_test

import (
	"testing"

	"timeline-lab/domain/timeline"
	"timeline-lab/errors"
	"timeline-lab/internal/testkit"

	"github.com/stretchr/testify/require"
)

func TestNewScheduleDay(t *testing.T) {
	req := require.New(t)

	// Given planned events out of order, one checklist item without id
	day, err := timeline.NewScheduleDay("wedding", testkit.At(15, 0), []timeline.TimelineEvent{
		{ID: "dinner", Title: "Dinner", StartTime: testkit.At(19, 0), EndTime: testkit.At(21, 0)},
		{ID: "vows", Title: "Vows", Category: timeline.CategoryCeremony, StartTime: testkit.At(15, 0), EndTime: testkit.At(15, 30),
			Checklist: []timeline.ChecklistItem{{Task: "Print the vows"}}},
	})
	req.NoError(err)

	// Then they are sorted, not started and fully identified
	req.Equal(testkit.Date, day.Date)
	req.Equal([]string{"vows", "dinner"}, []string{day.Events[0].ID, day.Events[1].ID})
	req.Equal(timeline.StatusNotStarted, day.Events[0].Status)
	req.Equal(timeline.CategoryOther, day.Events[1].Category)
	req.NotEmpty(day.Events[0].Checklist[0].ID)
	req.Zero(day.Version)
}

func TestNewScheduleDay_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		events []timeline.TimelineEvent
	}{
		{
			name:   "end before start",
			events: []timeline.TimelineEvent{{ID: "a", Title: "A", StartTime: testkit.At(11, 0), EndTime: testkit.At(10, 0)}},
		},
		{
			name:   "empty window",
			events: []timeline.TimelineEvent{{ID: "a", Title: "A", StartTime: testkit.At(10, 0), EndTime: testkit.At(10, 0)}},
		},
		{
			name: "duplicate id",
			events: []timeline.TimelineEvent{
				{ID: "a", Title: "A", StartTime: testkit.At(10, 0), EndTime: testkit.At(11, 0)},
				{ID: "a", Title: "B", StartTime: testkit.At(11, 0), EndTime: testkit.At(12, 0)},
			},
		},
		{
			name:   "missing title",
			events: []timeline.TimelineEvent{{ID: "a", StartTime: testkit.At(10, 0), EndTime: testkit.At(11, 0)}},
		},
		{
			name:   "unknown category",
			events: []timeline.TimelineEvent{{ID: "a", Title: "A", Category: "fireworks", StartTime: testkit.At(10, 0), EndTime: testkit.At(11, 0)}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := timeline.NewScheduleDay("wedding", testkit.Date, tc.events)
			require.ErrorIs(t, err, errors.ErrInvariantViolation)
		})
	}
}

func TestScheduleDay_CloneIsDeep(t *testing.T) {
	req := require.New(t)
	day := testkit.WeddingDay()
	_, err := day.Start("ceremony", "alice", testkit.At(10, 0))
	req.NoError(err)

	cp := day.Clone()
	cp.Events[0].Checklist[0].Completed = true
	*cp.Events[0].ActualStartTime = testkit.At(11, 0)

	req.False(day.Events[0].Checklist[0].Completed)
	req.Equal(testkit.At(10, 0), *day.Events[0].ActualStartTime)
}

func TestValidate_DelayMinutesByStatus(t *testing.T) {
	req := require.New(t)
	// Given a ceremony that ran late and was completed
	day := testkit.WeddingDay()
	_, err := day.Start("ceremony", "alice", testkit.At(10, 0))
	req.NoError(err)
	_, err = day.ReportDelay("ceremony", "alice", 15, "Rings", false, testkit.At(10, 5))
	req.NoError(err)
	_, err = day.Complete("ceremony", "alice", testkit.At(10, 45))
	req.NoError(err)

	// Then the announced delay stays on the completed event
	req.NoError(day.Validate())

	// When a running or pending event carries minutes without the delayed status
	running := day.Clone()
	running.Events[0].Status = timeline.StatusInProgress
	running.Events[0].ActualEndTime = nil
	pending := day.Clone()
	pending.Events[1].DelayMinutes = 5

	// Then the day is rejected
	req.ErrorIs(running.Validate(), errors.ErrInvariantViolation)
	req.ErrorIs(pending.Validate(), errors.ErrInvariantViolation)
}

func TestValidateIntent(t *testing.T) {
	req := require.New(t)

	req.NoError(timeline.ValidateIntent(timeline.StartIntent{EventID: "ceremony"}))
	req.ErrorIs(timeline.ValidateIntent(nil), errors.ErrInvariantViolation)
	req.ErrorIs(timeline.ValidateIntent(timeline.StartIntent{}), errors.ErrInvariantViolation)
	req.ErrorIs(timeline.ValidateIntent(timeline.ReportDelayIntent{EventID: "ceremony"}), errors.ErrInvariantViolation)
	req.ErrorIs(timeline.ValidateIntent(timeline.BroadcastIntent{Text: "hi", Priority: "loud"}), errors.ErrInvariantViolation)
	req.NoError(timeline.ValidateIntent(timeline.BroadcastIntent{Text: "hi", Priority: timeline.PriorityUrgent}))
}
