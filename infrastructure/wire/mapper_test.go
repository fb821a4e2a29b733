package wire

import (
	"testing"

	"timeline-lab/domain/event"
	"timeline-lab/domain/timeline"
	"timeline-lab/errors"
	"timeline-lab/internal/testkit"
	pb "timeline-lab/proto/timeline/v1"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestSchedule_SurvivesProtobufBytes(t *testing.T) {
	req := require.New(t)
	// Given a live schedule with a started and delayed event
	day := testkit.WeddingDay()
	day.Events[0].Status = timeline.StatusDelayed
	day.Events[0].ActualStartTime = lo.ToPtr(testkit.At(10, 5))
	day.Events[0].DelayMinutes = 10
	day.Events[0].DelayReason = "Rain"
	day.Events[0].Checklist[0].Completed = true
	day.Version = 7
	day.UpdatedAt = testkit.At(10, 6)

	// When it is encoded and decoded
	bytes, err := proto.Marshal(ScheduleToPb(day))
	req.NoError(err)
	var decoded pb.ScheduleDay
	req.NoError(proto.Unmarshal(bytes, &decoded))

	// Then nothing is lost
	req.Equal(day, ScheduleFromPb(&decoded))
}

func TestSchedule_DateKeepsTheCalendarDay(t *testing.T) {
	req := require.New(t)
	day := testkit.WeddingDay()
	day.Date = testkit.At(23, 0)

	got := ScheduleFromPb(ScheduleToPb(day))

	req.Equal(testkit.Date, got.Date)
}

func TestEvent_UnsetActualTimesStayUnset(t *testing.T) {
	req := require.New(t)
	e := testkit.WeddingDay().Events[2]

	got := EventFromPb(EventToPb(e))

	req.Nil(got.ActualStartTime)
	req.Nil(got.ActualEndTime)
	req.Nil(got.Checklist)
	req.Equal(e, got)
}

func TestDelta_ThroughEnvelope(t *testing.T) {
	req := require.New(t)
	header := event.Header{Schedule: testkit.ScheduleID, Sequence: 3, Actor: testkit.Coordinator.Ref, At: testkit.At(10, 2)}
	deltas := []event.DomainEvent{
		event.EventDelayed{Header: header, Event: testkit.WeddingDay().Events[1], Cascade: true},
		event.ChecklistUpdated{Header: header, EventID: "ceremony", Item: timeline.ChecklistItem{ID: "rings", Task: "Bring the rings", Completed: true}},
		event.CoordinatorMessage{Header: header, Message: timeline.CoordinatorMessage{
			Text: "Cake is late", Priority: timeline.PriorityUrgent, SenderRef: testkit.Coordinator.Ref, Timestamp: testkit.At(10, 2),
		}},
	}

	for i, env := range DeltasToPb(deltas) {
		bytes, err := proto.Marshal(env)
		req.NoError(err)
		var decoded pb.Envelope
		req.NoError(proto.Unmarshal(bytes, &decoded))

		got, err := DeltaFromPb(&decoded)
		req.NoError(err)
		req.Equal(deltas[i], got)
	}
}

func TestDelta_UnknownKind(t *testing.T) {
	req := require.New(t)

	_, err := DeltaFromPb(&pb.Envelope{Kind: "event_cancelled", ScheduleId: testkit.ScheduleID})

	req.Error(err)
}

// An edit keeps only the patched fields once on the wire.
func TestIntent_EditKeepsPatchPresence(t *testing.T) {
	req := require.New(t)
	edit := timeline.EditEventIntent{EventID: "cocktail", Patch: timeline.EventPatch{
		Title:     lo.ToPtr("Garden cocktail"),
		Category:  lo.ToPtr(timeline.CategoryReception),
		StartTime: lo.ToPtr(testkit.At(11, 30)),
	}}

	w, err := IntentToPb(edit)
	req.NoError(err)
	bytes, err := proto.Marshal(&pb.SubmitIntentRequest{ScheduleId: testkit.ScheduleID, Intent: w})
	req.NoError(err)
	var decoded pb.SubmitIntentRequest
	req.NoError(proto.Unmarshal(bytes, &decoded))
	intent, err := IntentFromPb(decoded.GetIntent())
	req.NoError(err)

	got, ok := intent.(timeline.EditEventIntent)
	req.True(ok)
	req.Equal("Garden cocktail", *got.Patch.Title)
	req.Equal(timeline.CategoryReception, *got.Patch.Category)
	req.True(testkit.At(11, 30).Equal(*got.Patch.StartTime))
	req.Nil(got.Patch.Description)
	req.Nil(got.Patch.EndTime)
	req.Nil(got.Patch.AssignedVendorRef)
}

func TestIntent_FromPb_Rejections(t *testing.T) {
	req := require.New(t)

	_, err := IntentFromPb(&pb.Intent{Kind: "cancel", EventId: "ceremony"})
	req.ErrorIs(err, errors.ErrInvariantViolation)
	_, err = IntentFromPb(&pb.Intent{Kind: string(timeline.IntentEditEvent), EventId: "ceremony"})
	req.ErrorIs(err, errors.ErrInvariantViolation)
	_, err = IntentFromPb(nil)
	req.ErrorIs(err, errors.ErrInvariantViolation)
	_, err = IntentToPb(nil)
	req.Error(err)
}

func TestIntent_DelayKeepsCascadeFlag(t *testing.T) {
	req := require.New(t)
	delay := timeline.ReportDelayIntent{EventID: "ceremony", Minutes: 15, Reason: "Rain", Cascade: true}

	w, err := IntentToPb(delay)
	req.NoError(err)
	back, err := IntentFromPb(w)

	req.NoError(err)
	req.Equal(delay, back)
}
