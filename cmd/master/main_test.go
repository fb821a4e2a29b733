package main

import (
	"testing"

	"timeline-lab/domain/event"
	"timeline-lab/domain/timeline"
	"timeline-lab/infrastructure/wire"
	"timeline-lab/internal/testkit"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func TestScheduleMapper(t *testing.T) {
	req := require.New(t)
	day := testkit.WeddingDay()
	day.Version = 4
	day.Events[0].Status = timeline.StatusCompleted
	scheduleBytes, err := proto.Marshal(wire.ScheduleToPb(day))
	req.NoError(err)
	deltaBytes, err := proto.Marshal(wire.EnvelopeToPb(event.Envelope{
		Kind: event.KindEventStarted, Schedule: testkit.ScheduleID, Sequence: 4, Actor: "alice",
		At: testkit.At(10, 0), Event: &day.Events[0],
	}))
	req.NoError(err)

	schedule := ScheduleMapper("schedule:"+testkit.ScheduleID, scheduleBytes)
	req.Equal("SCHEDULE", schedule.Type)
	req.Equal("2026-06-20 v4: 4 events", schedule.Detail)
	req.Equal("done:1 live:0 late:0 todo:3", schedule.Scores)

	delta := ScheduleMapper("journal:"+testkit.ScheduleID+":1", deltaBytes)
	req.Equal("DELTA", delta.Type)
	req.Equal("#4 event_started by alice", delta.Detail)

	req.Equal("INDEX", ScheduleMapper("date:20260620:"+testkit.ScheduleID, nil).Type)
	req.Equal("Error: unmarshal failed", ScheduleMapper("schedule:broken", []byte{0xff, 0xff}).Detail)
}
