package e2e

import (
	"context"
	"testing"
	"time"

	"timeline-lab/domain/event"
	"timeline-lab/domain/timeline"
	"timeline-lab/errors"
	"timeline-lab/infrastructure/wire"
	pb "timeline-lab/proto/timeline/v1"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// The master must run with the seeded wedding day of
// internal/testkit and the matching actor directory.
type testLiveDaySuite struct {
	BaseGrpcSuite
}

func TestLiveDaySuite(t *testing.T) {
	suite.Run(t, &testLiveDaySuite{})
}

func (s *testLiveDaySuite) TestCoordinationFlow() {
	var before timeline.ScheduleDay

	// --- STEP 0: SNAPSHOT ---
	s.Run("Step 0: Observer reads the authoritative schedule", func() {
		s.WithMaster("Snapshot as observer", "olivia", func(ctx context.Context, client pb.TimelineServiceClient) {
			resp, err := client.Snapshot(ctx, &pb.SnapshotRequest{ScheduleId: s.Config.ScheduleID})
			s.Require().NoError(err)
			before = wire.ScheduleFromPb(resp.GetSchedule())
			s.Require().NotEmpty(before.Events)
			s.Require().NoError(before.Validate())
		})
	})

	// --- STEP 1: AUTHORIZATION ---
	s.Run("Step 1: Guests cannot drive the day", func() {
		s.WithMaster("Start as guest", "gus", func(ctx context.Context, client pb.TimelineServiceClient) {
			intent, err := wire.IntentToPb(timeline.StartIntent{EventID: before.Events[0].ID})
			s.Require().NoError(err)
			_, err = client.SubmitIntent(ctx, &pb.SubmitIntentRequest{ScheduleId: s.Config.ScheduleID, Intent: intent})
			s.Require().Equal(codes.PermissionDenied, status.Code(err))
			s.Require().ErrorIs(errors.FromGRPCError(err), errors.ErrUnauthorized)
		})
	})

	// --- STEP 2: LIVE BROADCAST ---
	s.Run("Step 2: A coordinator message reaches a follower", func() {
		received := make(chan event.DomainEvent, 1)
		subscribed := make(chan struct{})

		go s.WithMaster("Follow as observer", "olivia", func(ctx context.Context, client pb.TimelineServiceClient) {
			stream, err := client.Subscribe(ctx, &pb.SubscribeRequest{ScheduleId: s.Config.ScheduleID, ClientId: uuid.NewString()})
			if err != nil {
				close(subscribed)
				return
			}
			_, _ = stream.Header()
			close(subscribed)
			for {
				envelope, err := stream.Recv()
				if err != nil {
					return
				}
				delta, err := wire.DeltaFromPb(envelope)
				if err != nil {
					return
				}
				if _, ok := delta.(event.CoordinatorMessage); ok {
					received <- delta
					return
				}
			}
		})
		<-subscribed

		s.WithMaster("Broadcast as coordinator", "alice", func(ctx context.Context, client pb.TimelineServiceClient) {
			intent, err := wire.IntentToPb(timeline.BroadcastIntent{Text: "Guests to the garden", Priority: timeline.PriorityHigh})
			s.Require().NoError(err)
			resp, err := client.SubmitIntent(ctx, &pb.SubmitIntentRequest{ScheduleId: s.Config.ScheduleID, Intent: intent})
			s.Require().NoError(err)
			s.Require().Len(resp.GetDeltas(), 1)
		})

		select {
		case delta := <-received:
			msg := delta.(event.CoordinatorMessage)
			s.Require().Equal("Guests to the garden", msg.Message.Text)
			s.Require().Equal(before.Version, msg.Seq(), "a broadcast must not move the sequence")
		case <-time.After(10 * time.Second):
			s.Fail("the follower never received the coordinator message")
		}
	})
}
