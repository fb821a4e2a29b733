package server

import (
	"context"
	"log/slog"

	"timeline-lab/auth"
	"timeline-lab/domain/event"
	"timeline-lab/errors"
	"timeline-lab/infrastructure/wire"
	pb "timeline-lab/proto/timeline/v1"
	"timeline-lab/services"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var _ pb.TimelineServiceServer = (*TimelineServer)(nil)

type TimelineServer struct {
	pb.UnimplementedTimelineServiceServer
	log             *slog.Logger
	timelineService services.ITimelineService
}

func NewTimelineServer(log *slog.Logger, timelineService services.ITimelineService) *TimelineServer {
	return &TimelineServer{log: log, timelineService: timelineService}
}

// SubmitIntent applies one intent on behalf of the authenticated actor and
// returns the deltas it produced. The same deltas reach the caller's own
// subscription like any other client's.
func (s *TimelineServer) SubmitIntent(ctx context.Context, req *pb.SubmitIntentRequest) (*pb.SubmitIntentResponse, error) {
	actorRef, ok := auth.ActorRefFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "actor is missing")
	}
	intent, err := wire.IntentFromPb(req.GetIntent())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	deltas, err := s.timelineService.SubmitIntent(ctx, req.GetScheduleId(), actorRef, intent)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SubmitIntentResponse{Deltas: wire.DeltasToPb(deltas)}, nil
}

func (s *TimelineServer) Snapshot(ctx context.Context, req *pb.SnapshotRequest) (*pb.SnapshotResponse, error) {
	day, err := s.timelineService.Snapshot(ctx, req.GetScheduleId())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SnapshotResponse{Schedule: wire.ScheduleToPb(day)}, nil
}

// Subscribe streams the deltas of a schedule until the client leaves or is
// dropped for being too slow. A dropped client gets ResourceExhausted and is
// expected to resync from a snapshot.
func (s *TimelineServer) Subscribe(req *pb.SubscribeRequest, stream grpc.ServerStreamingServer[pb.Envelope]) error {
	ctx := stream.Context()
	clientID := req.GetClientId()
	if clientID == "" {
		clientID = uuid.NewString()
	}
	subscriber, err := s.timelineService.Subscribe(ctx, req.GetScheduleId(), clientID)
	if err != nil {
		return errors.MapToGRPCError(err)
	}
	defer s.timelineService.Unsubscribe(subscriber)
	// Headers tell the client the subscription is registered: any snapshot
	// taken from now on is covered by the stream.
	if err := stream.SendHeader(metadata.Pairs("subscriber-id", subscriber.ID)); err != nil {
		return err
	}

	log := s.log.With("schedule_id", req.GetScheduleId(), "client_id", clientID)
	for {
		select {
		case <-ctx.Done():
			log.Debug("Client left the schedule")
			return nil
		case <-subscriber.Done():
			// Drain what was queued before the disconnect so the client
			// receives a gapless prefix.
			for {
				select {
				case e := <-subscriber.Events():
					if err := stream.Send(wire.EnvelopeToPb(event.ToEnvelope(e))); err != nil {
						return err
					}
				default:
					log.Info("Subscriber disconnected by the server", "reason", subscriber.Err())
					return errors.MapToGRPCError(subscriber.Err())
				}
			}
		case e := <-subscriber.Events():
			if err := stream.Send(wire.EnvelopeToPb(event.ToEnvelope(e))); err != nil {
				log.Error("Failed to push delta to stream", "error", err)
				return err
			}
		}
	}
}
