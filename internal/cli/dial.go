package cli

import (
	"context"
	"fmt"

	"timeline-lab/auth"
	pb "timeline-lab/proto/timeline/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// dial opens a client on the master. The returned context carries the
// bearer token of the acting actor.
func dial(ctx context.Context, opts *RootOptions) (context.Context, pb.TimelineServiceClient, func(), error) {
	if opts.Token == "" {
		return nil, nil, nil, fmt.Errorf("a token is required (--token or TIMELINE_TOKEN), see 'timelinectl token'")
	}
	conn, err := grpc.NewClient(opts.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to %s: %w", opts.Addr, err)
	}
	return auth.BearerContext(ctx, opts.Token), pb.NewTimelineServiceClient(conn), func() { _ = conn.Close() }, nil
}
