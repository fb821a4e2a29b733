package wire

import (
	"fmt"

	"timeline-lab/domain/timeline"
	"timeline-lab/errors"
	pb "timeline-lab/proto/timeline/v1"

	"github.com/samber/lo"
)

func IntentToPb(intent timeline.Intent) (*pb.Intent, error) {
	switch i := intent.(type) {
	case timeline.StartIntent:
		return &pb.Intent{Kind: string(i.Kind()), EventId: i.EventID}, nil
	case timeline.CompleteIntent:
		return &pb.Intent{Kind: string(i.Kind()), EventId: i.EventID}, nil
	case timeline.ReportDelayIntent:
		return &pb.Intent{Kind: string(i.Kind()), EventId: i.EventID, Minutes: int32(i.Minutes), Reason: i.Reason, Cascade: i.Cascade}, nil
	case timeline.ToggleChecklistIntent:
		return &pb.Intent{Kind: string(i.Kind()), EventId: i.EventID, ItemId: i.ItemID, Completed: i.Completed}, nil
	case timeline.EditEventIntent:
		return &pb.Intent{Kind: string(i.Kind()), EventId: i.EventID, Patch: patchToPb(i.Patch)}, nil
	case timeline.BroadcastIntent:
		return &pb.Intent{Kind: string(i.Kind()), Text: i.Text, Priority: string(i.Priority)}, nil
	default:
		return nil, fmt.Errorf("unsupported intent %T", intent)
	}
}

// IntentFromPb only reads the fields of the intent kind.
func IntentFromPb(i *pb.Intent) (timeline.Intent, error) {
	if i == nil {
		return nil, errors.New(errors.CodeInvariantViolation, "missing intent")
	}
	switch timeline.IntentKind(i.GetKind()) {
	case timeline.IntentStart:
		return timeline.StartIntent{EventID: i.GetEventId()}, nil
	case timeline.IntentComplete:
		return timeline.CompleteIntent{EventID: i.GetEventId()}, nil
	case timeline.IntentReportDelay:
		return timeline.ReportDelayIntent{EventID: i.GetEventId(), Minutes: int(i.GetMinutes()), Reason: i.GetReason(), Cascade: i.GetCascade()}, nil
	case timeline.IntentToggleChecklist:
		return timeline.ToggleChecklistIntent{EventID: i.GetEventId(), ItemID: i.GetItemId(), Completed: i.GetCompleted()}, nil
	case timeline.IntentEditEvent:
		if i.GetPatch() == nil {
			return nil, errors.New(errors.CodeInvariantViolation, "edit intent without patch")
		}
		return timeline.EditEventIntent{EventID: i.GetEventId(), Patch: patchFromPb(i.GetPatch())}, nil
	case timeline.IntentBroadcast:
		return timeline.BroadcastIntent{Text: i.GetText(), Priority: timeline.Priority(i.GetPriority())}, nil
	default:
		return nil, errors.New(errors.CodeInvariantViolation, "unknown intent kind %q", i.GetKind())
	}
}

func patchToPb(p timeline.EventPatch) *pb.EventPatch {
	out := &pb.EventPatch{
		Title:             p.Title,
		Description:       p.Description,
		StartTime:         toNanosPtr(p.StartTime),
		EndTime:           toNanosPtr(p.EndTime),
		AssignedVendorRef: p.AssignedVendorRef,
	}
	if p.Category != nil {
		out.Category = lo.ToPtr(string(*p.Category))
	}
	return out
}

func patchFromPb(p *pb.EventPatch) timeline.EventPatch {
	out := timeline.EventPatch{
		Title:             p.Title,
		Description:       p.Description,
		StartTime:         fromNanosPtr(p.StartTime),
		EndTime:           fromNanosPtr(p.EndTime),
		AssignedVendorRef: p.AssignedVendorRef,
	}
	if p.Category != nil {
		out.Category = lo.ToPtr(timeline.Category(*p.Category))
	}
	return out
}
