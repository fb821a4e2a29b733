package errors

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var grpcCodes = map[Code]codes.Code{
	CodeInvalidTransition:  codes.FailedPrecondition,
	CodeUnauthorized:       codes.PermissionDenied,
	CodeInvariantViolation: codes.InvalidArgument,
	CodeDeliveryFailure:    codes.ResourceExhausted,
	CodeStoreUnavailable:   codes.Unavailable,
	CodeNotFound:           codes.NotFound,
}

// MapToGRPCError converts a domain error to a gRPC status for client responses.
// Untyped errors become Internal with a generic message.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if !As(err, &appErr) {
		return status.Error(codes.Internal, "an unexpected error occurred")
	}
	c, ok := grpcCodes[appErr.Code]
	if !ok {
		c = codes.Internal
	}
	return status.Error(c, appErr.Error())
}

// FromGRPCError rebuilds a typed error from a gRPC status received by a client.
// Only statuses written by MapToGRPCError, whose message starts with the
// error code, are rebuilt. Anything else, such as a transport failure
// reported as Unavailable, is returned unchanged.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	prefix, message, found := strings.Cut(st.Message(), ": ")
	if !found {
		return err
	}
	code := Code(prefix)
	if c, known := grpcCodes[code]; !known || c != st.Code() {
		return err
	}
	return &Error{Code: code, Message: message}
}
