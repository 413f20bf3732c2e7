package grpcapi

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/heartmarshall/segmentbench/internal/domain"
)

// toStatus maps a service error onto a gRPC status. Validation messages are
// returned to the caller; other details only reach the log.
func (s *Server) toStatus(ctx context.Context, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, ve.Error())
	case errors.Is(err, domain.ErrValidation):
		return status.Error(codes.InvalidArgument, "invalid request")
	case errors.Is(err, domain.ErrDependencyUnavailable):
		s.log.WarnContext(ctx, "dependency unavailable", slog.String("error", err.Error()))
		return status.Error(codes.Unavailable, "service temporarily unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	default:
		s.log.ErrorContext(ctx, "internal error", slog.String("error", err.Error()))
		return status.Error(codes.Internal, "internal server error")
	}
}
