package grpcapi

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/heartmarshall/segmentbench/pkg/ctxutil"
)

// RequestIDKey is the metadata key carrying the request ID in both
// directions.
const RequestIDKey = "x-request-id"

const maxRequestIDLen = 128

// requestIDInterceptor takes the caller's x-request-id or generates a UUID,
// stores it in the context and echoes it in the response header. A header
// that cannot be set is logged at debug and the call proceeds.
func requestIDInterceptor(l *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		var id string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get(RequestIDKey); len(vals) > 0 {
				id = vals[0]
			}
		}
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.New().String()
		}

		ctx = ctxutil.WithRequestID(ctx, id)
		if err := grpc.SetHeader(ctx, metadata.Pairs(RequestIDKey, id)); err != nil {
			l.DebugContext(ctx, "set request id header",
				slog.String("error", err.Error()),
				slog.String("request_id", id),
			)
		}

		return handler(ctx, req)
	}
}

// slogAdapter bridges go-grpc-middleware logging onto slog.
func slogAdapter(l *slog.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func loggingInterceptor(l *slog.Logger) grpc.UnaryServerInterceptor {
	return logging.UnaryServerInterceptor(slogAdapter(l.With("system", "grpc")),
		logging.WithLogOnEvents(logging.FinishCall),
		logging.WithFieldsFromContext(func(ctx context.Context) logging.Fields {
			if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
				return logging.Fields{"request_id", id}
			}
			return nil
		}),
	)
}

func recoveryInterceptor(l *slog.Logger) grpc.UnaryServerInterceptor {
	return recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		l.ErrorContext(ctx, "panic recovered",
			slog.String("error", fmt.Sprint(p)),
			slog.String("stack", string(debug.Stack())),
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		)
		return status.Error(codes.Internal, "internal server error")
	}))
}
