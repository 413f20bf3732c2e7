package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

// serveHTTP serves srv on lis until ctx is done, then shuts it down within
// timeout. A clean shutdown returns nil.
func serveHTTP(ctx context.Context, lis net.Listener, srv *http.Server, timeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening", slog.String("addr", lis.Addr().String()))
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.String("error", err.Error()))
			return err
		}
		logger.Info("server shutdown complete")
		return nil
	})

	return g.Wait()
}

// serveGRPC serves gs on lis until ctx is done, then stops it gracefully,
// forcing a hard stop once timeout has passed.
func serveGRPC(ctx context.Context, lis net.Listener, gs *grpc.Server, timeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening", slog.String("addr", lis.Addr().String()))
		return gs.Serve(lis)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		done := make(chan struct{})
		go func() {
			gs.GracefulStop()
			close(done)
		}()

		timer := time.NewTimer(timeout)
		defer timer.Stop()

		select {
		case <-done:
			logger.Info("server shutdown complete")
		case <-timer.C:
			logger.Warn("graceful stop timed out, forcing")
			gs.Stop()
			<-done
		}
		return nil
	})

	return g.Wait()
}
