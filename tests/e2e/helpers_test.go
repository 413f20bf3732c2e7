//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/heartmarshall/segmentbench/internal/adapter/postgres"
	segmentrepo "github.com/heartmarshall/segmentbench/internal/adapter/postgres/segment"
	"github.com/heartmarshall/segmentbench/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/segmentbench/internal/classifier"
	segmentsvc "github.com/heartmarshall/segmentbench/internal/service/segment"
	"github.com/heartmarshall/segmentbench/internal/textnorm"
	"github.com/heartmarshall/segmentbench/internal/transport/grpcapi"
	"github.com/heartmarshall/segmentbench/internal/transport/middleware"
	"github.com/heartmarshall/segmentbench/internal/transport/rest"
	classifierv1 "github.com/heartmarshall/segmentbench/pkg/api/classifierv1"
)

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func newService(t *testing.T, pool *pgxpool.Pool, normalize textnorm.Func) (*segmentsvc.Service, *slog.Logger) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	svc := segmentsvc.NewService(
		logger,
		segmentrepo.New(pool),
		classifier.NewKeyword(1),
		postgres.NewTxManager(pool),
		normalize,
		segmentsvc.Config{},
	)
	return svc, logger
}

// ---------------------------------------------------------------------------
// testServer wraps the full-stack REST server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// setupTestServer bootstraps the REST stack backed by a real PostgreSQL
// container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	svc, logger := newService(t, pool, textnorm.Normalize)

	reg := prometheus.NewRegistry()
	handler := rest.NewRouter(rest.RouterDeps{
		Classify:    rest.NewClassifyHandler(svc, logger),
		Health:      rest.NewHealthHandler(pool, "test-version"),
		Metrics:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		HTTPMetrics: middleware.NewHTTPMetrics(reg),
		Logger:      logger,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// classify posts body to /classify and decodes the JSON response.
func (ts *testServer) classify(t *testing.T, body any) (int, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+"/classify", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

// ---------------------------------------------------------------------------
// gRPC stack over an in-memory listener.
// ---------------------------------------------------------------------------

type grpcTestServer struct {
	Client classifierv1.ClassifierClient
	Pool   *pgxpool.Pool
}

func setupGRPCServer(t *testing.T) *grpcTestServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	svc, logger := newService(t, pool, textnorm.NormalizeFast)

	gs, _ := grpcapi.NewGRPCServer(grpcapi.NewServer(svc, logger), grpcapi.ServerOptions{Logger: logger})

	lis := bufconn.Listen(1 << 20)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &grpcTestServer{Client: classifierv1.NewClassifierClient(conn), Pool: pool}
}

func callCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}
