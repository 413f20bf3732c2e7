// Command loadgen drives classification traffic against a running
// rest-server or grpc-server and prints a latency and throughput summary.
//
// Flags:
//
//	--target     rest or grpc (default: rest)
//	--addr       server address; a base URL for rest, host:port for grpc
//	--workers    concurrent simulated users (default: 10)
//	--duration   run length (default: 30s)
//	--requests   stop after this many calls; 0 = unlimited
//	--customers  size of the customer ID pool (default: 1000)
//	--think-min  minimum pause between a worker's calls (default: 100ms)
//	--think-max  maximum pause between a worker's calls (default: 1s)
//	--out        also write the report as JSON to this file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/heartmarshall/segmentbench/internal/app"
	"github.com/heartmarshall/segmentbench/internal/config"
	"github.com/heartmarshall/segmentbench/internal/loadgen"
	classifierv1 "github.com/heartmarshall/segmentbench/pkg/api/classifierv1"
)

func main() {
	targetFlag := flag.String("target", "rest", "rest or grpc")
	addrFlag := flag.String("addr", "", "server address (default: http://localhost:8000 or localhost:50051)")
	workersFlag := flag.Int("workers", 10, "concurrent simulated users")
	durationFlag := flag.Duration("duration", 30*time.Second, "run length")
	requestsFlag := flag.Int("requests", 0, "stop after this many calls (0 = unlimited)")
	customersFlag := flag.Int("customers", 1000, "size of the customer ID pool")
	thinkMinFlag := flag.Duration("think-min", 100*time.Millisecond, "minimum pause between calls")
	thinkMaxFlag := flag.Duration("think-max", time.Second, "maximum pause between calls")
	outFlag := flag.String("out", "", "write the JSON report to this file")
	flag.Parse()

	logger := app.NewLogger(config.LogConfig{Level: "info", Format: "text"})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	target, closeFn, err := newTarget(*targetFlag, *addrFlag)
	if err != nil {
		log.Fatalf("loadgen: %v", err)
	}
	defer closeFn()

	logger.Info("load test started",
		slog.String("target", target.Name()),
		slog.Int("workers", *workersFlag),
		slog.Duration("duration", *durationFlag),
	)

	rep, err := loadgen.Run(ctx, target, loadgen.Config{
		Workers:   *workersFlag,
		Duration:  *durationFlag,
		Requests:  *requestsFlag,
		Customers: *customersFlag,
		ThinkMin:  *thinkMinFlag,
		ThinkMax:  *thinkMaxFlag,
	})
	if err != nil {
		logger.Error("load test failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := rep.WriteText(os.Stdout); err != nil {
		logger.Error("write report", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *outFlag != "" {
		if err := writeJSON(*outFlag, rep); err != nil {
			logger.Error("save report", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("report saved", slog.String("path", *outFlag))
	}
}

func newTarget(kind, addr string) (loadgen.Target, func(), error) {
	switch kind {
	case "rest":
		if addr == "" {
			addr = "http://localhost:8000"
		}
		client := &http.Client{Timeout: 10 * time.Second}
		return loadgen.NewRESTTarget(client, addr), func() {}, nil
	case "grpc":
		if addr == "" {
			addr = "localhost:50051"
		}
		conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, nil, fmt.Errorf("dial %s: %w", addr, err)
		}
		return loadgen.NewGRPCTarget(classifierv1.NewClassifierClient(conn)), func() { _ = conn.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown target %q (want rest or grpc)", kind)
	}
}

func writeJSON(path string, rep *loadgen.Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
