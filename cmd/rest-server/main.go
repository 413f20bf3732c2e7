// Command rest-server serves POST /classify over HTTP/JSON.
//
// Flags:
//
//	--config  path to the YAML config file (default: $CONFIG_PATH, then ./config.yaml)
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/segmentbench/internal/app"
	"github.com/heartmarshall/segmentbench/internal/config"
)

func main() {
	configFlag := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output())
		config.Usage(flag.CommandLine.Output())
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.RunREST(ctx, *configFlag); err != nil {
		log.Fatalf("rest-server: %v", err)
	}
}
