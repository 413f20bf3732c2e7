// Package loadgen drives concurrent classification traffic against either
// server and summarizes latency, throughput and outcome codes.
package loadgen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Reviews is the default request corpus. It mixes positive, negative and
// neutral texts with inputs the server must reject.
var Reviews = []string{
	"Excellent product! Highly recommend.",
	"Great quality and fast shipping!",
	"Love it! Will buy again.",
	"Terrible quality, waste of money.",
	"Very disappointed with this purchase.",
	"Do not buy! Complete garbage.",
	"Average, nothing special.",
	"It's okay, does what it's supposed to.",
	"Meh, could be better.",
	"The product is great but shipping was terrible.",
	"Good value but I had some minor problems.",
	"Fantastic features but I still feel unhappy.",
	"",
	"     ",
	"a",
	strings.Repeat("Great! ", 100),
	"\U0001F389\U0001F60A\U0001F44D",
	"EXCELLENT PRODUCT!!!",
	"45.6",
	"12345",
}

// Config controls a run. Zero values get defaults from withDefaults.
type Config struct {
	Workers int
	// Duration bounds the run; 0 means until Requests are sent or ctx ends.
	Duration time.Duration
	// Requests caps the total number of calls; 0 means unlimited.
	Requests int
	// Customers is the size of the customer ID pool ("user-1".."user-N").
	Customers int
	// ThinkMin and ThinkMax bound the pause between a worker's calls.
	ThinkMin, ThinkMax time.Duration
	// CallTimeout bounds a single call.
	CallTimeout time.Duration
	Seed        uint64
	Reviews     []string
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = 10
	}
	if c.Customers <= 0 {
		c.Customers = 1000
	}
	if c.CallTimeout <= 0 {
		c.CallTimeout = 5 * time.Second
	}
	if c.ThinkMax < c.ThinkMin {
		c.ThinkMax = c.ThinkMin
	}
	if len(c.Reviews) == 0 {
		c.Reviews = Reviews
	}
	if c.Seed == 0 {
		c.Seed = uint64(time.Now().UnixNano())
	}
	return c
}

// Run sends traffic to target until the duration elapses, the request
// budget is used up or ctx is cancelled, and returns the summary.
func Run(ctx context.Context, target Target, cfg Config) (*Report, error) {
	cfg = cfg.withDefaults()
	if cfg.Duration <= 0 && cfg.Requests <= 0 && ctx.Done() == nil {
		return nil, fmt.Errorf("loadgen: unbounded run: set Duration or Requests")
	}

	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	rec := newRecorder()
	var issued atomic.Int64
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for w := range cfg.Workers {
		rng := rand.New(rand.NewPCG(cfg.Seed, uint64(w)+1))
		g.Go(func() error {
			for gctx.Err() == nil {
				if cfg.Requests > 0 && issued.Add(1) > int64(cfg.Requests) {
					return nil
				}

				customer := fmt.Sprintf("user-%d", rng.IntN(cfg.Customers)+1)
				text := cfg.Reviews[rng.IntN(len(cfg.Reviews))]

				callCtx, cancel := context.WithTimeout(gctx, cfg.CallTimeout)
				t0 := time.Now()
				code, ok := target.Classify(callCtx, customer, text)
				elapsed := time.Since(t0)
				cancel()

				// calls cut short by the end of the run are not samples
				if gctx.Err() != nil && !ok {
					return nil
				}
				rec.add(elapsed, code, ok)

				if pause := think(rng, cfg.ThinkMin, cfg.ThinkMax); pause > 0 {
					select {
					case <-gctx.Done():
						return nil
					case <-time.After(pause):
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rec.report(target.Name(), time.Since(start)), nil
}

func think(rng *rand.Rand, lo, hi time.Duration) time.Duration {
	if hi <= 0 {
		return 0
	}
	if hi == lo {
		return lo
	}
	return lo + time.Duration(rng.Int64N(int64(hi-lo)))
}

type recorder struct {
	mu        sync.Mutex
	latencies []time.Duration
	codes     map[string]int
	failures  int
}

func newRecorder() *recorder {
	return &recorder{codes: make(map[string]int)}
}

func (r *recorder) add(d time.Duration, code string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latencies = append(r.latencies, d)
	r.codes[code]++
	if !ok {
		r.failures++
	}
}

func (r *recorder) report(name string, wall time.Duration) *Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return summarize(name, r.latencies, r.codes, r.failures, wall)
}
