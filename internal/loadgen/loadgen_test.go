package loadgen

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	calls atomic.Int64
	delay time.Duration
	fn    func(customerID, text string) (string, bool)

	mu        sync.Mutex
	customers map[string]struct{}
}

func (f *fakeTarget) Name() string { return "FAKE" }

func (f *fakeTarget) Classify(ctx context.Context, customerID, text string) (string, bool) {
	f.calls.Add(1)
	f.mu.Lock()
	if f.customers == nil {
		f.customers = make(map[string]struct{})
	}
	f.customers[customerID] = struct{}{}
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return codeError, false
		case <-time.After(f.delay):
		}
	}
	if f.fn != nil {
		return f.fn(customerID, text)
	}
	return "200", true
}

func TestRun_RequestBudget(t *testing.T) {
	t.Parallel()

	target := &fakeTarget{}
	rep, err := Run(context.Background(), target, Config{Workers: 4, Requests: 100, Customers: 3, Seed: 7})
	require.NoError(t, err)

	assert.Equal(t, int64(100), target.calls.Load())
	assert.Equal(t, 100, rep.TotalRequests)
	assert.Equal(t, 0, rep.TotalFailures)
	assert.InDelta(t, 100.0, rep.SuccessRate, 0.001)
	assert.Equal(t, map[string]int{"200": 100}, rep.StatusCodes)
	assert.Equal(t, "FAKE", rep.TestType)
	assert.LessOrEqual(t, len(target.customers), 3)
}

func TestRun_CountsFailuresByCode(t *testing.T) {
	t.Parallel()

	target := &fakeTarget{fn: func(_, text string) (string, bool) {
		if text == "" {
			return "400", false
		}
		return "200", true
	}}
	rep, err := Run(context.Background(), target, Config{
		Workers:  2,
		Requests: 10,
		Reviews:  []string{""},
		Seed:     1,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, rep.TotalFailures)
	assert.Equal(t, map[string]int{"400": 10}, rep.StatusCodes)
	assert.Zero(t, rep.SuccessRate)
}

func TestRun_DurationStopsWorkers(t *testing.T) {
	t.Parallel()

	target := &fakeTarget{delay: time.Millisecond}
	start := time.Now()
	rep, err := Run(context.Background(), target, Config{Workers: 3, Duration: 50 * time.Millisecond, Seed: 2})
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Positive(t, rep.TotalRequests)
	assert.Zero(t, rep.TotalFailures, "calls cut off by the deadline are not counted")
}

func TestRun_ContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	target := &fakeTarget{delay: time.Millisecond}
	time.AfterFunc(30*time.Millisecond, cancel)

	_, err := Run(ctx, target, Config{Workers: 2, Seed: 3})
	require.NoError(t, err)
	assert.Positive(t, target.calls.Load())
}

func TestRun_Unbounded(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), &fakeTarget{}, Config{Workers: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unbounded")
}

func TestConfig_WithDefaults(t *testing.T) {
	t.Parallel()

	cfg := Config{Seed: 9}.withDefaults()
	assert.Equal(t, 10, cfg.Workers)
	assert.Equal(t, Reviews, cfg.Reviews)

	cfg = Config{ThinkMin: time.Second}.withDefaults()
	assert.Equal(t, time.Second, cfg.ThinkMax, "max is raised to min")
}
