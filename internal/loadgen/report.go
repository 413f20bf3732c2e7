package loadgen

import (
	"fmt"
	"io"
	"slices"
	"time"
)

// Report summarizes one run. Latencies are in milliseconds.
type Report struct {
	TestType      string         `json:"test_type"`
	Timestamp     time.Time      `json:"timestamp"`
	TotalRequests int            `json:"total_requests"`
	TotalFailures int            `json:"total_failures"`
	SuccessRate   float64        `json:"success_rate"`
	Throughput    float64        `json:"throughput_rps"`
	MeanMs        float64        `json:"response_time_mean"`
	MinMs         float64        `json:"response_time_min"`
	MaxMs         float64        `json:"response_time_max"`
	P50Ms         float64        `json:"response_time_p50"`
	P90Ms         float64        `json:"response_time_p90"`
	P95Ms         float64        `json:"response_time_p95"`
	P99Ms         float64        `json:"response_time_p99"`
	StatusCodes   map[string]int `json:"status_codes"`
}

func summarize(name string, latencies []time.Duration, codes map[string]int, failures int, wall time.Duration) *Report {
	rep := &Report{
		TestType:      name,
		Timestamp:     time.Now().UTC(),
		TotalRequests: len(latencies),
		TotalFailures: failures,
		StatusCodes:   make(map[string]int, len(codes)),
	}
	for k, v := range codes {
		rep.StatusCodes[k] = v
	}
	n := len(latencies)
	if n == 0 {
		return rep
	}

	sorted := slices.Clone(latencies)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}

	rep.SuccessRate = float64(n-failures) / float64(n) * 100
	if wall > 0 {
		rep.Throughput = float64(n) / wall.Seconds()
	}
	rep.MeanMs = ms(total / time.Duration(n))
	rep.MinMs = ms(sorted[0])
	rep.MaxMs = ms(sorted[n-1])
	rep.P50Ms = ms(percentile(sorted, 0.50))
	rep.P90Ms = ms(percentile(sorted, 0.90))
	rep.P95Ms = ms(percentile(sorted, 0.95))
	rep.P99Ms = ms(percentile(sorted, 0.99))
	return rep
}

// percentile picks sorted[int(n*q)], clamped to the last element.
func percentile(sorted []time.Duration, q float64) time.Duration {
	i := int(float64(len(sorted)) * q)
	if i >= len(sorted) {
		i = len(sorted) - 1
	}
	return sorted[i]
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// WriteText prints the report in a human-readable layout.
func (r *Report) WriteText(w io.Writer) error {
	codes := make([]string, 0, len(r.StatusCodes))
	for c := range r.StatusCodes {
		codes = append(codes, c)
	}
	slices.Sort(codes)

	p := &errWriter{w: w}
	p.printf("Perf Test Results (%s)\n\n", r.TestType)
	p.printf("  Total Requests: %d\n", r.TotalRequests)
	p.printf("  Total Failures: %d\n", r.TotalFailures)
	p.printf("  Success Rate:   %.2f%%\n", r.SuccessRate)
	p.printf("  Throughput:     %.2f req/sec\n\n", r.Throughput)
	p.printf("  Response time (ms)\n")
	p.printf("    mean %.2f  min %.2f  max %.2f\n", r.MeanMs, r.MinMs, r.MaxMs)
	p.printf("    p50 %.2f  p90 %.2f  p95 %.2f  p99 %.2f\n\n", r.P50Ms, r.P90Ms, r.P95Ms, r.P99Ms)
	p.printf("  Status codes\n")
	for _, c := range codes {
		n := r.StatusCodes[c]
		pct := 0.0
		if r.TotalRequests > 0 {
			pct = float64(n) / float64(r.TotalRequests) * 100
		}
		p.printf("    %-18s %d (%.1f%%)\n", c, n, pct)
	}
	return p.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
