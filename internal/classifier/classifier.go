// Package classifier provides the mock segment model used by both servers.
package classifier

import (
	"context"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/heartmarshall/segmentbench/internal/domain"
)

// Result is the outcome of classifying one normalized text.
type Result struct {
	Segment    domain.Segment
	Confidence float64
}

type band struct {
	segment  domain.Segment
	keywords []string
	lo, hi   float64
}

// Checked in order; the first band with a matching keyword wins.
var bands = []band{
	{
		segment:  domain.SegmentHighValue,
		keywords: []string{"great", "fantastic", "love", "happy", "excellent"},
		lo:       0.85, hi: 0.99,
	},
	{
		segment:  domain.SegmentAtRisk,
		keywords: []string{"terrible", "bad", "unhappy", "problem", "hate"},
		lo:       0.75, hi: 0.95,
	},
}

var fallback = band{segment: domain.SegmentMidValue, lo: 0.50, hi: 0.80}

// Keyword assigns a segment by substring keyword match and draws a
// confidence uniformly from the segment's band. Safe for concurrent use.
type Keyword struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewKeyword creates a Keyword classifier. A zero seed picks a time-based one.
func NewKeyword(seed uint64) *Keyword {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Keyword{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Classify labels text. Matching is case-insensitive substring search, so
// "unhappy" also contains "happy" and lands in High-Value.
func (k *Keyword) Classify(ctx context.Context, text string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	b := pick(strings.ToLower(text))

	k.mu.Lock()
	u := k.rng.Float64()
	k.mu.Unlock()

	return Result{
		Segment:    b.segment,
		Confidence: round4(b.lo + (b.hi-b.lo)*u),
	}, nil
}

func pick(text string) band {
	for _, b := range bands {
		for _, kw := range b.keywords {
			if strings.Contains(text, kw) {
				return b
			}
		}
	}
	return fallback
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
