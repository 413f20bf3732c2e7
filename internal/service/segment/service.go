// Package segment orchestrates one classification request: validate,
// normalize, classify, persist, and read back the customer's history.
// Both the REST and the gRPC servers call into this package.
package segment

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/segmentbench/internal/classifier"
	"github.com/heartmarshall/segmentbench/internal/domain"
	"github.com/heartmarshall/segmentbench/internal/textnorm"
)

const (
	DefaultHistoryFetch = 5
	DefaultHistoryLimit = 2
)

type segmentRepo interface {
	Insert(ctx context.Context, customerID string, seg domain.Segment, confidence float64) (domain.ClassificationRecord, error)
	RecentFor(ctx context.Context, customerID string, limit int) ([]domain.ClassificationRecord, error)
}

type model interface {
	Classify(ctx context.Context, text string) (classifier.Result, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config tunes history handling.
type Config struct {
	// HistoryFetch is how many rows are read back after the insert.
	HistoryFetch int
	// HistoryLimit is how many of those rows, excluding the one just
	// written, are returned.
	HistoryLimit int
	// AtomicHistory runs insert and read-back in one transaction, so a
	// failed read also discards the new row.
	AtomicHistory bool
}

func (c Config) withDefaults() Config {
	if c.HistoryFetch <= 0 {
		c.HistoryFetch = DefaultHistoryFetch
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = DefaultHistoryLimit
	}
	if c.HistoryLimit > c.HistoryFetch {
		c.HistoryLimit = c.HistoryFetch
	}
	return c
}

// Service provides customer segment classification.
type Service struct {
	repo      segmentRepo
	model     model
	tx        txManager
	normalize textnorm.Func
	cfg       Config
	log       *slog.Logger
}

// NewService creates a new segment Service. normalize selects the text
// normalizer flavour; nil means textnorm.Normalize.
func NewService(
	log *slog.Logger,
	repo segmentRepo,
	model model,
	tx txManager,
	normalize textnorm.Func,
	cfg Config,
) *Service {
	if normalize == nil {
		normalize = textnorm.Normalize
	}
	return &Service{
		repo:      repo,
		model:     model,
		tx:        tx,
		normalize: normalize,
		cfg:       cfg.withDefaults(),
		log:       log.With("service", "segment"),
	}
}
