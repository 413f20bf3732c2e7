package segment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/heartmarshall/segmentbench/internal/classifier"
	"github.com/heartmarshall/segmentbench/internal/domain"
)

// Classify normalizes and classifies the review text, stores the outcome and
// returns it together with the customer's most recent prior records. The row
// written by this call is never part of the history.
//
// Errors unwrap to domain.ErrValidation, domain.ErrDependencyUnavailable,
// domain.ErrInternal or a context error.
func (s *Service) Classify(ctx context.Context, input ClassifyInput) (*ClassifyResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	normalized, label, err := s.analyze(ctx, input.Text)
	if err != nil {
		return nil, err
	}

	var (
		record  domain.ClassificationRecord
		history []domain.ClassificationRecord
	)
	persist := func(ctx context.Context) error {
		var err error
		record, err = s.repo.Insert(ctx, input.CustomerID, label.Segment, label.Confidence)
		if err != nil {
			return fmt.Errorf("insert classification: %w", err)
		}
		history, err = s.repo.RecentFor(ctx, input.CustomerID, s.cfg.HistoryFetch)
		if err != nil {
			return fmt.Errorf("read history: %w", err)
		}
		return nil
	}

	if s.cfg.AtomicHistory && s.tx != nil {
		err = s.tx.RunInTx(ctx, persist)
	} else {
		err = persist(ctx)
	}
	if err != nil {
		return nil, storeError(err)
	}

	history = priorRecords(history, record.ID, s.cfg.HistoryLimit)

	s.log.DebugContext(ctx, "classification stored",
		slog.String("customer_id", input.CustomerID),
		slog.String("segment", label.Segment.String()),
		slog.Float64("confidence", label.Confidence),
		slog.Int64("record_id", record.ID),
		slog.Int("history", len(history)),
	)

	return &ClassifyResult{
		CustomerID:     input.CustomerID,
		Segment:        label.Segment,
		Confidence:     label.Confidence,
		NormalizedText: normalized,
		Record:         record,
		History:        history,
	}, nil
}

// analyze runs the pure steps. A panic inside them is reported as
// domain.ErrInternal instead of crashing the worker.
func (s *Service) analyze(ctx context.Context, text string) (normalized string, label classifier.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "panic in classification",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
			)
			err = fmt.Errorf("%w: panic: %v", domain.ErrInternal, r)
		}
	}()

	normalized = s.normalize(text)

	label, err = s.model.Classify(ctx, normalized)
	if err != nil {
		if isContextErr(err) {
			return "", classifier.Result{}, err
		}
		return "", classifier.Result{}, fmt.Errorf("%w: classify: %w", domain.ErrInternal, err)
	}
	if !label.Segment.IsValid() {
		return "", classifier.Result{}, fmt.Errorf("%w: classifier returned unknown segment %q", domain.ErrInternal, label.Segment)
	}
	return normalized, label, nil
}

// priorRecords drops the row with id current from recent (newest first) and
// keeps at most limit entries. The result is never nil.
func priorRecords(recent []domain.ClassificationRecord, current int64, limit int) []domain.ClassificationRecord {
	out := make([]domain.ClassificationRecord, 0, min(len(recent), limit))
	for _, r := range recent {
		if len(out) == limit {
			break
		}
		if r.ID == current {
			continue
		}
		out = append(out, r)
	}
	return out
}

// storeError passes context errors through and reports every other store
// failure, integrity violations included, as an unavailable dependency.
func storeError(err error) error {
	switch {
	case isContextErr(err), errors.Is(err, domain.ErrDependencyUnavailable):
		return err
	default:
		return fmt.Errorf("%w: %w", domain.ErrDependencyUnavailable, err)
	}
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
