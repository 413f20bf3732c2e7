package domain

import "time"

// Segment is the customer value bucket assigned by the classifier.
type Segment string

const (
	SegmentHighValue Segment = "High-Value"
	SegmentMidValue  Segment = "Mid-Value"
	SegmentAtRisk    Segment = "At-Risk"
)

func (s Segment) String() string { return string(s) }

func (s Segment) IsValid() bool {
	switch s {
	case SegmentHighValue, SegmentMidValue, SegmentAtRisk:
		return true
	}
	return false
}

// ClassificationRecord is one persisted classification outcome.
// Records are append-only; ID grows monotonically and defines recency.
type ClassificationRecord struct {
	ID          int64
	CustomerID  string
	Segment     Segment
	Confidence  float64
	ProcessedAt time.Time
}
