package segment

import (
	"strings"

	"github.com/heartmarshall/segmentbench/internal/domain"
)

// ClassifyInput holds the caller-supplied fields of one request.
type ClassifyInput struct {
	CustomerID string
	Text       string
}

// Validate checks all fields and collects all errors.
func (i ClassifyInput) Validate() error {
	var ve domain.ValidationError

	if strings.TrimSpace(i.CustomerID) == "" {
		ve.Add("customer_id", "required")
	}
	if strings.TrimSpace(i.Text) == "" {
		ve.Add("text", "required")
	}

	return ve.Err()
}

// ClassifyResult is what both transports serialize back to the caller.
type ClassifyResult struct {
	CustomerID     string
	Segment        domain.Segment
	Confidence     float64
	NormalizedText string
	// Record is the row written for this request.
	Record domain.ClassificationRecord
	// History holds the customer's most recent prior records, newest first.
	// It never contains Record.
	History []domain.ClassificationRecord
}
