// Package grpcapi exposes the segment service over gRPC as
// classifier.v1.Classifier.
package grpcapi

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/segmentbench/internal/domain"
	"github.com/heartmarshall/segmentbench/internal/service/segment"
	classifierv1 "github.com/heartmarshall/segmentbench/pkg/api/classifierv1"
)

// classifyService defines the minimal interface needed by Server.
type classifyService interface {
	Classify(ctx context.Context, input segment.ClassifyInput) (*segment.ClassifyResult, error)
}

// Server implements classifierv1.ClassifierServer.
type Server struct {
	classifierv1.UnimplementedClassifierServer

	svc classifyService
	log *slog.Logger
}

// NewServer creates a Server.
func NewServer(svc classifyService, logger *slog.Logger) *Server {
	return &Server{svc: svc, log: logger.With("handler", "grpc.classify")}
}

// Classify handles classifier.v1.Classifier/Classify.
func (s *Server) Classify(ctx context.Context, req *classifierv1.ClassificationRequest) (*classifierv1.ClassificationResponse, error) {
	result, err := s.svc.Classify(ctx, segment.ClassifyInput{
		CustomerID: req.GetCustomerId(),
		Text:       req.GetReviewText(),
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toResponse(result), nil
}

func toResponse(res *segment.ClassifyResult) *classifierv1.ClassificationResponse {
	return &classifierv1.ClassificationResponse{
		CustomerId: res.CustomerID,
		Segment:    res.Segment.String(),
		Confidence: res.Confidence,
		History:    toHistory(res.History),
	}
}

func toHistory(records []domain.ClassificationRecord) []*classifierv1.HistoryEntry {
	out := make([]*classifierv1.HistoryEntry, 0, len(records))
	for _, rec := range records {
		out = append(out, &classifierv1.HistoryEntry{
			Segment:     rec.Segment.String(),
			Confidence:  rec.Confidence,
			ProcessedAt: rec.ProcessedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return out
}
