package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/segmentbench/internal/domain"
	"github.com/heartmarshall/segmentbench/internal/service/segment"
)

// MaxBodyBytes caps the size of a /classify request body.
const MaxBodyBytes = 1 << 20

// classifyService defines the minimal interface needed by ClassifyHandler.
type classifyService interface {
	Classify(ctx context.Context, input segment.ClassifyInput) (*segment.ClassifyResult, error)
}

// ClassifyHandler serves POST /classify.
type ClassifyHandler struct {
	svc classifyService
	log *slog.Logger
}

// NewClassifyHandler creates a ClassifyHandler.
func NewClassifyHandler(svc classifyService, logger *slog.Logger) *ClassifyHandler {
	return &ClassifyHandler{svc: svc, log: logger.With("handler", "classify")}
}

// classifyRequest accepts "review_text" as an alias of "text".
type classifyRequest struct {
	CustomerID string  `json:"customer_id"`
	Text       *string `json:"text"`
	ReviewText *string `json:"review_text"`
}

func (r classifyRequest) text() string {
	if r.Text != nil {
		return *r.Text
	}
	if r.ReviewText != nil {
		return *r.ReviewText
	}
	return ""
}

type classifyResponse struct {
	CustomerID     string         `json:"customer_id"`
	Segment        string         `json:"segment"`
	Confidence     float64        `json:"confidence"`
	NormalizedText string         `json:"normalized_text"`
	History        []historyEntry `json:"history"`
}

type historyEntry struct {
	Segment     string  `json:"segment"`
	Confidence  float64 `json:"confidence"`
	ProcessedAt string  `json:"processed_at"`
}

// Classify handles POST /classify.
func (h *ClassifyHandler) Classify(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Classify(r.Context(), segment.ClassifyInput{
		CustomerID: req.CustomerID,
		Text:       req.text(),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toClassifyResponse(result))
}

func toClassifyResponse(res *segment.ClassifyResult) classifyResponse {
	return classifyResponse{
		CustomerID:     res.CustomerID,
		Segment:        res.Segment.String(),
		Confidence:     res.Confidence,
		NormalizedText: res.NormalizedText,
		History:        toHistory(res.History),
	}
}

func toHistory(records []domain.ClassificationRecord) []historyEntry {
	out := make([]historyEntry, 0, len(records))
	for _, rec := range records {
		out = append(out, historyEntry{
			Segment:     rec.Segment.String(),
			Confidence:  rec.Confidence,
			ProcessedAt: rec.ProcessedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return out
}
