package loadgen

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"google.golang.org/grpc/status"

	classifierv1 "github.com/heartmarshall/segmentbench/pkg/api/classifierv1"
)

// Target sends one classification request. code is the transport-level
// outcome ("200", "InvalidArgument", ...); ok reports whether the call
// counts as a success.
type Target interface {
	Name() string
	Classify(ctx context.Context, customerID, text string) (code string, ok bool)
}

// RESTTarget posts to /classify of a REST server.
type RESTTarget struct {
	client *http.Client
	url    string
}

// NewRESTTarget creates a target for the REST server at baseURL.
func NewRESTTarget(client *http.Client, baseURL string) *RESTTarget {
	return &RESTTarget{client: client, url: baseURL + "/classify"}
}

func (t *RESTTarget) Name() string { return "REST_API" }

func (t *RESTTarget) Classify(ctx context.Context, customerID, text string) (string, bool) {
	body, err := json.Marshal(map[string]string{"customer_id": customerID, "review_text": text})
	if err != nil {
		return codeError, false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return codeError, false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return codeError, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return strconv.Itoa(resp.StatusCode), false
	}

	var out struct {
		Segment string `json:"segment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Segment == "" {
		return codeMissingFields, false
	}
	return strconv.Itoa(resp.StatusCode), true
}

// GRPCTarget calls classifier.v1.Classifier/Classify.
type GRPCTarget struct {
	client classifierv1.ClassifierClient
}

// NewGRPCTarget creates a target for a gRPC connection.
func NewGRPCTarget(client classifierv1.ClassifierClient) *GRPCTarget {
	return &GRPCTarget{client: client}
}

func (t *GRPCTarget) Name() string { return "GRPC_API" }

func (t *GRPCTarget) Classify(ctx context.Context, customerID, text string) (string, bool) {
	resp, err := t.client.Classify(ctx, &classifierv1.ClassificationRequest{
		CustomerId: customerID,
		ReviewText: text,
	})
	if err != nil {
		return status.Code(err).String(), false
	}
	if resp.GetSegment() == "" || resp.GetConfidence() < 0 {
		return codeMissingFields, false
	}
	return "OK", true
}

const (
	codeError         = "transport_error"
	codeMissingFields = "missing_fields"
)

