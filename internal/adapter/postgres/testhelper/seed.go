package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/segmentbench/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueCustomerID returns a customer id that no other test uses, so tests
// sharing the container never see each other's rows.
func UniqueCustomerID(t *testing.T) string {
	t.Helper()
	return "cust-" + uniqueSuffix()
}

// SeedRecord inserts one classification row and returns it as stored.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, customerID string, segment domain.Segment, confidence float64) domain.ClassificationRecord {
	t.Helper()

	rec := domain.ClassificationRecord{CustomerID: customerID, Segment: segment, Confidence: confidence}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO customer_segments (customer_id, segment, confidence)
		 VALUES ($1, $2, $3)
		 RETURNING id, processed_at`,
		customerID, string(segment), confidence,
	).Scan(&rec.ID, &rec.ProcessedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert: %v", err)
	}
	return rec
}

// CountRecords returns the number of rows stored for customerID.
func CountRecords(t *testing.T, pool *pgxpool.Pool, customerID string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM customer_segments WHERE customer_id = $1`, customerID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountRecords: %v", err)
	}
	return n
}
