package segment_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/segmentbench/internal/adapter/postgres"
	"github.com/heartmarshall/segmentbench/internal/adapter/postgres/segment"
	"github.com/heartmarshall/segmentbench/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/segmentbench/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*segment.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return segment.New(pool), pool
}

func TestRepo_InsertThenRecentFor(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()
	customerID := testhelper.UniqueCustomerID(t)

	inserted, err := repo.Insert(ctx, customerID, domain.SegmentAtRisk, 0.8123)
	if err != nil {
		t.Fatalf("Insert: unexpected error: %v", err)
	}
	if inserted.ID == 0 || inserted.ProcessedAt.IsZero() {
		t.Fatalf("Insert: store-assigned fields missing: %+v", inserted)
	}

	got, err := repo.RecentFor(ctx, customerID, 5)
	if err != nil {
		t.Fatalf("RecentFor: unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("RecentFor: len = %d, want 1", len(got))
	}
	if got[0].Segment != domain.SegmentAtRisk || got[0].Confidence != 0.8123 {
		t.Errorf("RecentFor()[0] = %+v, want segment At-Risk confidence 0.8123", got[0])
	}
	if got[0].ID != inserted.ID {
		t.Errorf("RecentFor()[0].ID = %d, want %d", got[0].ID, inserted.ID)
	}
}

func TestRepo_RecentFor_OrderAndLimit(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	customerID := testhelper.UniqueCustomerID(t)

	var ids []int64
	for i := 0; i < 7; i++ {
		rec := testhelper.SeedRecord(t, pool, customerID, domain.SegmentMidValue, 0.5+float64(i)/100)
		ids = append(ids, rec.ID)
	}
	// Another customer's rows must not leak in.
	testhelper.SeedRecord(t, pool, testhelper.UniqueCustomerID(t), domain.SegmentHighValue, 0.9)

	got, err := repo.RecentFor(ctx, customerID, 5)
	if err != nil {
		t.Fatalf("RecentFor: unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("RecentFor: len = %d, want 5", len(got))
	}
	for i, rec := range got {
		if want := ids[len(ids)-1-i]; rec.ID != want {
			t.Errorf("RecentFor()[%d].ID = %d, want %d", i, rec.ID, want)
		}
		if rec.CustomerID != customerID {
			t.Errorf("RecentFor()[%d].CustomerID = %q, want %q", i, rec.CustomerID, customerID)
		}
	}
}

func TestRepo_RecentFor_UnknownCustomer(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	got, err := repo.RecentFor(context.Background(), testhelper.UniqueCustomerID(t), 5)
	if err != nil {
		t.Fatalf("RecentFor: unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("RecentFor: got %v, want empty non-nil slice", got)
	}
}

func TestRepo_Insert_JoinsTransaction(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	tm := postgres.NewTxManager(pool)
	customerID := testhelper.UniqueCustomerID(t)

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if _, err := repo.Insert(ctx, customerID, domain.SegmentHighValue, 0.9); err != nil {
			t.Fatalf("Insert in tx: %v", err)
		}
		return context.Canceled
	})

	if got := testhelper.CountRecords(t, pool, customerID); got != 0 {
		t.Fatalf("expected insert to be rolled back with the transaction, got %d rows", got)
	}
}
