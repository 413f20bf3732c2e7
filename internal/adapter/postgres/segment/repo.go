// Package segment implements the classification history store on PostgreSQL.
package segment

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/segmentbench/internal/adapter/postgres"
	"github.com/heartmarshall/segmentbench/internal/domain"
)

const table = "customer_segments"

var columns = []string{"id", "customer_id", "segment", "confidence", "processed_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// row mirrors one customer_segments row for scanning.
type row struct {
	ID          int64     `db:"id"`
	CustomerID  string    `db:"customer_id"`
	Segment     string    `db:"segment"`
	Confidence  float64   `db:"confidence"`
	ProcessedAt time.Time `db:"processed_at"`
}

func (r row) toDomain() domain.ClassificationRecord {
	return domain.ClassificationRecord{
		ID:          r.ID,
		CustomerID:  r.CustomerID,
		Segment:     domain.Segment(r.Segment),
		Confidence:  r.Confidence,
		ProcessedAt: r.ProcessedAt,
	}
}

// Repo provides classification record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new segment repository. db is usually the *pgxpool.Pool;
// a transaction in the request context takes precedence over it.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Insert appends a classification record and returns it with the id and
// processed_at assigned by the database.
func (r *Repo) Insert(ctx context.Context, customerID string, seg domain.Segment, confidence float64) (domain.ClassificationRecord, error) {
	query, args, err := psql.
		Insert(table).
		Columns("customer_id", "segment", "confidence").
		Values(customerID, string(seg), confidence).
		Suffix("RETURNING id, customer_id, segment, confidence, processed_at").
		ToSql()
	if err != nil {
		return domain.ClassificationRecord{}, fmt.Errorf("build insert %s: %w", table, err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return domain.ClassificationRecord{}, postgres.MapError(err, "insert customer_segment", customerID)
	}

	return out.toDomain(), nil
}

// RecentFor returns up to limit records for customerID, most recent first.
// An unknown customer yields an empty, non-nil slice.
func (r *Repo) RecentFor(ctx context.Context, customerID string, limit int) ([]domain.ClassificationRecord, error) {
	if limit <= 0 {
		return []domain.ClassificationRecord{}, nil
	}

	query, args, err := psql.
		Select(columns...).
		From(table).
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", table, err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "list customer_segments", customerID)
	}

	records := make([]domain.ClassificationRecord, 0, len(rows))
	for _, rw := range rows {
		records = append(records, rw.toDomain())
	}
	return records, nil
}
