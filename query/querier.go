// Package query runs read-only, parameter-bound queries against the movie
// store and returns their results as tables.
package query

import (
	"context"
	"fmt"
	"time"

	"movie-dashboard/metrics"
	"movie-dashboard/models"
	"movie-dashboard/storage"
	"movie-dashboard/utils"
)

// Querier executes queries against one movie table. It keeps no connection
// and no state between calls.
type Querier struct {
	store  *storage.Store
	table  string
	logger *utils.Logger
}

// New returns a Querier for table in store.
func New(store *storage.Store, table string, logger *utils.Logger) (*Querier, error) {
	if err := storage.ValidateTable(table); err != nil {
		return nil, err
	}
	return &Querier{store: store, table: table, logger: logger}, nil
}

// Run executes one statement written with ? placeholders and returns its
// rows. The store is opened and closed around the call.
func (q *Querier) Run(ctx context.Context, query string, args ...any) (*models.Table, error) {
	return q.run(ctx, "raw", query, args...)
}

func (q *Querier) run(ctx context.Context, name, query string, args ...any) (tbl *models.Table, err error) {
	start := time.Now()
	defer func() { metrics.RecordQuery(name, start, err) }()

	db, err := q.store.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, q.store.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("query %s: columns: %w", name, err)
	}

	tbl = &models.Table{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		vals := make([]any, len(cols))
		dest := make([]any, len(cols))
		for i := range vals {
			dest[i] = &vals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("query %s: scan: %w", name, err)
		}
		for i := range vals {
			vals[i] = normalize(vals[i])
		}
		tbl.Rows = append(tbl.Rows, vals)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}

	q.logger.Debug("[query] %s returned %d rows in %v", name, tbl.Len(), time.Since(start))
	return tbl, nil
}

// normalize maps driver values onto int64, float64, string or nil.
func normalize(v any) any {
	switch x := v.(type) {
	case nil, int64, float64, string:
		return x
	case []byte:
		return string(x)
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case float32:
		return float64(x)
	case bool:
		if x {
			return int64(1)
		}
		return int64(0)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}
