package storage

import (
	"context"
	"fmt"
	"strings"

	"movie-dashboard/models"
)

// WriteMovies replaces table with the given movies: the table is dropped,
// recreated with the present columns, and filled, all in one transaction.
// Writing the same movies twice leaves the same persisted state.
func (s *Store) WriteMovies(ctx context.Context, table string, movies *models.MovieTable) error {
	if err := ValidateTable(table); err != nil {
		return err
	}
	if len(movies.Columns) == 0 {
		return fmt.Errorf("store: write %s: no columns", table)
	}

	db, err := s.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		return fmt.Errorf("store: drop %s: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, s.createTableSQL(table, movies.Columns)); err != nil {
		return fmt.Errorf("store: create %s: %w", table, err)
	}

	if movies.Len() > 0 {
		stmt, err := tx.PrepareContext(ctx, s.Rebind(insertSQL(table, movies.Columns)))
		if err != nil {
			return fmt.Errorf("store: prepare insert: %w", err)
		}
		defer stmt.Close()

		for i := 0; i < movies.Len(); i++ {
			if _, err := stmt.ExecContext(ctx, movies.Row(i)...); err != nil {
				return fmt.Errorf("store: insert row %d: %w", i, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}

func (s *Store) createTableSQL(table string, columns []string) string {
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = col + " " + s.dialect.columnType(col)
	}
	return fmt.Sprintf("CREATE TABLE %s (\n\t%s\n)", table, strings.Join(defs, ",\n\t"))
}

func insertSQL(table string, columns []string) string {
	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
}
