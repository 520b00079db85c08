package storage

import (
	"strconv"
	"strings"

	"movie-dashboard/models"
)

// dialect captures the SQL differences between the supported drivers.
type dialect interface {
	driverName() string
	columnType(col string) string
	rebind(query string) string
}

type sqliteDialect struct{}

func (sqliteDialect) driverName() string { return "sqlite" }

func (sqliteDialect) columnType(col string) string {
	switch col {
	case models.ColTitle:
		return "TEXT NOT NULL"
	case models.ColReleaseYear:
		return "INTEGER NOT NULL"
	case models.ColVoteCount:
		return "INTEGER"
	case models.ColVoteAverage, models.ColPopularity, models.ColBudget, models.ColRevenue:
		return "REAL"
	default:
		return "TEXT"
	}
}

func (sqliteDialect) rebind(query string) string { return query }

type postgresDialect struct{}

func (postgresDialect) driverName() string { return "postgres" }

func (postgresDialect) columnType(col string) string {
	switch col {
	case models.ColTitle:
		return "TEXT NOT NULL"
	case models.ColReleaseYear:
		return "INTEGER NOT NULL"
	case models.ColVoteCount:
		return "BIGINT"
	case models.ColVoteAverage, models.ColPopularity, models.ColBudget, models.ColRevenue:
		return "DOUBLE PRECISION"
	default:
		return "TEXT"
	}
}

// rebind rewrites ? placeholders as $1, $2, ... skipping quoted literals.
func (postgresDialect) rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inQuote := false
	for _, r := range query {
		switch {
		case r == '\'':
			inQuote = !inQuote
			b.WriteRune(r)
		case r == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
