package models

// Canonical column names of the persisted movie table, in storage order.
const (
	ColID          = "id"
	ColTitle       = "title"
	ColReleaseDate = "release_date"
	ColReleaseYear = "release_year"
	ColVoteAverage = "vote_average"
	ColVoteCount   = "vote_count"
	ColPopularity  = "popularity"
	ColBudget      = "budget"
	ColRevenue     = "revenue"
	ColGenres      = "genres"
)

// MovieColumns is the fixed projection applied by the cleaner.
var MovieColumns = []string{
	ColID, ColTitle, ColReleaseYear, ColVoteAverage, ColVoteCount,
	ColPopularity, ColBudget, ColRevenue, ColGenres,
}

// RawTable holds unprocessed rows exactly as read from the source CSV.
type RawTable struct {
	Header []string
	Rows   [][]string

	index map[string]int
}

// NewRawTable builds a RawTable and indexes its header.
func NewRawTable(header []string, rows [][]string) *RawTable {
	t := &RawTable{Header: header, Rows: rows, index: make(map[string]int, len(header))}
	for i, h := range header {
		if _, dup := t.index[h]; !dup {
			t.index[h] = i
		}
	}
	return t
}

// HasColumn reports whether the header contains col.
func (t *RawTable) HasColumn(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Get returns the cell for col in row. ok is false when the column is absent,
// the row is short, or the cell is empty.
func (t *RawTable) Get(row []string, col string) (string, bool) {
	i, ok := t.index[col]
	if !ok || i >= len(row) || row[i] == "" {
		return "", false
	}
	return row[i], true
}

// Movie is the cleaned record persisted to the store.
// Title and ReleaseYear are always set.
type Movie struct {
	ID          *string
	Title       string
	ReleaseYear int
	VoteAverage *float64
	VoteCount   *int64
	Popularity  *float64
	Budget      *float64
	Revenue     *float64
	Genres      *string
}

// Value returns the driver value stored under col, nil when unset.
func (m *Movie) Value(col string) any {
	switch col {
	case ColID:
		return derefString(m.ID)
	case ColTitle:
		return m.Title
	case ColReleaseYear:
		return int64(m.ReleaseYear)
	case ColVoteAverage:
		return derefFloat(m.VoteAverage)
	case ColVoteCount:
		if m.VoteCount == nil {
			return nil
		}
		return *m.VoteCount
	case ColPopularity:
		return derefFloat(m.Popularity)
	case ColBudget:
		return derefFloat(m.Budget)
	case ColRevenue:
		return derefFloat(m.Revenue)
	case ColGenres:
		return derefString(m.Genres)
	}
	return nil
}

// MovieTable is the cleaner output: the projected columns present in the
// source plus the surviving movies.
type MovieTable struct {
	Columns []string
	Movies  []Movie
}

// Len returns the number of movies.
func (t *MovieTable) Len() int {
	return len(t.Movies)
}

// Row returns the driver values for movie i in column order.
func (t *MovieTable) Row(i int) []any {
	row := make([]any, len(t.Columns))
	for j, col := range t.Columns {
		row[j] = t.Movies[i].Value(col)
	}
	return row
}

func derefString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func derefFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
