package models

import "strings"

// AllGenres is the genre selector value that disables genre filtering.
const AllGenres = "All"

// MovieFilter is the set of dashboard filters for one render. It is a plain
// value and is never shared between requests.
type MovieFilter struct {
	Genre     string
	MinRating float64
	MinVotes  int64
}

// HasGenre reports whether the filter restricts by genre.
func (f MovieFilter) HasGenre() bool {
	g := strings.TrimSpace(f.Genre)
	return g != "" && g != AllGenres
}
