package query

import (
	"context"
	"fmt"
	"strings"

	"movie-dashboard/models"
)

const (
	DefaultTopLimit     = 10
	DefaultGenreLimit   = 20
	PopularLimit        = 10
	FilteredMovieLimit  = 50
	GenreBreakdownLimit = 10
)

// Column lists selected by the movie listings.
const (
	topColumns     = "title, vote_average"
	popularColumns = "title, release_year, vote_average, vote_count"
	byGenreColumns = "title, vote_average, vote_count, genres"
	listingColumns = "title, release_year, vote_average, vote_count, genres"
)

// roundedAvg is AVG(vote_average) rounded to two decimals. Postgres only
// rounds NUMERIC, and the outer cast keeps the result a float in both stores.
const roundedAvg = "CAST(ROUND(CAST(AVG(vote_average) AS NUMERIC), 2) AS DOUBLE PRECISION)"

// TotalMovies counts every stored movie.
func (q *Querier) TotalMovies(ctx context.Context) (int64, error) {
	tbl, err := q.run(ctx, "total_movies", "SELECT COUNT(*) AS total FROM "+q.table)
	if err != nil {
		return 0, err
	}
	total, ok := tbl.Float(0, "total")
	if !ok {
		return 0, fmt.Errorf("query total_movies: no count returned")
	}
	return int64(total), nil
}

// TopMovies returns the n highest rated movies (default 10).
func (q *Querier) TopMovies(ctx context.Context, n int) (*models.Table, error) {
	return q.run(ctx, "top_movies",
		"SELECT "+topColumns+" FROM "+q.table+" ORDER BY vote_average DESC NULLS LAST, title LIMIT ?",
		limitOr(n, DefaultTopLimit))
}

// HighRatedPopular returns up to 10 movies with at least minRating and minVotes.
func (q *Querier) HighRatedPopular(ctx context.Context, minRating float64, minVotes int64) (*models.Table, error) {
	return q.run(ctx, "high_rated_popular",
		"SELECT "+popularColumns+" FROM "+q.table+
			" WHERE vote_average >= ? AND vote_count >= ?"+
			" ORDER BY vote_average DESC NULLS LAST, title LIMIT ?",
		minRating, minVotes, PopularLimit)
}

// MoviesPerGenre counts movies per exact genre combination, largest first
// (default n 20). A movie tagged Action|Comedy counts once, under that string.
// Movies without genres are not counted.
func (q *Querier) MoviesPerGenre(ctx context.Context, n int) (*models.Table, error) {
	return q.run(ctx, "movies_per_genre",
		"SELECT genres, COUNT(*) AS movie_count FROM "+q.table+
			" WHERE genres IS NOT NULL GROUP BY genres ORDER BY movie_count DESC, genres LIMIT ?",
		limitOr(n, DefaultGenreLimit))
}

// TopMoviesByGenre returns the n highest rated movies whose genres contain
// genre as a substring (default n 10).
func (q *Querier) TopMoviesByGenre(ctx context.Context, genre string, n int) (*models.Table, error) {
	return q.run(ctx, "top_movies_by_genre",
		"SELECT "+byGenreColumns+" FROM "+q.table+
			` WHERE genres LIKE ? ESCAPE '\'`+
			" ORDER BY vote_average DESC NULLS LAST, title LIMIT ?",
		containsPattern(genre), limitOr(n, DefaultTopLimit))
}

// FilteredMovies returns up to 50 movies matching f, highest rated first.
func (q *Querier) FilteredMovies(ctx context.Context, f models.MovieFilter) (*models.Table, error) {
	where, args := filterClause(f)
	return q.run(ctx, "filtered_movies",
		"SELECT "+listingColumns+" FROM "+q.table+where+" ORDER BY vote_average DESC NULLS LAST, title LIMIT ?",
		append(args, FilteredMovieLimit)...)
}

// GenreCombinations returns every distinct non-null genres value.
func (q *Querier) GenreCombinations(ctx context.Context) (*models.Table, error) {
	return q.run(ctx, "genre_combinations",
		"SELECT DISTINCT genres FROM "+q.table+" WHERE genres IS NOT NULL ORDER BY genres")
}

// RatingTrend returns the average rating (rounded to two decimals) and movie
// count per release year for movies matching f.
func (q *Querier) RatingTrend(ctx context.Context, f models.MovieFilter) (*models.Table, error) {
	where, args := filterClause(f)
	return q.run(ctx, "rating_trend",
		"SELECT release_year, "+roundedAvg+" AS avg_rating, COUNT(*) AS movie_count FROM "+q.table+where+
			" GROUP BY release_year ORDER BY release_year",
		args...)
}

// GenreBreakdown counts movies matching f per genre combination, top 10.
func (q *Querier) GenreBreakdown(ctx context.Context, f models.MovieFilter) (*models.Table, error) {
	where, args := filterClause(f)
	where += " AND genres IS NOT NULL"
	return q.run(ctx, "genre_breakdown",
		"SELECT genres, COUNT(*) AS movie_count FROM "+q.table+where+
			" GROUP BY genres ORDER BY movie_count DESC, genres LIMIT ?",
		append(args, GenreBreakdownLimit)...)
}

// filterClause builds the WHERE clause shared by the dashboard queries.
func filterClause(f models.MovieFilter) (string, []any) {
	conds := []string{"vote_average >= ?", "vote_count >= ?"}
	args := []any{f.MinRating, f.MinVotes}
	if f.HasGenre() {
		conds = append(conds, `genres LIKE ? ESCAPE '\'`)
		args = append(args, containsPattern(f.Genre))
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching genre anywhere in the value.
func containsPattern(genre string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(genre)) + "%"
}

func limitOr(n, fallback int) int {
	if n <= 0 {
		return fallback
	}
	return n
}
