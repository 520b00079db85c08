package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"movie-dashboard/models"
	"movie-dashboard/services"
)

// listingColumns are shown in the HTML table when present.
var listingColumns = []string{
	models.ColTitle, models.ColReleaseYear, models.ColVoteAverage,
	models.ColVoteCount, models.ColPopularity, models.ColGenres,
}

// Filter values applied when the query string leaves them out.
const (
	DefaultMinRating = 7.0
	DefaultMinVotes  = 500
)

type indexPage struct {
	Filter    models.MovieFilter
	Total     int64
	Insights  Insights
	Genres    []string
	Columns   []string
	Movies    *models.Table
	Trend     LineChart
	Breakdown PieChart
}

// parseFilter reads genre, min_rating and min_votes from the query string.
func parseFilter(r *http.Request) (models.MovieFilter, error) {
	q := r.URL.Query()
	f := models.MovieFilter{Genre: models.AllGenres, MinRating: DefaultMinRating, MinVotes: DefaultMinVotes}

	if g := strings.TrimSpace(q.Get("genre")); g != "" {
		f.Genre = g
	}
	if v := strings.TrimSpace(q.Get("min_rating")); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, fmt.Errorf("min_rating: %q is not a number", v)
		}
		f.MinRating = rating
	}
	if v := strings.TrimSpace(q.Get("min_votes")); v != "" {
		votes, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, fmt.Errorf("min_votes: %q is not an integer", v)
		}
		f.MinVotes = votes
	}
	return f, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ctx := r.Context()

	total, err := s.querier.TotalMovies(ctx)
	if err != nil {
		s.fail(w, "total movies", err)
		return
	}
	combos, err := s.querier.GenreCombinations(ctx)
	if err != nil {
		s.fail(w, "genre combinations", err)
		return
	}
	movies, err := s.querier.FilteredMovies(ctx, f)
	if err != nil {
		s.fail(w, "filtered movies", err)
		return
	}
	trend, err := s.querier.RatingTrend(ctx, f)
	if err != nil {
		s.fail(w, "rating trend", err)
		return
	}
	breakdown, err := s.querier.GenreBreakdown(ctx, f)
	if err != nil {
		s.fail(w, "genre breakdown", err)
		return
	}

	page := indexPage{
		Filter:    f,
		Total:     total,
		Insights:  NewInsights(movies),
		Genres:    append([]string{models.AllGenres}, services.SplitGenres(combos.Strings(models.ColGenres))...),
		Columns:   visibleColumns(movies),
		Movies:    movies,
		Trend:     NewLineChart(trend, models.ColReleaseYear, "avg_rating"),
		Breakdown: NewPieChart(breakdown, models.ColGenres, "movie_count"),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, page); err != nil {
		s.logger.Error("[dashboard] render: %v", err)
	}
}

func (s *Server) handleGenres(w http.ResponseWriter, r *http.Request) {
	combos, err := s.querier.GenreCombinations(r.Context())
	if err != nil {
		s.fail(w, "genre combinations", err)
		return
	}
	s.writeJSON(w, map[string]any{
		"genres": services.SplitGenres(combos.Strings(models.ColGenres)),
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	f, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	total, err := s.querier.TotalMovies(r.Context())
	if err != nil {
		s.fail(w, "total movies", err)
		return
	}
	movies, err := s.querier.FilteredMovies(r.Context(), f)
	if err != nil {
		s.fail(w, "filtered movies", err)
		return
	}
	s.writeJSON(w, map[string]any{
		"filter":   filterJSON(f),
		"total":    total,
		"insights": NewInsights(movies),
	})
}

func (s *Server) handleMovies(w http.ResponseWriter, r *http.Request) {
	s.serveFiltered(w, r, "filtered movies", s.querier.FilteredMovies)
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	s.serveFiltered(w, r, "rating trend", s.querier.RatingTrend)
}

func (s *Server) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	s.serveFiltered(w, r, "genre breakdown", s.querier.GenreBreakdown)
}

func (s *Server) serveFiltered(w http.ResponseWriter, r *http.Request, name string,
	run func(ctx context.Context, f models.MovieFilter) (*models.Table, error)) {
	f, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	tbl, err := run(r.Context(), f)
	if err != nil {
		s.fail(w, name, err)
		return
	}
	s.writeJSON(w, map[string]any{
		"filter": filterJSON(f),
		"count":  tbl.Len(),
		"rows":   tbl.Records(),
	})
}

func filterJSON(f models.MovieFilter) map[string]any {
	return map[string]any{
		"genre":      f.Genre,
		"min_rating": f.MinRating,
		"min_votes":  f.MinVotes,
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("[dashboard] encode response: %v", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, what string, err error) {
	s.logger.Error("[dashboard] %s: %v", what, err)
	http.Error(w, "query failed: "+what, http.StatusInternalServerError)
}

func visibleColumns(t *models.Table) []string {
	var cols []string
	for _, c := range listingColumns {
		if t.ColumnIndex(c) >= 0 {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 {
		return t.Columns
	}
	return cols
}
