package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"movie-dashboard/models"
	"movie-dashboard/utils"
)

// ReportQuerier is the subset of the query layer the CLI report needs.
type ReportQuerier interface {
	TopMovies(ctx context.Context, n int) (*models.Table, error)
	HighRatedPopular(ctx context.Context, minRating float64, minVotes int64) (*models.Table, error)
	MoviesPerGenre(ctx context.Context, n int) (*models.Table, error)
	TopMoviesByGenre(ctx context.Context, genre string, n int) (*models.Table, error)
}

// ReportOptions are the CLI parameters of one report.
type ReportOptions struct {
	Limit      int
	Genre      string
	MinRating  float64
	MinVotes   int64
	GenreLimit int
}

// reportColumns are shown for movie listings when present.
var reportColumns = []string{
	models.ColTitle, models.ColReleaseYear, models.ColVoteAverage, models.ColVoteCount, models.ColGenres,
}

type ReportService struct {
	querier ReportQuerier
	logger  *utils.Logger
}

func NewReportService(q ReportQuerier, logger *utils.Logger) *ReportService {
	return &ReportService{querier: q, logger: logger}
}

// Generate runs the four report queries. The first failure aborts the report.
func (s *ReportService) Generate(ctx context.Context, opts ReportOptions) (*models.Report, error) {
	r := &models.Report{
		Limit:      opts.Limit,
		Genre:      opts.Genre,
		MinRating:  opts.MinRating,
		MinVotes:   opts.MinVotes,
		GenreLimit: opts.GenreLimit,
	}

	var err error
	if r.TopRated, err = s.querier.TopMovies(ctx, opts.Limit); err != nil {
		return nil, err
	}
	if r.HighRatedPopular, err = s.querier.HighRatedPopular(ctx, opts.MinRating, opts.MinVotes); err != nil {
		return nil, err
	}
	if r.PerGenre, err = s.querier.MoviesPerGenre(ctx, opts.GenreLimit); err != nil {
		return nil, err
	}
	if r.GenreTop, err = s.querier.TopMoviesByGenre(ctx, opts.Genre, opts.Limit); err != nil {
		return nil, err
	}

	s.logger.Debug("[report] generated: top=%d popular=%d genres=%d genre_top=%d",
		r.TopRated.Len(), r.HighRatedPopular.Len(), r.PerGenre.Len(), r.GenreTop.Len())
	return r, nil
}

// Print renders the report as text tables.
func (s *ReportService) Print(w io.Writer, r *models.Report) {
	sep := strings.Repeat("═", 72)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  🎬 MOVIE DATASET REPORT\033[0m\n")
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	printSection(w, fmt.Sprintf("Top %d Movies by Rating", displayLimit(r.Limit, 10)), r.TopRated, reportColumns)
	printSection(w, fmt.Sprintf("High Rated & Popular (rating ≥ %.1f, votes ≥ %d)", r.MinRating, r.MinVotes),
		r.HighRatedPopular, reportColumns)
	printSection(w, "Movies per Genre Combination", r.PerGenre, []string{models.ColGenres, "movie_count"})
	printSection(w, fmt.Sprintf("Top %s Movies", r.Genre), r.GenreTop, reportColumns)

	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)
}

func printSection(w io.Writer, title string, t *models.Table, preferred []string) {
	thin := strings.Repeat("─", 72)
	fmt.Fprintf(w, "\033[1;33m  %s\033[0m\n", title)
	fmt.Fprintf(w, "  %s\n", thin)

	if t == nil || t.Len() == 0 {
		fmt.Fprintf(w, "  No movies found\n\n")
		return
	}
	writeTable(w, t, presentColumns(t, preferred))
	fmt.Fprintln(w)
}

// writeTable prints the chosen columns aligned, with cell text truncated.
func writeTable(w io.Writer, t *models.Table, cols []string) {
	const maxWidth = 38

	widths := make([]int, len(cols))
	cells := make([][]string, t.Len())
	for j, col := range cols {
		widths[j] = utf8.RuneCountInString(col)
	}
	for i := range cells {
		cells[i] = make([]string, len(cols))
		for j, col := range cols {
			v := truncate(models.FormatValue(t.Value(i, col)), maxWidth)
			cells[i][j] = v
			if n := utf8.RuneCountInString(v); n > widths[j] {
				widths[j] = n
			}
		}
	}

	fmt.Fprint(w, "  ")
	for j, col := range cols {
		fmt.Fprintf(w, "\033[1m%s\033[0m  ", pad(col, widths[j]))
	}
	fmt.Fprintln(w)
	for _, row := range cells {
		fmt.Fprint(w, "  ")
		for j, v := range row {
			fmt.Fprintf(w, "%s  ", pad(v, widths[j]))
		}
		fmt.Fprintln(w)
	}
}

// presentColumns keeps the preferred columns that t has, or all of t's
// columns when none match.
func presentColumns(t *models.Table, preferred []string) []string {
	var cols []string
	for _, c := range preferred {
		if t.ColumnIndex(c) >= 0 {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 {
		return t.Columns
	}
	return cols
}

func displayLimit(n, fallback int) int {
	if n <= 0 {
		return fallback
	}
	return n
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-3]) + "..."
}
