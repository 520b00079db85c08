package services

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"movie-dashboard/models"
	"movie-dashboard/utils"
)

// Cleaner transforms a RawTable into the persisted MovieTable.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// draft carries one source row through the cleaning steps.
type draft struct {
	row    []string
	date   *time.Time
	year   *int
	genres *string
}

// Clean runs every cleaning step in order. No single bad row aborts the
// batch: unparseable dates and genres become null, and rows left without a
// title or release year are dropped at the end.
func (c *Cleaner) Clean(raw *models.RawTable) *models.MovieTable {
	drafts := dropMissingTitles(raw)
	noTitle := len(raw.Rows) - len(drafts)

	parseDates(raw, drafts)
	deriveYears(drafts)
	badGenres := flattenGenres(raw, drafts)
	columns := projectColumns(raw)
	movies := buildMovies(raw, drafts)
	trimText(movies)

	c.logger.Debug("[cleaner] dropped %d rows without title, %d without release year; %d genre values unparseable",
		noTitle, len(drafts)-len(movies), badGenres)
	c.logger.Info("[cleaner] Cleaned %d → %d movies (dropped %d)",
		len(raw.Rows), len(movies), len(raw.Rows)-len(movies))

	return &models.MovieTable{Columns: columns, Movies: movies}
}

// dropMissingTitles keeps rows whose title is present and not blank.
func dropMissingTitles(raw *models.RawTable) []draft {
	out := make([]draft, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		title, ok := raw.Get(row, models.ColTitle)
		if !ok || strings.TrimSpace(title) == "" {
			continue
		}
		out = append(out, draft{row: row})
	}
	return out
}

func parseDates(raw *models.RawTable, drafts []draft) {
	for i := range drafts {
		s, ok := raw.Get(drafts[i].row, models.ColReleaseDate)
		if !ok {
			continue
		}
		if t, ok := parseReleaseDate(s); ok {
			drafts[i].date = &t
		}
	}
}

func deriveYears(drafts []draft) {
	for i := range drafts {
		if drafts[i].date == nil {
			continue
		}
		y := drafts[i].date.Year()
		drafts[i].year = &y
	}
}

// flattenGenres sets the pipe-joined genres of each draft and returns how
// many present values failed to parse.
func flattenGenres(raw *models.RawTable, drafts []draft) int {
	failed := 0
	for i := range drafts {
		s, ok := raw.Get(drafts[i].row, models.ColGenres)
		if !ok {
			continue
		}
		if g, ok := FlattenGenres(s); ok {
			drafts[i].genres = &g
		} else {
			failed++
		}
	}
	return failed
}

// projectColumns returns the canonical columns available from raw.
// release_year is available whenever release_date is.
func projectColumns(raw *models.RawTable) []string {
	cols := make([]string, 0, len(models.MovieColumns))
	for _, col := range models.MovieColumns {
		src := col
		if col == models.ColReleaseYear {
			src = models.ColReleaseDate
		}
		if raw.HasColumn(src) {
			cols = append(cols, col)
		}
	}
	return cols
}

// buildMovies converts drafts that have both title and year into movies.
func buildMovies(raw *models.RawTable, drafts []draft) []models.Movie {
	out := make([]models.Movie, 0, len(drafts))
	for _, d := range drafts {
		if d.year == nil {
			continue
		}
		title, _ := raw.Get(d.row, models.ColTitle)

		m := models.Movie{
			Title:       title,
			ReleaseYear: *d.year,
			VoteAverage: parseFloat(raw, d.row, models.ColVoteAverage),
			VoteCount:   parseCount(raw, d.row, models.ColVoteCount),
			Popularity:  parseFloat(raw, d.row, models.ColPopularity),
			Budget:      parseFloat(raw, d.row, models.ColBudget),
			Revenue:     parseFloat(raw, d.row, models.ColRevenue),
			Genres:      d.genres,
		}
		if id, ok := raw.Get(d.row, models.ColID); ok {
			m.ID = &id
		}
		out = append(out, m)
	}
	return out
}

// trimText normalizes and trims every text column.
func trimText(movies []models.Movie) {
	for i := range movies {
		m := &movies[i]
		m.Title = normaliseText(m.Title)
		if m.ID != nil {
			id := normaliseText(*m.ID)
			m.ID = &id
		}
		if m.Genres != nil {
			g := normaliseText(*m.Genres)
			m.Genres = &g
		}
	}
}

func parseFloat(raw *models.RawTable, row []string, col string) *float64 {
	s, ok := raw.Get(row, col)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// parseCount accepts integers and integral floats such as "500.0".
// Negative counts are treated as missing.
func parseCount(raw *models.RawTable, row []string, col string) *int64 {
	s, ok := raw.Get(row, col)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || math.IsNaN(f) || f != math.Trunc(f) {
			return nil
		}
		n = int64(f)
	}
	if n < 0 {
		return nil
	}
	return &n
}

// normaliseText applies NFC normalization and strips leading/trailing whitespace.
func normaliseText(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}
