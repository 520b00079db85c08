package services

import (
	"testing"

	"movie-dashboard/models"
	"movie-dashboard/utils"
)

func newTestLogger() *utils.Logger { return utils.NewNopLogger() }

var fullHeader = []string{
	"id", "title", "release_date", "genres", "vote_average", "vote_count",
	"popularity", "budget", "revenue", "overview",
}

func TestCleanerEndToEndScenario(t *testing.T) {
	raw := models.NewRawTable(
		[]string{"title", "release_date", "genres", "vote_average", "vote_count"},
		[][]string{
			{"A", "2020-01-01", `[{"name":"Action"}]`, "9.0", "500"},
			{"", "2021-05-05", `[{"name":"Drama"}]`, "7.0", "20"},
		},
	)

	out := NewCleaner(newTestLogger()).Clean(raw)
	if out.Len() != 1 {
		t.Fatalf("expected 1 movie, got %d", out.Len())
	}
	m := out.Movies[0]
	if m.Title != "A" || m.ReleaseYear != 2020 {
		t.Errorf("got title %q year %d", m.Title, m.ReleaseYear)
	}
	if m.Genres == nil || *m.Genres != "Action" {
		t.Errorf("genres: got %v, want Action", m.Genres)
	}
	if m.VoteAverage == nil || *m.VoteAverage != 9.0 {
		t.Errorf("vote_average: got %v", m.VoteAverage)
	}
	if m.VoteCount == nil || *m.VoteCount != 500 {
		t.Errorf("vote_count: got %v", m.VoteCount)
	}
}

func TestCleanerDropsMissingTitle(t *testing.T) {
	raw := models.NewRawTable(fullHeader, [][]string{
		{"1", "", "2020-01-01"},
		{"2", "   ", "2020-01-01"},
		{"3", "Kept", "2020-01-01"},
	})

	out := NewCleaner(newTestLogger()).Clean(raw)
	if out.Len() != 1 || out.Movies[0].Title != "Kept" {
		t.Errorf("expected only the titled row, got %+v", out.Movies)
	}
}

func TestCleanerDropsUnparseableReleaseDate(t *testing.T) {
	raw := models.NewRawTable(fullHeader, [][]string{
		{"1", "Bad date", "not-a-date"},
		{"2", "No date", ""},
		{"3", "Good", "1999-12-31"},
	})

	out := NewCleaner(newTestLogger()).Clean(raw)
	if out.Len() != 1 || out.Movies[0].ReleaseYear != 1999 {
		t.Errorf("expected only the dated row, got %+v", out.Movies)
	}
}

func TestCleanerBadGenresBecomeNull(t *testing.T) {
	raw := models.NewRawTable(fullHeader, [][]string{
		{"1", "A", "2001-01-01", "[{'id': 28, 'name': 'Action'"},
		{"2", "B", "2002-01-01", `[{"id": 18}]`},
		{"3", "C", "2003-01-01", "[{'id': 18, 'name': 'Drama'}, {'id': 53, 'name': 'Thriller'}]"},
	})

	out := NewCleaner(newTestLogger()).Clean(raw)
	if out.Len() != 3 {
		t.Fatalf("genre failures must not drop rows, got %d", out.Len())
	}
	if out.Movies[0].Genres != nil || out.Movies[1].Genres != nil {
		t.Error("malformed genres should be null")
	}
	if g := out.Movies[2].Genres; g == nil || *g != "Drama|Thriller" {
		t.Errorf("genres: got %v, want Drama|Thriller", g)
	}
}

func TestCleanerProjectsPresentColumns(t *testing.T) {
	raw := models.NewRawTable(
		[]string{"title", "overview", "release_date", "vote_average"},
		[][]string{{"A", "long text", "2020-01-01", "8"}},
	)

	out := NewCleaner(newTestLogger()).Clean(raw)
	want := []string{"title", "release_year", "vote_average"}
	if len(out.Columns) != len(want) {
		t.Fatalf("columns: got %v, want %v", out.Columns, want)
	}
	for i := range want {
		if out.Columns[i] != want[i] {
			t.Errorf("columns[%d]: got %q, want %q", i, out.Columns[i], want[i])
		}
	}
}

func TestCleanerTrimsTextColumns(t *testing.T) {
	raw := models.NewRawTable(fullHeader, [][]string{
		{" 42 ", "  Padded Title\t", "2010-07-16", `[{"name": " Sci-Fi "}]`},
	})

	out := NewCleaner(newTestLogger()).Clean(raw)
	m := out.Movies[0]
	if m.Title != "Padded Title" {
		t.Errorf("title: got %q", m.Title)
	}
	if m.ID == nil || *m.ID != "42" {
		t.Errorf("id: got %v", m.ID)
	}
	if m.Genres == nil || *m.Genres != "Sci-Fi" {
		t.Errorf("genres: got %v", m.Genres)
	}
}

func TestCleanerNumericCoercion(t *testing.T) {
	raw := models.NewRawTable(fullHeader, [][]string{
		{"1", "A", "2020-01-01", "", "abc", "500.0", "12.5", "1000000", "x"},
		{"2", "B", "2020-01-01", "", "7.1", "-3"},
		{"3", "C", "2020-01-01", "", "NaN", "1e400"},
	})

	out := NewCleaner(newTestLogger()).Clean(raw)
	a, b := out.Movies[0], out.Movies[1]

	if a.VoteAverage != nil {
		t.Errorf("unparseable vote_average should be null, got %v", *a.VoteAverage)
	}
	if a.VoteCount == nil || *a.VoteCount != 500 {
		t.Errorf("integral float vote_count: got %v", a.VoteCount)
	}
	if a.Popularity == nil || *a.Popularity != 12.5 {
		t.Errorf("popularity: got %v", a.Popularity)
	}
	if a.Budget == nil || *a.Budget != 1000000 {
		t.Errorf("budget: got %v", a.Budget)
	}
	if a.Revenue != nil {
		t.Errorf("revenue should be null")
	}
	if b.VoteCount != nil {
		t.Errorf("negative vote_count should be null, got %d", *b.VoteCount)
	}
	if c := out.Movies[2]; c.VoteAverage != nil || c.VoteCount != nil {
		t.Errorf("NaN and out-of-range numbers should be null")
	}
}

func TestCleanerEveryRowSatisfiesInvariant(t *testing.T) {
	raw := models.NewRawTable(fullHeader, [][]string{
		{"1", "A", "2020-01-01"},
		{"2", "", ""},
		{"3", "C", "garbage"},
		{"4"},
		{"5", "E", "1985"},
	})

	out := NewCleaner(newTestLogger()).Clean(raw)
	for _, m := range out.Movies {
		if m.Title == "" || m.ReleaseYear == 0 {
			t.Errorf("invariant violated: %+v", m)
		}
	}
	if out.Len() != 2 {
		t.Errorf("expected 2 movies, got %d", out.Len())
	}
}

func TestParseReleaseDate(t *testing.T) {
	tests := []struct {
		raw    string
		year   int
		wantOK bool
	}{
		{"2020-01-01", 2020, true},
		{"1995/10/30", 1995, true},
		{"2011-03-04 10:00:00", 2011, true},
		{"2015-06-01T00:00:00Z", 2015, true},
		{"2020-01-01T00:00:00", 2020, true},
		{"12/25/1977", 1977, true},
		{"1968", 1968, true},
		{"", 0, false},
		{"yesterday", 0, false},
		{"2020-13-45", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseReleaseDate(tt.raw)
		if ok != tt.wantOK {
			t.Errorf("parseReleaseDate(%q) ok = %v; want %v", tt.raw, ok, tt.wantOK)
			continue
		}
		if ok && got.Year() != tt.year {
			t.Errorf("parseReleaseDate(%q) year = %d; want %d", tt.raw, got.Year(), tt.year)
		}
	}
}
