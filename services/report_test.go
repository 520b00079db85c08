package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"movie-dashboard/models"
)

type fakeQuerier struct {
	gotGenre string
	gotLimit int
	failOn   string
}

func movieTable(titles ...string) *models.Table {
	t := &models.Table{Columns: []string{"title", "release_year", "vote_average", "vote_count", "genres", "budget"}}
	for i, title := range titles {
		t.Rows = append(t.Rows, []any{title, int64(2000 + i), 9.0 - float64(i), int64(1000), "Action|Drama", 1e6})
	}
	return t
}

func (f *fakeQuerier) TopMovies(_ context.Context, n int) (*models.Table, error) {
	f.gotLimit = n
	if f.failOn == "top" {
		return nil, errors.New("store unreachable")
	}
	return movieTable("Alpha", "Beta"), nil
}

func (f *fakeQuerier) HighRatedPopular(context.Context, float64, int64) (*models.Table, error) {
	return movieTable("Alpha"), nil
}

func (f *fakeQuerier) MoviesPerGenre(context.Context, int) (*models.Table, error) {
	return &models.Table{
		Columns: []string{"genres", "movie_count"},
		Rows:    [][]any{{"Action|Drama", int64(2)}},
	}, nil
}

func (f *fakeQuerier) TopMoviesByGenre(_ context.Context, genre string, _ int) (*models.Table, error) {
	f.gotGenre = genre
	return &models.Table{Columns: []string{"title"}}, nil
}

func TestReportGenerate(t *testing.T) {
	fq := &fakeQuerier{}
	svc := NewReportService(fq, newTestLogger())

	r, err := svc.Generate(context.Background(), ReportOptions{Limit: 5, Genre: "Action", MinRating: 8, MinVotes: 1000})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if fq.gotLimit != 5 || fq.gotGenre != "Action" {
		t.Errorf("parameters not forwarded: limit=%d genre=%q", fq.gotLimit, fq.gotGenre)
	}
	if r.TopRated.Len() != 2 || r.PerGenre.Len() != 1 {
		t.Errorf("unexpected tables: top=%d perGenre=%d", r.TopRated.Len(), r.PerGenre.Len())
	}
}

func TestReportGeneratePropagatesError(t *testing.T) {
	svc := NewReportService(&fakeQuerier{failOn: "top"}, newTestLogger())
	if _, err := svc.Generate(context.Background(), ReportOptions{}); err == nil {
		t.Fatal("expected error from failing query")
	}
}

func TestReportPrint(t *testing.T) {
	svc := NewReportService(&fakeQuerier{}, newTestLogger())
	r, err := svc.Generate(context.Background(), ReportOptions{Limit: 10, Genre: "Western", MinRating: 8, MinVotes: 1000})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var buf bytes.Buffer
	svc.Print(&buf, r)
	out := buf.String()

	for _, want := range []string{"Top 10 Movies by Rating", "Alpha", "Action|Drama", "movie_count", "Top Western Movies", "No movies found"} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q", want)
		}
	}
	if strings.Contains(out, "budget") {
		t.Error("budget column should not be printed in listings")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Amélie Poulain", 8); got != "Améli..." {
		t.Errorf("truncate: got %q", got)
	}
	if got := truncate("short", 8); got != "short" {
		t.Errorf("truncate: got %q", got)
	}
}
