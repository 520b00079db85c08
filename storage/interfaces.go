package storage

import (
	"context"

	"movie-dashboard/models"
)

// MovieWriter is the interface any store backend must satisfy for the ETL.
type MovieWriter interface {
	WriteMovies(ctx context.Context, table string, movies *models.MovieTable) error
}

// SourceLoader reads the raw source for one ETL run.
type SourceLoader interface {
	Load(path string) (*models.RawTable, error)
}

// CSVLoader is the SourceLoader for comma-separated files.
type CSVLoader struct{}

// Load implements SourceLoader.
func (CSVLoader) Load(path string) (*models.RawTable, error) {
	return LoadCSV(path)
}
