package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"movie-dashboard/models"
)

const utf8BOM = "\uFEFF"

// ErrSourceNotFound is returned when the ingestion path does not name an
// existing file.
var ErrSourceNotFound = errors.New("source file not found")

// LoadCSV reads a comma-separated file with a header row into a RawTable.
// Rows keep file order; no validation happens here beyond CSV syntax.
func LoadCSV(path string) (*models.RawTable, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("csv: %q: %w", path, ErrSourceNotFound)
		}
		return nil, fmt.Errorf("csv: stat %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("csv: %q is a directory: %w", path, ErrSourceNotFound)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses CSV content from r. Quotes are handled leniently and rows
// may have a different field count than the header.
func ReadCSV(r io.Reader) (*models.RawTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return models.NewRawTable(nil, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, rec)
	}

	return models.NewRawTable(header, rows), nil
}
