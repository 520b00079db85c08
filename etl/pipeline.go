// Package etl wires loading, cleaning, storing and archiving into one run.
package etl

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"movie-dashboard/metrics"
	"movie-dashboard/services"
	"movie-dashboard/storage"
	"movie-dashboard/utils"
)

// Options configure one pipeline.
type Options struct {
	SourcePath string
	Table      string

	// ArchiveDir receives the source after a successful write. Empty disables archiving.
	ArchiveDir string
}

// Result summarises a run.
type Result struct {
	RunID      string
	Loaded     int
	Written    int
	Dropped    int
	ArchivedTo string
}

// Pipeline runs load → clean → write → archive.
type Pipeline struct {
	opts   Options
	loader storage.SourceLoader
	writer storage.MovieWriter
	logger *utils.Logger
}

// New creates a Pipeline.
func New(opts Options, loader storage.SourceLoader, writer storage.MovieWriter, logger *utils.Logger) *Pipeline {
	return &Pipeline{
		opts:   opts,
		loader: loader,
		writer: writer,
		logger: logger,
	}
}

// Run executes one ETL pass. A missing source or a store failure aborts the
// run. An archive failure is returned after the table has been written, with
// the Result still filled in.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	res := &Result{RunID: uuid.New().String()[:8]}
	log := p.logger.With("run_id", res.RunID)

	err := p.run(ctx, res, log)
	metrics.RecordETLRun(res.Loaded, res.Written, err)
	return res, err
}

func (p *Pipeline) run(ctx context.Context, res *Result, log *utils.Logger) error {
	log.Info("[etl] Loading %s", p.opts.SourcePath)
	raw, err := p.loader.Load(p.opts.SourcePath)
	if err != nil {
		return fmt.Errorf("etl: load: %w", err)
	}
	res.Loaded = len(raw.Rows)

	movies := services.NewCleaner(log).Clean(raw)
	res.Written = movies.Len()
	res.Dropped = res.Loaded - res.Written

	if err := p.writer.WriteMovies(ctx, p.opts.Table, movies); err != nil {
		res.Written = 0
		return fmt.Errorf("etl: write: %w", err)
	}
	log.Info("[etl] Wrote %d movies to table %q", res.Written, p.opts.Table)

	if p.opts.ArchiveDir == "" {
		return nil
	}
	dst, err := storage.Archive(p.opts.SourcePath, p.opts.ArchiveDir)
	if err != nil {
		return fmt.Errorf("etl: archive: %w", err)
	}
	res.ArchivedTo = dst
	log.Info("[etl] Archived source to %s", dst)
	return nil
}
