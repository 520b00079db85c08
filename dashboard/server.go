// Package dashboard serves the movie dashboard: a filter form, the filtered
// listing, a rating trend line and a genre breakdown, plus JSON endpoints.
//
// Routes:
//
//	GET /               → HTML dashboard
//	GET /api/genres     → individual genre names for the selector
//	GET /api/movies     → filtered listing
//	GET /api/trend      → average rating per release year
//	GET /api/breakdown  → movie counts per genre combination
//	GET /api/summary    → dataset total and insights for the listing
//	GET /healthz        → liveness
//	GET /metrics        → Prometheus
//
// Every request builds its own MovieFilter from the query string.
package dashboard

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"movie-dashboard/models"
	"movie-dashboard/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

// MovieQuerier is the part of the query layer the dashboard reads.
type MovieQuerier interface {
	TotalMovies(ctx context.Context) (int64, error)
	GenreCombinations(ctx context.Context) (*models.Table, error)
	FilteredMovies(ctx context.Context, f models.MovieFilter) (*models.Table, error)
	RatingTrend(ctx context.Context, f models.MovieFilter) (*models.Table, error)
	GenreBreakdown(ctx context.Context, f models.MovieFilter) (*models.Table, error)
}

// Config controls server startup.
type Config struct {
	Addr string
}

// Server renders the dashboard from a MovieQuerier.
type Server struct {
	cfg     Config
	querier MovieQuerier
	logger  *utils.Logger
	tmpl    *template.Template
	router  chi.Router
}

// NewServer constructs a Server with routes and the embedded template.
func NewServer(cfg Config, q MovieQuerier, logger *utils.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		querier: q,
		logger:  logger,
		tmpl: template.Must(template.New("index.html").Funcs(template.FuncMap{
			"cell": models.FormatValue,
		}).ParseFS(templateFS, "templates/index.html")),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Route("/api", func(r chi.Router) {
		r.Get("/genres", s.handleGenres)
		r.Get("/movies", s.handleMovies)
		r.Get("/trend", s.handleTrend)
		r.Get("/breakdown", s.handleBreakdown)
		r.Get("/summary", s.handleSummary)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	s.router = r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on the configured address until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.logger.Info("[dashboard] Listening on http://%s", ln.Addr())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
