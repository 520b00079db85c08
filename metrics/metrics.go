// Package metrics holds the Prometheus collectors for the ETL, the query
// layer and the dashboard.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ETLRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movies_etl_rows_total",
			Help: "Rows seen by the ETL, by stage (loaded, dropped, written)",
		},
		[]string{"stage"},
	)

	ETLRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movies_etl_runs_total",
			Help: "ETL runs by outcome",
		},
		[]string{"status"},
	)

	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movies_query_duration_seconds",
			Help:    "Duration of store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	QueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movies_query_errors_total",
			Help: "Store queries that returned an error",
		},
		[]string{"query"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movies_http_request_duration_seconds",
			Help:    "Dashboard request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)
)

// RecordQuery observes one query execution.
func RecordQuery(name string, start time.Time, err error) {
	QueryDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		QueryErrors.WithLabelValues(name).Inc()
	}
}

// RecordETLRun counts a finished run and its row totals.
func RecordETLRun(loaded, written int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ETLRuns.WithLabelValues(status).Inc()
	ETLRows.WithLabelValues("loaded").Add(float64(loaded))
	ETLRows.WithLabelValues("written").Add(float64(written))
	ETLRows.WithLabelValues("dropped").Add(float64(loaded - written))
}

// RecordHTTPRequest observes one dashboard request.
func RecordHTTPRequest(route string, status int, start time.Time) {
	HTTPRequestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
}
