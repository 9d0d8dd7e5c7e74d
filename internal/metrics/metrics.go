// Package metrics provides Prometheus metrics for swmterm.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"swmterm/internal/content"
	"swmterm/internal/terminal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// otherCommand labels input that is not a known command name, so arbitrary
// visitor text never becomes a label value.
const otherCommand = "other"

var (
	// Command metrics
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swmterm_commands_total",
			Help: "Total number of executed terminal commands",
		},
		[]string{"command", "kind"},
	)

	questionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swmterm_questions_total",
			Help: "Total questions answered, by matcher rule",
		},
		[]string{"rule"},
	)

	// Content index metrics
	indexLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swmterm_index_loads_total",
			Help: "Total content index loads",
		},
		[]string{"status"},
	)

	indexLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "swmterm_index_load_duration_seconds",
			Help:    "Time to fetch and parse the content index",
			Buckets: prometheus.DefBuckets,
		},
	)

	indexFiles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "swmterm_index_files",
			Help: "Number of files in the loaded virtual file system",
		},
	)

	indexEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "swmterm_index_search_entries",
			Help: "Number of entries in the loaded search index",
		},
	)

	// Session metrics
	sessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "swmterm_sessions_active",
			Help: "Number of live terminal sessions",
		},
	)

	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "swmterm_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "swmterm_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordCommand records an executed command. Names outside known are
// counted as "other".
func RecordCommand(name string, known []string, res terminal.Result) {
	label := otherCommand
	for _, k := range known {
		if k == name {
			label = name
			break
		}
	}
	commandsTotal.WithLabelValues(label, res.Kind.String()).Inc()
	if res.Rule != "" {
		questionsTotal.WithLabelValues(res.Rule).Inc()
	}
}

// CommandObserver returns a terminal observer that feeds RecordCommand.
func CommandObserver(known []string) terminal.Observer {
	return func(name string, res terminal.Result) {
		RecordCommand(name, known, res)
	}
}

// RecordIndexLoad records a content index load attempt.
func RecordIndexLoad(stats content.Stats, elapsed time.Duration, err error) {
	indexLoadDuration.Observe(elapsed.Seconds())
	if err != nil {
		indexLoadsTotal.WithLabelValues("error").Inc()
		return
	}
	indexLoadsTotal.WithLabelValues("success").Inc()
	indexFiles.Set(float64(stats.Files))
	indexEntries.Set(float64(stats.Entries))
}

// SetSessionsActive sets the number of live sessions.
func SetSessionsActive(count int) {
	sessionsActive.Set(float64(count))
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
