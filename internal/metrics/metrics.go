package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It includes counters for login attempts, store failures and added employees,
// a gauge for open sessions, and histograms for session actions and database queries.
type Metrics struct {
	LoginAttempts   *prometheus.CounterVec
	StoreFailures   *prometheus.CounterVec
	EmployeesAdded  prometheus.Counter
	ActiveSessions  prometheus.Gauge
	ActionDuration  *prometheus.HistogramVec
	DBQueryDuration *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		LoginAttempts: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "focuslearn_login_attempts_total",
			Help: "Total login attempts by outcome.",
		}, []string{"result"}), // result: 'success', 'empty', 'not_found', 'invalid'
		StoreFailures: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "focuslearn_store_failures_total",
			Help: "Backend failures swallowed at the data access boundary.",
		}, []string{"operation"}),
		EmployeesAdded: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "focuslearn_employees_added_total",
			Help: "Total number of training employees successfully added.",
		}),
		ActiveSessions: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "focuslearn_active_sessions",
			Help: "Number of currently open user sessions.",
		}),
		ActionDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "focuslearn_session_action_duration_seconds",
			Help:    "Measures how long asynchronous session actions take to complete.",
			Buckets: prometheus.DefBuckets,
		}, []string{"action"}), // action: 'refresh', 'add'
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "focuslearn_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}),
	}

	for _, result := range []string{"success", "empty", "not_found", "invalid"} {
		metrics.LoginAttempts.WithLabelValues(result)
	}

	return metrics
}
