// Package metrics holds the Prometheus instruments for the control plane.
// A nil *Metrics is valid and records nothing, so packages take it as an
// optional dependency without guarding every call site.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every registered instrument.
type Metrics struct {
	EventsAppended        *prometheus.CounterVec
	IntakeRequests        *prometheus.CounterVec
	RateLimitDenials      *prometheus.CounterVec
	LeaseConflicts        prometheus.Counter
	ProjectorFailures     *prometheus.CounterVec
	DeadLettersUnresolved prometheus.Gauge
	AuditVerifyFailures   prometheus.Counter
	HTTPRequests          *prometheus.CounterVec
	HTTPDuration          *prometheus.HistogramVec

	registerer prometheus.Registerer
}

// New creates and registers all instruments against reg. Pass
// prometheus.DefaultRegisterer in main; tests use a fresh
// prometheus.NewRegistry so parallel packages never collide.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		registerer: reg,

		EventsAppended: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "events_appended_total",
				Help: "Events appended to the log, by event type",
			},
			[]string{"event_type"},
		),
		IntakeRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intake_requests_total",
				Help: "Message intake requests, by outcome reason code",
			},
			[]string{"outcome"},
		),
		RateLimitDenials: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_limit_denials_total",
				Help: "Requests denied by the rate limiter, by scope",
			},
			[]string{"scope"},
		),
		LeaseConflicts: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "lease_conflicts_total",
				Help: "Writes refused because the work-item lease was held elsewhere",
			},
		),
		ProjectorFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "projector_failures_total",
				Help: "Reducer applications that dead-lettered, by projector",
			},
			[]string{"projector"},
		),
		DeadLettersUnresolved: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dead_letters_unresolved",
				Help: "Dead letters awaiting retry, sampled by the maintenance sweep",
			},
		),
		AuditVerifyFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "audit_verify_failures_total",
				Help: "Audit verifications that found a broken hash chain",
			},
		),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP requests served, by route and status",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency, by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// RecordAppend counts one committed append.
func (m *Metrics) RecordAppend(eventType string) {
	if m == nil {
		return
	}
	m.EventsAppended.WithLabelValues(eventType).Inc()
}

// RecordIntake counts one intake request by its outcome reason code
// ("accepted", "duplicate_idempotent_replay", "rate_limited", ...).
func (m *Metrics) RecordIntake(outcome string) {
	if m == nil {
		return
	}
	m.IntakeRequests.WithLabelValues(outcome).Inc()
}

// RecordRateLimitDenial counts one limiter denial for a scope
// ("messages", "heartbeats").
func (m *Metrics) RecordRateLimitDenial(scope string) {
	if m == nil {
		return
	}
	m.RateLimitDenials.WithLabelValues(scope).Inc()
}

// RecordLeaseConflict counts one write refused under a contested lease.
func (m *Metrics) RecordLeaseConflict() {
	if m == nil {
		return
	}
	m.LeaseConflicts.Inc()
}

// RecordProjectorFailure counts one dead-lettered reducer application.
func (m *Metrics) RecordProjectorFailure(projector string) {
	if m == nil {
		return
	}
	m.ProjectorFailures.WithLabelValues(projector).Inc()
}

// SetDeadLettersUnresolved samples the unresolved dead-letter backlog.
func (m *Metrics) SetDeadLettersUnresolved(n int) {
	if m == nil {
		return
	}
	m.DeadLettersUnresolved.Set(float64(n))
}

// RecordAuditVerifyFailure counts one failed chain verification.
func (m *Metrics) RecordAuditVerifyFailure() {
	if m == nil {
		return
	}
	m.AuditVerifyFailures.Inc()
}

// RecordHTTPRequest counts one served request and observes its latency.
// path is the route template, not the raw URL, to bound cardinality.
func (m *Metrics) RecordHTTPRequest(method, path, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, path, status).Inc()
	m.HTTPDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// RegisterStreamSubscribers exposes stream_subscribers{transport} as live
// gauges read from the delivery layer at scrape time.
func (m *Metrics) RegisterStreamSubscribers(websocket, sse func() int) {
	if m == nil {
		return
	}
	for transport, count := range map[string]func() int{
		"websocket": websocket,
		"sse":       sse,
	} {
		count := count
		m.registerer.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name:        "stream_subscribers",
				Help:        "Live stream subscribers, by transport",
				ConstLabels: prometheus.Labels{"transport": transport},
			},
			func() float64 { return float64(count()) },
		))
	}
}

// RegisterProbeState exposes artifact_probe_state{state} as a one-hot set
// over the breaker states reported by the artifact prober.
func (m *Metrics) RegisterProbeState(state func() string) {
	if m == nil {
		return
	}
	for _, s := range []string{"closed", "half-open", "open"} {
		s := s
		m.registerer.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name:        "artifact_probe_state",
				Help:        "Artifact HEAD probe breaker state (1 for the current state)",
				ConstLabels: prometheus.Labels{"state": s},
			},
			func() float64 {
				if state() == s {
					return 1
				}
				return 0
			},
		))
	}
}
