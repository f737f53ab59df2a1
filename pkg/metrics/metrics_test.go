package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNilMetricsRecordNothing(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordAppend("message.created")
		m.RecordIntake("accepted")
		m.RecordRateLimitDenial("messages")
		m.RecordLeaseConflict()
		m.RecordProjectorFailure("rooms")
		m.SetDeadLettersUnresolved(3)
		m.RecordAuditVerifyFailure()
		m.RecordHTTPRequest("POST", "/v1/messages", "201", time.Millisecond)
		m.RegisterStreamSubscribers(func() int { return 0 }, func() int { return 0 })
		m.RegisterProbeState(func() string { return "closed" })
	})
}

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordAppend("message.created")
	m.RecordAppend("message.created")
	m.RecordAppend("run.created")
	assert.Equal(t, float64(2), testutil.ToFloat64(m.EventsAppended.WithLabelValues("message.created")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.EventsAppended.WithLabelValues("run.created")))

	m.RecordIntake("rate_limited")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.IntakeRequests.WithLabelValues("rate_limited")))

	m.RecordLeaseConflict()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.LeaseConflicts))

	m.SetDeadLettersUnresolved(7)
	assert.Equal(t, float64(7), testutil.ToFloat64(m.DeadLettersUnresolved))
}

func TestStreamSubscriberGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	ws, sse := 3, 1
	m.RegisterStreamSubscribers(func() int { return ws }, func() int { return sse })

	families, err := reg.Gather()
	assert.NoError(t, err)

	values := map[string]float64{}
	for _, fam := range families {
		if fam.GetName() != "stream_subscribers" {
			continue
		}
		for _, metric := range fam.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "transport" {
					values[label.GetValue()] = metric.GetGauge().GetValue()
				}
			}
		}
	}
	assert.Equal(t, float64(3), values["websocket"])
	assert.Equal(t, float64(1), values["sse"])
}

func TestProbeStateOneHot(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	state := "open"
	m.RegisterProbeState(func() string { return state })

	families, err := reg.Gather()
	assert.NoError(t, err)

	values := map[string]float64{}
	for _, fam := range families {
		if fam.GetName() != "artifact_probe_state" {
			continue
		}
		for _, metric := range fam.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "state" {
					values[label.GetValue()] = metric.GetGauge().GetValue()
				}
			}
		}
	}
	assert.Equal(t, float64(1), values["open"])
	assert.Equal(t, float64(0), values["closed"])
	assert.Equal(t, float64(0), values["half-open"])
}
