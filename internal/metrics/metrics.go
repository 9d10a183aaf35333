// Package metrics registers the connection's observability surface against a
// private Prometheus registry (not the global default, so multiple
// connections in one process don't collide).
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds every metric a connection reports through.
type Metrics struct {
	Registry *prometheus.Registry

	FramesReceivedTotal   *prometheus.CounterVec
	FramesSentTotal       *prometheus.CounterVec
	BytesReceivedTotal    prometheus.Counter
	BytesSentTotal        prometheus.Counter
	DispatchActionsTotal  *prometheus.CounterVec
	HandshakeDuration     prometheus.Histogram
	ConnectionState       prometheus.Gauge
}

// New builds and registers a fresh metric set.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		FramesReceivedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "peerd",
			Name:      "frames_received_total",
			Help:      "Frames received, by message id.",
		}, []string{"message_id"}),
		FramesSentTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "peerd",
			Name:      "frames_sent_total",
			Help:      "Frames sent, by message id.",
		}, []string{"message_id"}),
		BytesReceivedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "peerd",
			Name:      "bytes_received_total",
			Help:      "Payload bytes of received frames, header and padding excluded.",
		}),
		BytesSentTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "peerd",
			Name:      "bytes_sent_total",
			Help:      "Payload bytes of sent frames, header and padding excluded.",
		}),
		DispatchActionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "peerd",
			Name:      "dispatch_actions_total",
			Help:      "Dispatcher actions run, by message id and outcome.",
		}, []string{"message_id", "outcome"}),
		HandshakeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "peerd",
			Name:      "handshake_duration_seconds",
			Help:      "Time spent completing the ECDH handshake and Hello exchange.",
			Buckets:   prometheus.DefBuckets,
		}),
		ConnectionState: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "peerd",
			Name:      "connection_state",
			Help:      "Current connection state, 0 (Connecting) through 5 (Closed).",
		}),
	}

	reg.MustRegister(
		m.FramesReceivedTotal,
		m.FramesSentTotal,
		m.BytesReceivedTotal,
		m.BytesSentTotal,
		m.DispatchActionsTotal,
		m.HandshakeDuration,
		m.ConnectionState,
	)
	return m
}

// ObserveAction implements dispatch.Metrics.
func (m *Metrics) ObserveAction(messageID uint32, outcome string) {
	m.DispatchActionsTotal.WithLabelValues(strconv.FormatUint(uint64(messageID), 10), outcome).Inc()
}

// ObserveFrameReceived records one inbound frame of n plaintext bytes.
func (m *Metrics) ObserveFrameReceived(messageID uint32, n int) {
	m.FramesReceivedTotal.WithLabelValues(strconv.FormatUint(uint64(messageID), 10)).Inc()
	m.BytesReceivedTotal.Add(float64(n))
}

// ObserveFrameSent records one outbound frame of n plaintext bytes.
func (m *Metrics) ObserveFrameSent(messageID uint32, n int) {
	m.FramesSentTotal.WithLabelValues(strconv.FormatUint(uint64(messageID), 10)).Inc()
	m.BytesSentTotal.Add(float64(n))
}

// SetConnectionState records the current C5 state as a small ordinal.
func (m *Metrics) SetConnectionState(state int) {
	m.ConnectionState.Set(float64(state))
}
