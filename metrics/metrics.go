// Package metrics wires the transport and uds session layers into
// Prometheus collectors. The vecs are registered once at construction and
// labelled per call, the same shape as the per-connection descriptors in
// the exporter package this is grounded on, simplified down from one
// constant Desc per field to a handful of label-keyed vecs since the
// diagnostic stack has far fewer observable dimensions than raw tcpinfo.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Sink is a Prometheus-backed implementation of transport.MetricsSink and
// the session-level counters used by the uds package. It is safe for
// concurrent use; the underlying vecs handle their own locking.
type Sink struct {
	framesSent     *prometheus.CounterVec
	framesReceived *prometheus.CounterVec
	timeouts       *prometheus.CounterVec
	stateChanges   *prometheus.CounterVec
	statesCurrent  *prometheus.GaugeVec

	requestsSent  *prometheus.CounterVec
	responsesRecv *prometheus.CounterVec
	negativeRecv  *prometheus.CounterVec
}

// NewSink builds a Sink and registers its collectors against reg. Passing
// prometheus.NewRegistry() keeps it isolated from the global default
// registry, matching how the exporter package lets callers own their own
// registry rather than reaching for prometheus.MustRegister globally.
func NewSink(reg prometheus.Registerer, constLabels prometheus.Labels) *Sink {
	s := &Sink{
		framesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "isotp_frames_sent_total",
			Help:        "ISO-TP frames transmitted, labelled by frame type.",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		framesReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "isotp_frames_received_total",
			Help:        "ISO-TP frames received, labelled by frame type.",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		timeouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "isotp_timeouts_total",
			Help:        "ISO-TP timing-parameter timeouts, labelled by which one fired (N_As, N_Bs, P2*, write).",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		stateChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "isotp_state_changes_total",
			Help:        "ISO-TP session state transitions, labelled by the new state string.",
			ConstLabels: constLabels,
		}, []string{"state"}),
		statesCurrent: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "isotp_state_current",
			Help:        "1 for the session's current state label, 0 otherwise.",
			ConstLabels: constLabels,
		}, []string{"state"}),
		requestsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "uds_requests_sent_total",
			Help:        "UDS requests sent, labelled by service name.",
			ConstLabels: constLabels,
		}, []string{"service"}),
		responsesRecv: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "uds_responses_received_total",
			Help:        "UDS positive responses received, labelled by service name.",
			ConstLabels: constLabels,
		}, []string{"service"}),
		negativeRecv: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "uds_negative_responses_total",
			Help:        "UDS negative responses received, labelled by NRC name.",
			ConstLabels: constLabels,
		}, []string{"nrc"}),
	}

	reg.MustRegister(
		s.framesSent, s.framesReceived, s.timeouts, s.stateChanges, s.statesCurrent,
		s.requestsSent, s.responsesRecv, s.negativeRecv,
	)
	return s
}

func (s *Sink) FrameSent(kind string)     { s.framesSent.WithLabelValues(kind).Inc() }
func (s *Sink) FrameReceived(kind string) { s.framesReceived.WithLabelValues(kind).Inc() }
func (s *Sink) TimeoutOccurred(kind string) {
	s.timeouts.WithLabelValues(kind).Inc()
}

// StateChanged resets every state gauge to 0 and sets the new one to 1,
// so the current state can be read back with a single vector query.
func (s *Sink) StateChanged(state string) {
	s.stateChanges.WithLabelValues(state).Inc()
	s.statesCurrent.Reset()
	s.statesCurrent.WithLabelValues(state).Set(1)
}

// RequestSent records a UDS request transmission labelled by service name.
func (s *Sink) RequestSent(service string) { s.requestsSent.WithLabelValues(service).Inc() }

// ResponseReceived records a positive UDS response labelled by service name.
func (s *Sink) ResponseReceived(service string) { s.responsesRecv.WithLabelValues(service).Inc() }

// NegativeReceived records a negative UDS response labelled by NRC name.
func (s *Sink) NegativeReceived(nrc string) { s.negativeRecv.WithLabelValues(nrc).Inc() }
