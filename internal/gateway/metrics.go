// ABOUTME: Prometheus collectors for the edge gateway.
// ABOUTME: Session churn, frame flow, delivery paths and bus traffic.

package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the gateway's Prometheus collectors. Each Gateway owns its
// registry, so two instances in one process never collide on registration.
type metrics struct {
	sessionsActive prometheus.Gauge
	sessionsTotal  prometheus.Counter
	displacements  prometheus.Counter

	framesIn      *prometheus.CounterVec
	framesOut     prometheus.Counter
	framesDropped prometheus.Counter

	deliveries  *prometheus.CounterVec
	busReceived prometheus.Counter

	poolRejected prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		sessionsActive: f.NewGauge(prometheus.GaugeOpts{
			Name: "tinyim_gateway_sessions_active",
			Help: "Currently connected WebSocket sessions.",
		}),
		sessionsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "tinyim_gateway_sessions_total",
			Help: "WebSocket sessions accepted since start.",
		}),
		displacements: f.NewCounter(prometheus.CounterOpts{
			Name: "tinyim_gateway_session_displacements_total",
			Help: "Sessions displaced by a newer connection for the same user.",
		}),
		framesIn: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tinyim_gateway_frames_in_total",
			Help: "Inbound frames by type.",
		}, []string{"type"}),
		framesOut: f.NewCounter(prometheus.CounterOpts{
			Name: "tinyim_gateway_frames_out_total",
			Help: "Frames written to client connections.",
		}),
		framesDropped: f.NewCounter(prometheus.CounterOpts{
			Name: "tinyim_gateway_frames_dropped_total",
			Help: "Inbound frames dropped as malformed.",
		}),
		deliveries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "tinyim_gateway_deliveries_total",
			Help: "Frame deliveries by path.",
		}, []string{"path"}),
		busReceived: f.NewCounter(prometheus.CounterOpts{
			Name: "tinyim_gateway_bus_received_total",
			Help: "Deliveries consumed from this edge's bus topic.",
		}),
		poolRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "tinyim_gateway_pool_rejected_total",
			Help: "Chat sends refused because the worker pool was saturated.",
		}),
	}
}
