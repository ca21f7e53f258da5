package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments for one server runtime (spec §5
// "Connection and session-loop health is exported as Prometheus
// gauges/counters"), grounded on go-ffmpeg-hls-swarm's internal/metrics
// package (one struct of pre-registered instruments, a small HTTP server
// exposing /metrics and /healthz alongside it).
type Metrics struct {
	registry *prometheus.Registry

	connectedClients prometheus.Gauge
	actionQueueDepth prometheus.Gauge
	actionsProcessed prometheus.Counter
	broadcastLag     *prometheus.CounterVec
}

// NewMetrics builds a fresh registry and registers every instrument.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		connectedClients: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "splitrun_connected_clients",
			Help: "Currently connected client connections.",
		}),
		actionQueueDepth: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "splitrun_action_queue_depth",
			Help: "Number of actions currently queued for the session loop.",
		}),
		actionsProcessed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "splitrun_actions_processed_total",
			Help: "Total actions applied by the session loop.",
		}),
		broadcastLag: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "splitrun_broadcast_lag_total",
			Help: "Events dropped for a lagging subscriber, by connection id.",
		}, []string{"connection_id"}),
	}
	return m
}

func (m *Metrics) clientConnected()    { m.connectedClients.Inc() }
func (m *Metrics) clientDisconnected() { m.connectedClients.Dec() }
func (m *Metrics) queueDepth(n int)    { m.actionQueueDepth.Set(float64(n)) }
func (m *Metrics) actionApplied()      { m.actionsProcessed.Inc() }
func (m *Metrics) lagged(connID string) {
	m.broadcastLag.WithLabelValues(connID).Inc()
}

// HTTPServer mounts /metrics and /healthz on a net/http mux, matching
// go-ffmpeg-hls-swarm's internal/metrics.Server shape.
func (m *Metrics) HTTPServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	return &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
}

// Serve runs the metrics HTTP server until ctx is cancelled.
func Serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		<-errCh
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}
