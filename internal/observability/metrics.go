// SPDX-License-Identifier: MIT

// Package observability exports playback controller events as Prometheus
// metrics.
package observability

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/stepviz/player"
)

const namespace = "stepviz"

// Metrics implements player.Metrics on a private registry.
type Metrics struct {
	reg *prometheus.Registry

	loads       *prometheus.CounterVec
	steps       *prometheus.GaugeVec
	transitions *prometheus.CounterVec
	advances    *prometheus.CounterVec
	rejected    *prometheus.CounterVec
}

var _ player.Metrics = (*Metrics)(nil)

// New registers the controller metrics on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_loaded_total",
			Help:      "Runs loaded into the playback controller.",
		}, []string{"algorithm"}),
		steps: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_steps",
			Help:      "Length of the most recently loaded run.",
		}, []string{"algorithm"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_transitions_total",
			Help:      "Controller state transitions.",
		}, []string{"from", "to"}),
		advances: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cursor_moves_total",
			Help:      "Cursor moves, by algorithm and whether the timer drove them.",
		}, []string{"algorithm", "auto"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_operations_total",
			Help:      "Operations refused in the current state.",
		}, []string{"op"}),
	}
	m.reg.MustRegister(m.loads, m.steps, m.transitions, m.advances, m.rejected)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Loaded implements player.Metrics.
func (m *Metrics) Loaded(name string, total int) {
	m.loads.WithLabelValues(name).Inc()
	m.steps.WithLabelValues(name).Set(float64(total))
}

// Transition implements player.Metrics.
func (m *Metrics) Transition(from, to player.State) {
	m.transitions.WithLabelValues(from.String(), to.String()).Inc()
}

// Advanced implements player.Metrics.
func (m *Metrics) Advanced(name string, auto bool) {
	m.advances.WithLabelValues(name, strconv.FormatBool(auto)).Inc()
}

// Rejected implements player.Metrics.
func (m *Metrics) Rejected(op string) {
	m.rejected.WithLabelValues(op).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Serve exposes /metrics on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string, log *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	log.Info("serving metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
