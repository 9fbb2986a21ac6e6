// Package metrics exports generation statistics to Prometheus.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lifegrid/pkg/torus"
)

// Recorder holds the collectors for one registry.
type Recorder struct {
	registry    *prometheus.Registry
	generations *prometheus.CounterVec
	frozen      *prometheus.CounterVec
	cues        *prometheus.CounterVec
	alive       *prometheus.GaugeVec
	changed     *prometheus.HistogramVec
	duration    *prometheus.HistogramVec
}

// New registers the lifegrid collectors on a fresh registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lifegrid_generations_total",
			Help: "Total number of committed generations",
		}, []string{"sim"}),
		frozen: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lifegrid_frozen_generations_total",
			Help: "Generations that changed no cell",
		}, []string{"sim"}),
		cues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lifegrid_generation_cues_total",
			Help: "Generation cues emitted to the presentation layer",
		}, []string{"sim"}),
		alive: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lifegrid_alive_cells",
			Help: "Living cells after the last generation",
		}, []string{"sim"}),
		changed: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lifegrid_changed_cells",
			Help:    "Cells flipped per generation",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"sim"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lifegrid_step_duration_seconds",
			Help:    "Time spent computing one generation",
			Buckets: prometheus.DefBuckets,
		}, []string{"sim"}),
	}
	r.registry.MustRegister(r.generations, r.frozen, r.cues, r.alive, r.changed, r.duration)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe records one committed generation.
func (r *Recorder) Observe(sim string, rep torus.Report, took time.Duration) {
	if r == nil {
		return
	}
	r.generations.WithLabelValues(sim).Inc()
	r.alive.WithLabelValues(sim).Set(float64(rep.AliveCount))
	r.changed.WithLabelValues(sim).Observe(float64(len(rep.Changed)))
	r.duration.WithLabelValues(sim).Observe(took.Seconds())
	if rep.Frozen {
		r.frozen.WithLabelValues(sim).Inc()
	}
}

// Cue records a generation cue.
func (r *Recorder) Cue(sim string) {
	if r == nil {
		return
	}
	r.cues.WithLabelValues(sim).Inc()
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (r *Recorder) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics endpoint listening", "addr", addr, "path", "/metrics")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
