// Package telemetry exports the status registry to Prometheus
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/skyhook/status"
)

const namespace = "skyhook"

// shutdownTimeout bounds graceful server shutdown
const shutdownTimeout = 2 * time.Second

// Exporter owns a private Prometheus registry with the status collector and frame timing
type Exporter struct {
	reg          *prometheus.Registry
	tickDuration prometheus.Histogram
}

// New creates an exporter reading source on every scrape
func New(source *status.Registry) *Exporter {
	reg := prometheus.NewRegistry()
	tick := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "tick_duration_seconds",
		Help:      "Time spent in one game tick",
		Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.016, 0.033},
	})
	reg.MustRegister(&statusCollector{source: source}, tick)
	return &Exporter{reg: reg, tickDuration: tick}
}

// ObserveTick records the wall time spent in one Game.Tick
func (e *Exporter) ObserveTick(d time.Duration) {
	e.tickDuration.Observe(d.Seconds())
}

// Handler serves /metrics and /health
func (e *Exporter) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(e.reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	return mux
}

// Serve runs the metrics server until ctx is done
func (e *Exporter) Serve(ctx context.Context, addr string, log zerolog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           e.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("metrics server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics shutdown: %w", err)
		}
		return nil
	}
}

// statusCollector is an unchecked collector; the key set grows as systems register metrics
type statusCollector struct {
	source *status.Registry
}

func (c *statusCollector) Describe(chan<- *prometheus.Desc) {}

func (c *statusCollector) Collect(ch chan<- prometheus.Metric) {
	for _, s := range c.source.Numeric() {
		desc := prometheus.NewDesc(MetricName(s.Key), "Live game metric "+s.Key, nil, nil)
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, s.Value)
	}
}

// MetricName maps a dotted status key to a Prometheus metric name
func MetricName(key string) string {
	var b strings.Builder
	b.WriteString(namespace)
	b.WriteByte('_')
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
