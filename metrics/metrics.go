package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const namespace = "webbg"

// Metrics holds the game counters on a private registry
// A nil *Metrics is valid and records nothing
type Metrics struct {
	Registry *prometheus.Registry

	TilesSpawned         prometheus.Counter
	TilesDespawned       prometheus.Counter
	TilesMaterialized    prometheus.Gauge
	CollisionCorrections *prometheus.CounterVec
	FoodEaten            prometheus.Counter
	EventsDropped        prometheus.Counter
	GenerationSeconds    *prometheus.HistogramVec
	FrameSeconds         prometheus.Histogram
}

// New creates and registers all collectors
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		TilesSpawned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tiles_spawned_total",
			Help:      "Tiles materialized around the camera.",
		}),
		TilesDespawned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tiles_despawned_total",
			Help:      "Tiles released outside the despawn margin.",
		}),
		TilesMaterialized: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tiles_materialized",
			Help:      "Tiles currently materialized.",
		}),
		CollisionCorrections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collision_corrections_total",
			Help:      "Player position corrections by kind.",
		}, []string{"kind"}),
		FoodEaten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "food_eaten_total",
			Help:      "Collectibles consumed.",
		}),
		EventsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dropped_total",
			Help:      "Game events overwritten in a full queue.",
		}),
		GenerationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "maze_generation_seconds",
			Help:      "Maze generation duration by resolved mode.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"mode"}),
		FrameSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_seconds",
			Help:      "Simulation time per frame.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
	}

	m.Registry.MustRegister(
		m.TilesSpawned,
		m.TilesDespawned,
		m.TilesMaterialized,
		m.CollisionCorrections,
		m.FoodEaten,
		m.EventsDropped,
		m.GenerationSeconds,
		m.FrameSeconds,
	)
	return m
}

// ObserveStream records one streaming pass
func (m *Metrics) ObserveStream(spawned, despawned, materialized int) {
	if m == nil {
		return
	}
	m.TilesSpawned.Add(float64(spawned))
	m.TilesDespawned.Add(float64(despawned))
	m.TilesMaterialized.Set(float64(materialized))
}

// ObserveCorrection counts wall and corner pushes separately
func (m *Metrics) ObserveCorrection(walls, corners int) {
	if m == nil {
		return
	}
	if walls > 0 {
		m.CollisionCorrections.WithLabelValues("wall").Add(float64(walls))
	}
	if corners > 0 {
		m.CollisionCorrections.WithLabelValues("corner").Add(float64(corners))
	}
}

func (m *Metrics) ObserveFood() {
	if m == nil {
		return
	}
	m.FoodEaten.Inc()
}

func (m *Metrics) ObserveDropped(n uint64) {
	if m == nil || n == 0 {
		return
	}
	m.EventsDropped.Add(float64(n))
}

func (m *Metrics) ObserveGeneration(mode string, d time.Duration) {
	if m == nil {
		return
	}
	m.GenerationSeconds.WithLabelValues(mode).Observe(d.Seconds())
}

func (m *Metrics) ObserveFrame(d time.Duration) {
	if m == nil {
		return
	}
	m.FrameSeconds.Observe(d.Seconds())
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Server serves /metrics until Shutdown
type Server struct {
	srv *http.Server
	log logrus.FieldLogger
}

// Serve starts the exposition endpoint on addr in the background
func (m *Metrics) Serve(addr string, log logrus.FieldLogger) (*Server, error) {
	if addr == "" {
		return nil, errors.New("metrics: empty listen address")
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	s := &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log.WithField("component", "metrics"),
	}

	go func() {
		s.log.WithField("addr", addr).Info("metrics endpoint listening")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.WithError(err).Error("metrics endpoint stopped")
		}
	}()
	return s, nil
}

// Shutdown stops the endpoint
func (s *Server) Shutdown(ctx context.Context) error {
	if s == nil {
		return nil
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("metrics shutdown: %w", err)
	}
	return nil
}
