// Package metrics exposes Prometheus collectors for the solver and the HTTP API.
package metrics

import (
	"strconv"
	"time"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/Zcytxcbyz/projectile/internal/ports"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const namespace = "projectile"

// Branch label values.
const (
	BranchClosedForm = "closed_form"
	BranchNewton     = "newton"
)

var (
	// Solver metrics
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "solver",
		Name:      "solves_total",
		Help:      "Total landing solves by branch and stop reason",
	}, []string{"branch", "stop"})

	solverIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "solver",
		Name:      "iterations",
		Help:      "Newton iterations per drag solve",
		Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21, 50, 100},
	})

	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "solver",
		Name:      "solve_duration_seconds",
		Help:      "Wall time of a single landing solve",
		Buckets:   []float64{1e-7, 1e-6, 1e-5, 1e-4, 1e-3, 1e-2},
	}, []string{"branch"})

	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "path"})
)

// Observer records every solve. The zero value is ready to use.
type Observer struct{}

func NewObserver() *Observer {
	return &Observer{}
}

var _ ports.SolveObserver = (*Observer)(nil)

func (o *Observer) ObserveSolve(p domain.LaunchParameters, r domain.LandingResult, took time.Duration) {
	branch := Branch(p)

	solvesTotal.WithLabelValues(branch, string(r.Stop)).Inc()
	solveDuration.WithLabelValues(branch).Observe(took.Seconds())
	if branch == BranchNewton {
		solverIterations.Observe(float64(r.Iterations))
	}
}

// Branch names the solver path taken for p.
func Branch(p domain.LaunchParameters) string {
	if p.HasDrag() {
		return BranchNewton
	}
	return BranchClosedForm
}

// Middleware records request metrics.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())
		// Unmatched paths collapse to one label value.
		path := c.Route().Path
		if path == "" || (path == "/" && c.Path() != "/") {
			path = "unmatched"
		}
		method := c.Method()

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(duration)

		return err
	}
}

// Handler returns a Fiber handler serving the Prometheus exposition format.
func Handler() fiber.Handler {
	handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c *fiber.Ctx) error {
		handler(c.Context())
		return nil
	}
}
