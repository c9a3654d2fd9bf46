package httpadapter

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"svw.info/colorsudoku/internal/domain"
)

var (
	generateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "colorsudoku_generate_total",
		Help: "Total puzzle generation requests by algorithm and outcome.",
	}, []string{"algorithm", "status"})

	generateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "colorsudoku_generate_duration_seconds",
		Help:    "Puzzle generation latency in seconds by algorithm.",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
	}, []string{"algorithm"})
)

func observeGenerate(a domain.Algorithm, err error, d time.Duration) {
	status := "ok"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidConfig):
		status = "invalid_config"
	case errors.Is(err, domain.ErrNoSolution):
		status = "no_solution"
	default:
		status = "error"
	}
	generateTotal.WithLabelValues(a.String(), status).Inc()
	generateDuration.WithLabelValues(a.String()).Observe(d.Seconds())
}

// RegisterMetrics exposes the prometheus endpoint on the engine.
func RegisterMetrics(e *gin.Engine) {
	e.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
