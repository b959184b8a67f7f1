package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// IndexCacheHits counts index page cache hits and misses.
	IndexCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pulse_index_cache_requests_total",
		Help: "Index page cache lookups by outcome",
	}, []string{"outcome"})
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wires the Prometheus middleware into the request chain.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
