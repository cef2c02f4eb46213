// Package observability provides tracing and metrics instrumentation.
package observability

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "duet_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// LikesProcessed counts like actions by outcome (liked, matched, already_liked).
	LikesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "duet_likes_processed_total",
		Help: "Total number of like actions processed by outcome",
	}, []string{"outcome"})

	// MessagesSent counts messages persisted, labeled by attachment presence.
	MessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "duet_messages_sent_total",
		Help: "Total number of chat messages persisted",
	}, []string{"kind"})

	// RegistrationsTotal counts successful user registrations.
	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "duet_registrations_total",
		Help: "Total number of successful user registrations",
	})

	// AuthFailures counts rejected authentication attempts by reason.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "duet_auth_failures_total",
		Help: "Total number of rejected authentication attempts",
	}, []string{"reason"})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}
