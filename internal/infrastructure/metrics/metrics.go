package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "detailshop"

// Registry holds every detailshop collector; Handler serves it.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	HTTPRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	EstimatesCalculated = factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimates_calculated_total",
		Help:      "Estimates computed by the calculator.",
	})

	EstimateItemsExcluded = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimate_items_excluded_total",
		Help:      "Selected services/modifiers left out of an estimate, by kind and reason.",
	}, []string{"kind", "reason"})

	ClientResolutions = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_resolutions_total",
		Help:      "Client resolver outcomes by matching strategy.",
	}, []string{"strategy"})

	AssessmentsCreated = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assessments_created_total",
		Help:      "Assessments persisted, by channel (dashboard or booking).",
	}, []string{"channel"})

	PaymentsProcessed = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assessment_payments_total",
		Help:      "Assessment payment attempts by outcome.",
	}, []string{"outcome"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler exposes Registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
