package telemetry

// SLI metric names used for instrumentation.
const (
	// Latency
	MetricAPILatencyP50 = "api.latency.p50"
	MetricAPILatencyP95 = "api.latency.p95"
	MetricAPILatencyP99 = "api.latency.p99"

	// Throughput
	MetricRequestsPerSec = "api.requests_per_second"

	// Upstream dependencies
	MetricGeocoderLatency = "geocoder.provider_latency"
	MetricRouterLatency   = "router.provider_latency"

	// Availability
	MetricUptime = "service.uptime_percentage"

	// Business
	MetricPlansComputed   = "business.plans_computed"
	MetricRouterFallbacks = "business.router_fallbacks"
)
