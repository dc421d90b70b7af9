package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewGeocodeFallbackTotal returns a Prometheus counter for the number of geocode requests answered with the fallback coordinate
func NewGeocodeFallbackTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geocode_fallback_total",
		Help: "Total number of geocode requests answered with the fallback coordinate",
	})
}

// NewGeoRetriesTotal returns a Prometheus counter for the number of retry attempts against geo providers
func NewGeoRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geo_retries_total",
		Help: "Total number of retry attempts performed against geo providers",
	})
}

// NewPendingWindowExpiredTotal returns a Prometheus counter for the number of pending windows that expired and hid their order
func NewPendingWindowExpiredTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pending_window_expired_total",
		Help: "Total number of pending windows that expired and hid their order",
	})
}
