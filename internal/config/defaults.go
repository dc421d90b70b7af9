package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "livraison_db",
}

var defaultOrders = Orders{
	BaseURL:         "http://localhost:8081/api",
	Timeout:         5 * time.Second,
	RefreshInterval: 30 * time.Second,
}

// Fallback coordinate is the depot in central Tunis; used when geocoding or
// GPS is unavailable.
var defaultGeo = Geo{
	GeocodeBaseURL:    "https://nominatim.openstreetmap.org",
	RouteBaseURL:      "https://api.openrouteservice.org",
	GeocodeTimeout:    3 * time.Second,
	RouteTimeout:      5 * time.Second,
	FallbackLat:       36.8065,
	FallbackLon:       10.1815,
	DefaultDistanceKm: 10,
}

var defaultDelivery = Delivery{
	PendingWindow: 10 * time.Second,
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       5,
	Burst:      10,
	TTL:        time.Minute,
	MaxBuckets: 10000,
}

// DefaultPort returns the default HTTP port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultOrders returns the default order backend settings.
func DefaultOrders() Orders {
	return defaultOrders
}

// DefaultGeo returns the default geocoding/routing settings.
func DefaultGeo() Geo {
	return defaultGeo
}

// DefaultDelivery returns the default delivery lifecycle settings.
func DefaultDelivery() Delivery {
	return defaultDelivery
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
