package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		d.User, d.Pass, net.JoinHostPort(d.Host, d.Port), d.Name)
}

// Redis stores the optional redis assignment store settings. An empty Addr
// keeps the pgx-backed store.
type Redis struct {
	Addr string
}

// Orders stores the order/delivery backend settings.
type Orders struct {
	BaseURL         string
	Timeout         time.Duration
	RefreshInterval time.Duration
}

// Geo stores geocoding and routing provider settings.
type Geo struct {
	GeocodeBaseURL    string
	RouteBaseURL      string
	APIKey            string
	GeocodeTimeout    time.Duration
	RouteTimeout      time.Duration
	FallbackLat       float64
	FallbackLon       float64
	DefaultDistanceKm float64
}

// Delivery stores delivery lifecycle settings.
type Delivery struct {
	PendingWindow time.Duration
}

// RateLimit stores claim rate limiting settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Kafka stores order-events consumer settings. Empty brokers disable the
// consumer.
type Kafka struct {
	Brokers []string
	GroupID string
	Topic   string
}

// Config stores service settings.
type Config struct {
	Port      int
	DB        DB
	Redis     Redis
	Orders    Orders
	Geo       Geo
	Delivery  Delivery
	RateLimit RateLimit
	Kafka     Kafka
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		DB:        DefaultDB(),
		Orders:    DefaultOrders(),
		Geo:       DefaultGeo(),
		Delivery:  DefaultDelivery(),
		RateLimit: DefaultRateLimit(),
	}

	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return nil, err
	}

	cfg.DB.Host = envStr("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envStr("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = envStr("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = envStr("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = envStr("POSTGRES_DB", cfg.DB.Name)

	cfg.Redis.Addr = envStr("REDIS_ADDR", "")

	cfg.Orders.BaseURL = envStr("ORDERS_BASE_URL", cfg.Orders.BaseURL)
	if cfg.Orders.Timeout, err = envDuration("ORDERS_TIMEOUT", cfg.Orders.Timeout); err != nil {
		return nil, err
	}
	if cfg.Orders.RefreshInterval, err = envDuration("ORDERS_REFRESH_INTERVAL", cfg.Orders.RefreshInterval); err != nil {
		return nil, err
	}

	cfg.Geo.GeocodeBaseURL = envStr("GEOCODE_BASE_URL", cfg.Geo.GeocodeBaseURL)
	cfg.Geo.RouteBaseURL = envStr("ROUTE_BASE_URL", cfg.Geo.RouteBaseURL)
	cfg.Geo.APIKey = envStr("GEO_API_KEY", cfg.Geo.APIKey)
	if cfg.Geo.GeocodeTimeout, err = envDuration("GEOCODE_TIMEOUT", cfg.Geo.GeocodeTimeout); err != nil {
		return nil, err
	}
	if cfg.Geo.RouteTimeout, err = envDuration("ROUTE_TIMEOUT", cfg.Geo.RouteTimeout); err != nil {
		return nil, err
	}
	if cfg.Geo.FallbackLat, err = envFloat("GEO_FALLBACK_LAT", cfg.Geo.FallbackLat); err != nil {
		return nil, err
	}
	if cfg.Geo.FallbackLon, err = envFloat("GEO_FALLBACK_LON", cfg.Geo.FallbackLon); err != nil {
		return nil, err
	}
	if cfg.Geo.DefaultDistanceKm, err = envFloat("GEO_DEFAULT_DISTANCE_KM", cfg.Geo.DefaultDistanceKm); err != nil {
		return nil, err
	}

	if cfg.Delivery.PendingWindow, err = envDuration("DELIVERY_PENDING_WINDOW", cfg.Delivery.PendingWindow); err != nil {
		return nil, err
	}

	cfg.RateLimit.Enabled = envStr("RATE_LIMIT_ENABLED", "") == "true"
	if cfg.RateLimit.Rate, err = envFloat("RATE_LIMIT_RATE", cfg.RateLimit.Rate); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Burst, err = envInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst); err != nil {
		return nil, err
	}

	if brokers := envStr("KAFKA_BROKERS", ""); brokers != "" {
		cfg.Kafka.Brokers = strings.Split(brokers, ",")
	}
	cfg.Kafka.GroupID = envStr("KAFKA_GROUP_ID", "service-livraison")
	cfg.Kafka.Topic = envStr("KAFKA_TOPIC", "orders.events")

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.Parse()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if _, err := strconv.Atoi(c.DB.Port); err != nil {
		return fmt.Errorf("invalid postgres port %q: %w", c.DB.Port, err)
	}
	if c.Orders.BaseURL == "" {
		return fmt.Errorf("orders base URL is empty")
	}
	if c.Orders.Timeout <= 0 {
		return fmt.Errorf("invalid orders timeout: %s", c.Orders.Timeout)
	}
	if c.Orders.RefreshInterval <= 0 {
		return fmt.Errorf("invalid orders refresh interval: %s", c.Orders.RefreshInterval)
	}
	if c.Geo.GeocodeTimeout <= 0 || c.Geo.RouteTimeout <= 0 {
		return fmt.Errorf("geo timeouts must be positive")
	}
	if c.Geo.FallbackLat < -90 || c.Geo.FallbackLat > 90 ||
		c.Geo.FallbackLon < -180 || c.Geo.FallbackLon > 180 {
		return fmt.Errorf("fallback coordinate out of range: %f,%f",
			c.Geo.FallbackLat, c.Geo.FallbackLon)
	}
	if c.Geo.DefaultDistanceKm <= 0 {
		return fmt.Errorf("invalid default distance: %f", c.Geo.DefaultDistanceKm)
	}
	if c.Delivery.PendingWindow <= 0 {
		return fmt.Errorf("invalid pending window: %s", c.Delivery.PendingWindow)
	}
	return nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	return f, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	return d, nil
}
