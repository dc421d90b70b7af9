package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"service-livraison/internal/config"
	"service-livraison/internal/domain"
	"service-livraison/internal/gateway/geo"
	ordersgw "service-livraison/internal/gateway/orders"
	"service-livraison/internal/http/handlers"
	"service-livraison/internal/http/router"
	"service-livraison/internal/logx"
	"service-livraison/internal/metrics"
	"service-livraison/internal/repository"
	"service-livraison/internal/scheduler"
	"service-livraison/internal/service/livraison"
	"service-livraison/internal/service/orders"
	"service-livraison/internal/transport/kafka"
)

// refreshInterval is the period of the background order sync loop.
type refreshInterval time.Duration

// assignmentStore is the persistence surface the lifecycle service needs,
// satisfied by both the pgx and the redis implementations.
type assignmentStore interface {
	Put(ctx context.Context, a domain.Assignment) error
	PutDeliveryID(ctx context.Context, orderID, deliveryID int64) error
	Get(ctx context.Context, orderID int64) (*domain.Assignment, error)
	All(ctx context.Context) ([]domain.Assignment, error)
	Delete(ctx context.Context, orderID int64) error
}

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerStorage(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	if err := registerGateways(container); err != nil {
		return nil, fmt.Errorf("gateways: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the container for the kafka worker binary.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

type metricsOut struct {
	dig.Out

	RateLimitExceeded prometheus.Counter `name:"rate_limit_exceeded_total"`
	GeocodeFallbacks  prometheus.Counter `name:"geocode_fallback_total"`
	GeoRetries        prometheus.Counter `name:"geo_retries_total"`
	WindowExpired     prometheus.Counter `name:"pending_window_expired_total"`
}

func newMetrics() metricsOut {
	return metricsOut{
		RateLimitExceeded: metrics.NewRateLimitExceededTotal(),
		GeocodeFallbacks:  metrics.NewGeocodeFallbackTotal(),
		GeoRetries:        metrics.NewGeoRetriesTotal(),
		WindowExpired:     metrics.NewPendingWindowExpiredTotal(),
	}
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		newMetrics,
		func(cfg *config.Config) refreshInterval {
			return refreshInterval(cfg.Orders.RefreshInterval)
		},
	)
}

func registerStorage(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	providerStore := func(cfg *config.Config, pool *pgxpool.Pool) assignmentStore {
		if cfg.Redis.Addr != "" {
			return repository.NewRedisAssignmentStore(redis.NewClient(&redis.Options{
				Addr: cfg.Redis.Addr,
			}))
		}
		return repository.NewAssignmentRepo(pool)
	}
	return provideAll(container, providerDB, providerStore)
}

type geoIn struct {
	dig.In

	Cfg       *config.Config
	Logger    logx.Logger
	Retries   prometheus.Counter `name:"geo_retries_total"`
	Fallbacks prometheus.Counter `name:"geocode_fallback_total"`
}

func registerGateways(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) *ordersgw.Client {
			return ordersgw.NewClient(cfg.Orders.BaseURL, cfg.Orders.Timeout)
		},
		func(in geoIn) *geo.Geocoder {
			return geo.NewGeocoder(geo.GeocoderConfig{
				BaseURL: in.Cfg.Geo.GeocodeBaseURL,
				APIKey:  in.Cfg.Geo.APIKey,
				Timeout: in.Cfg.Geo.GeocodeTimeout,
				Fallback: domain.Coordinates{
					Lat: in.Cfg.Geo.FallbackLat,
					Lon: in.Cfg.Geo.FallbackLon,
				},
			}, in.Logger, in.Retries, in.Fallbacks)
		},
		func(in geoIn) *geo.Router {
			return geo.NewRouter(geo.RouterConfig{
				BaseURL: in.Cfg.Geo.RouteBaseURL,
				APIKey:  in.Cfg.Geo.APIKey,
				Timeout: in.Cfg.Geo.RouteTimeout,
			}, in.Logger, in.Retries)
		},
	)
}

type livraisonIn struct {
	dig.In

	Cfg           *config.Config
	Logger        logx.Logger
	Gateway       *ordersgw.Client
	Store         assignmentStore
	Geocoder      *geo.Geocoder
	Router        *geo.Router
	Windows       *scheduler.Scheduler
	WindowExpired prometheus.Counter `name:"pending_window_expired_total"`
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		func(logger logx.Logger) *scheduler.Scheduler {
			return scheduler.New(logger)
		},
		func(in livraisonIn) *livraison.Service {
			return livraison.New(livraison.Deps{
				Gateway:       in.Gateway,
				Store:         in.Store,
				Geocoder:      in.Geocoder,
				Router:        in.Router,
				Windows:       in.Windows,
				WindowExpired: in.WindowExpired,
				Logger:        in.Logger,
			}, livraison.Settings{
				OperationTimeout:  3 * time.Second,
				WindowTicks:       int(in.Cfg.Delivery.PendingWindow / time.Second),
				DefaultDistanceKm: in.Cfg.Geo.DefaultDistanceKm,
				Vehicle:           domain.VehicleCar,
				Origin: domain.Coordinates{
					Lat: in.Cfg.Geo.FallbackLat,
					Lon: in.Cfg.Geo.FallbackLon,
				},
			})
		},
		func(svc *livraison.Service) *orders.Processor {
			return orders.NewProcessor(svc)
		},
		func(logger logx.Logger, cfg *config.Config, p *orders.Processor) (*kafka.Consumer, error) {
			return kafka.NewConsumer(
				logger,
				cfg.Kafka.Brokers,
				cfg.Kafka.GroupID,
				cfg.Kafka.Topic,
				makeOrdersHandler(p),
			)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewLivraisonUsecase,
		handlers.NewLivraisonHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		router.New,
		serverProvider,
	)
}
