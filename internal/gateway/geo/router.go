package geo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"service-livraison/internal/apperr"
	"service-livraison/internal/domain"
	"service-livraison/internal/logx"
)

// Route is the travel distance and duration between two coordinates.
type Route struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// DistanceKm returns the route distance in kilometers.
func (r Route) DistanceKm() float64 {
	return r.DistanceMeters / 1000
}

// RouterConfig stores Router settings.
type RouterConfig struct {
	BaseURL string
	APIKey  string
	Profile string
	Timeout time.Duration
}

// Router computes road routes via an OpenRouteService-style directions
// endpoint. Transient failures surface as ErrRouteUnavailable so the caller
// can fall back to a default distance; "no route exists" surfaces as
// ErrNoRoute and should reach the operator.
type Router struct {
	transport *transport
	baseURL   string
	profile   string
	timeout   time.Duration
	logger    logx.Logger
}

// NewRouter creates a Router.
func NewRouter(cfg RouterConfig, logger logx.Logger, retries counter) *Router {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.Profile == "" {
		cfg.Profile = "driving-car"
	}
	return &Router{
		transport: newTransport(cfg.Timeout, cfg.APIKey, retries),
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		profile:   cfg.Profile,
		timeout:   cfg.Timeout,
		logger:    logger,
	}
}

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"summary"`
	} `json:"routes"`
}

// Route computes the route between origin and destination within the
// configured timeout.
func (r *Router) Route(ctx context.Context, origin, destination domain.Coordinates) (Route, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	payload, err := json.Marshal(directionsRequest{
		// provider expects [lon, lat] pairs
		Coordinates: [][]float64{
			{origin.Lon, origin.Lat},
			{destination.Lon, destination.Lat},
		},
	})
	if err != nil {
		return Route{}, fmt.Errorf("marshal directions request: %w", err)
	}

	endpoint := r.baseURL + "/v2/directions/" + r.profile
	makeReq := func() (*http.Request, error) {
		return r.transport.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	}

	resp, err := r.transport.doWithRetry(ctx, makeReq)
	if err != nil {
		var he *httpStatusError
		if errors.As(err, &he) && he.Code == http.StatusNotFound {
			return Route{}, fmt.Errorf("%w: %s", apperr.ErrNoRoute, he.Body)
		}
		return Route{}, fmt.Errorf("%w: %w", apperr.ErrRouteUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Route{}, fmt.Errorf("%w: decode response: %w", apperr.ErrRouteUnavailable, err)
	}
	if len(decoded.Routes) == 0 {
		return Route{}, apperr.ErrNoRoute
	}

	sum := decoded.Routes[0].Summary
	r.logger.Debug("route resolved",
		logx.Float64("distance_m", sum.Distance),
		logx.Float64("duration_s", sum.Duration),
	)
	return Route{
		DistanceMeters:  sum.Distance,
		DurationSeconds: sum.Duration,
	}, nil
}
