// Package geo holds the clients for the external geocoding and routing
// providers. Both are untrusted and latency-variable: every call carries an
// explicit timeout and degrades to a fallback instead of failing the
// delivery fast path.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"service-livraison/internal/apperr"
	"service-livraison/internal/domain"
	"service-livraison/internal/logx"
)

// GeocoderConfig stores Geocoder settings.
type GeocoderConfig struct {
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
	Fallback domain.Coordinates
}

// Geocoder resolves free-text addresses to coordinates using a
// Nominatim-style search endpoint. Results are cached per normalized address
// for the lifetime of the process; upstream failures yield the configured
// fallback coordinate, never an error on the caller's path.
type Geocoder struct {
	transport *transport
	baseURL   string
	timeout   time.Duration
	fallback  domain.Coordinates
	logger    logx.Logger
	fallbacks counter

	mu    sync.RWMutex
	cache map[string]domain.Coordinates
}

// NewGeocoder creates a Geocoder. fallbacks may be nil.
func NewGeocoder(cfg GeocoderConfig, logger logx.Logger, retries, fallbacks counter) *Geocoder {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}
	return &Geocoder{
		transport: newTransport(cfg.Timeout, cfg.APIKey, retries),
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		timeout:   cfg.Timeout,
		fallback:  cfg.Fallback,
		logger:    logger,
		fallbacks: fallbacks,
		cache:     make(map[string]domain.Coordinates),
	}
}

// normalize ensures consistent cache keys by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Resolve returns the best-match coordinates for an address. On timeout,
// upstream error or empty result it logs, counts and returns the fallback
// coordinate: geocoding must never block an outcome submission.
func (g *Geocoder) Resolve(ctx context.Context, address string) domain.Coordinates {
	norm := normalize(address)
	if norm == "" {
		return g.useFallback(address, apperr.ErrGeocodeUnavailable)
	}

	g.mu.RLock()
	cached, ok := g.cache[norm]
	g.mu.RUnlock()
	if ok {
		return cached
	}

	coords, err := g.lookup(ctx, norm)
	if err != nil {
		return g.useFallback(address, err)
	}

	g.mu.Lock()
	g.cache[norm] = coords
	g.mu.Unlock()

	return coords
}

func (g *Geocoder) useFallback(address string, err error) domain.Coordinates {
	g.logger.Warn("geocode fallback",
		logx.String("address", address),
		logx.Err(err),
	)
	if g.fallbacks != nil {
		g.fallbacks.Inc()
	}
	return g.fallback
}

type geocodeResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (g *Geocoder) lookup(ctx context.Context, address string) (domain.Coordinates, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	endpoint := g.baseURL + "/search"
	makeReq := func() (*http.Request, error) {
		req, err := g.transport.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("q", address)
		q.Set("format", "json")
		q.Set("limit", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	}

	resp, err := g.transport.doWithRetry(ctx, makeReq)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: %w", apperr.ErrGeocodeUnavailable, err)
	}
	defer resp.Body.Close()

	var decoded []geocodeResult
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: decode response: %w", apperr.ErrGeocodeUnavailable, err)
	}
	if len(decoded) == 0 {
		return domain.Coordinates{}, fmt.Errorf("%w: no results for %q", apperr.ErrGeocodeUnavailable, address)
	}

	lat, latErr := strconv.ParseFloat(decoded[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(decoded[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: invalid coordinates for %q", apperr.ErrGeocodeUnavailable, address)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}
