// Package order is the gateway to the external order/delivery backend, the
// out-of-process system of record. Calls are not retried here: failures
// propagate to the caller so the UI can prompt a retry.
package order

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"service-livraison/internal/domain"
)

// Client is an orders gateway backed by the backend's JSON API.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates an orders gateway.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ListOrders fetches the authoritative order list.
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var dtos []commandeDTO
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/commandes", nil, &dtos); err != nil {
		return nil, fmt.Errorf("order gateway: ListOrders: %w", err)
	}

	orders := make([]domain.Order, 0, len(dtos))
	for _, dto := range dtos {
		if dto.ID == 0 {
			continue
		}
		orders = append(orders, mapCommande(dto))
	}
	return orders, nil
}

// CreateDelivery creates a delivery record for an order claimed by a driver
// and returns the backend-assigned record id.
func (c *Client) CreateDelivery(ctx context.Context, orderID int64, driver domain.Driver, typ domain.DeliveryType) (int64, error) {
	body := livraisonDTO{
		StatusLivraison: string(domain.DeliveryEnCours),
		TypeLivraison:   string(typ),
		CommandeID:      orderID,
		Livreur: livreurDTO{
			ID:        driver.ID,
			Nom:       driver.Name,
			Email:     driver.Email,
			Telephone: driver.Phone,
			UserID:    driver.ID,
		},
	}

	var created livraisonDTO
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/livraisons", body, &created); err != nil {
		return 0, fmt.Errorf("order gateway: CreateDelivery order %d: %w", orderID, err)
	}
	if created.ID == 0 {
		return 0, fmt.Errorf("order gateway: CreateDelivery order %d: backend returned no id", orderID)
	}
	return created.ID, nil
}

// GetDelivery fetches a delivery record by id. Returns nil when the backend
// does not know the record.
func (c *Client) GetDelivery(ctx context.Context, deliveryID int64) (*domain.DeliveryRecord, error) {
	var dto livraisonDTO
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("%s/livraisons/%d", c.baseURL, deliveryID), nil, &dto)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("order gateway: GetDelivery %d: %w", deliveryID, err)
	}
	rec := mapLivraison(dto)
	return &rec, nil
}

// UpdateDelivery applies a partial update to a delivery record.
func (c *Client) UpdateDelivery(ctx context.Context, deliveryID int64, patch domain.DeliveryPatch) error {
	url := fmt.Sprintf("%s/livraisons/%d", c.baseURL, deliveryID)
	if err := c.doJSON(ctx, http.MethodPut, url, mapPatch(patch), nil); err != nil {
		return fmt.Errorf("order gateway: UpdateDelivery %d: %w", deliveryID, err)
	}
	return nil
}

// ComputeCarbon asks the backend for a carbon figure. Fallback path used
// when no external route could be resolved.
func (c *Client) ComputeCarbon(ctx context.Context, class domain.VehicleClass, distanceKm float64, deliveryID int64) (float64, error) {
	body := carbonRequestDTO{
		VehicleType: string(class),
		DistanceKm:  distanceKm,
		LivraisonID: deliveryID,
	}

	var resp carbonResponseDTO
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/carbon/calculate", body, &resp); err != nil {
		return 0, fmt.Errorf("order gateway: ComputeCarbon delivery %d: %w", deliveryID, err)
	}
	return resp.CarbonFootprint, nil
}

type statusError struct {
	Code int
	Body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("backend status %d: %s", e.Code, e.Body)
}

func (c *Client) doJSON(ctx context.Context, method, url string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return &statusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
