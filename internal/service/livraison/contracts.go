//go:generate mockgen -source=contracts.go -destination=livraison_mocks_test.go -package=livraison

package livraison

import (
	"context"

	"service-livraison/internal/domain"
	"service-livraison/internal/gateway/geo"
	"service-livraison/internal/scheduler"
)

type orderGateway interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateDelivery(ctx context.Context, orderID int64, driver domain.Driver, typ domain.DeliveryType) (int64, error)
	GetDelivery(ctx context.Context, deliveryID int64) (*domain.DeliveryRecord, error)
	UpdateDelivery(ctx context.Context, deliveryID int64, patch domain.DeliveryPatch) error
	ComputeCarbon(ctx context.Context, class domain.VehicleClass, distanceKm float64, deliveryID int64) (float64, error)
}

type assignmentStore interface {
	Put(ctx context.Context, a domain.Assignment) error
	PutDeliveryID(ctx context.Context, orderID, deliveryID int64) error
	Get(ctx context.Context, orderID int64) (*domain.Assignment, error)
	All(ctx context.Context) ([]domain.Assignment, error)
	Delete(ctx context.Context, orderID int64) error
}

type addressResolver interface {
	Resolve(ctx context.Context, address string) domain.Coordinates
}

type routeProvider interface {
	Route(ctx context.Context, origin, destination domain.Coordinates) (geo.Route, error)
}

type windowScheduler interface {
	Start(orderID int64, ticks int, fire scheduler.FireFunc)
	Cancel(orderID int64) bool
	Remaining(orderID int64) int
	Active(orderID int64) bool
	StopAll()
}

type counter interface {
	Inc()
}
