//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"
)

// LifecyclePort abstracts the subset of lifecycle operations needed by the
// orders Processor when handling order events
type LifecyclePort interface {
	Refresh(ctx context.Context) error
	Release(ctx context.Context, orderID int64) error
}
