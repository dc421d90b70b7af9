package app

import (
	"context"
	"errors"

	"service-livraison/internal/apperr"
	"service-livraison/internal/service/orders"
	"service-livraison/internal/transport/kafka"
)

// orderEventHandler is the part of the orders processor the kafka handler
// needs. Narrowed for tests.
type orderEventHandler interface {
	Handle(ctx context.Context, e orders.Event) error
}

// makeOrdersHandler adapts the orders processor to the kafka consumer.
// Validation failures are permanent: redelivery cannot fix a malformed
// event, so they are marked and dropped instead of retried.
func makeOrdersHandler(p orderEventHandler) kafka.HandleFunc {
	return func(ctx context.Context, event orders.Event) error {
		err := p.Handle(ctx, event)
		if err == nil {
			return nil
		}
		if errors.Is(err, apperr.ErrInvalid) || errors.Is(err, apperr.ErrInvalidTransition) {
			return kafka.Permanent(err)
		}
		return err
	}
}
