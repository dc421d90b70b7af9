package orders

import (
	"context"
	"errors"

	"service-livraison/internal/apperr"
)

// Processor processes order events coming off the broker and keeps the
// pending view in sync with the order backend.
type Processor struct {
	lifecycle LifecyclePort
	factory   *actionFactory
}

// NewProcessor creates a new orders.Processor
func NewProcessor(lifecycle LifecyclePort) *Processor {
	p := &Processor{
		lifecycle: lifecycle,
	}
	p.factory = newActionFactory(p.onUpserted, p.onDropped)
	return p
}

// Handle processes a single orders.Event
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	fn, ok := p.factory.get(e.Status)
	if !ok {
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onUpserted(ctx context.Context, _ Event) error {
	return p.lifecycle.Refresh(ctx)
}

func (p *Processor) onDropped(ctx context.Context, e Event) error {
	err := p.lifecycle.Release(ctx, e.OrderID)
	if errors.Is(err, apperr.ErrNotClaimed) {
		return nil
	}
	return err
}
