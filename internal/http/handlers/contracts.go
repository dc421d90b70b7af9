package handlers

import (
	"context"

	"service-livraison/internal/domain"
	"service-livraison/internal/service/carbon"
	"service-livraison/internal/service/livraison"
)

type livraisonUsecase interface {
	Claim(ctx context.Context, orderID int64, driver domain.Driver) (int64, error)
	SubmitOutcome(ctx context.Context, orderID int64, outcome domain.Outcome) (*carbon.Estimate, error)
	CancelOutcome(ctx context.Context, orderID int64) error
	PendingOrders() []livraison.PendingOrder
}

// NewLivraisonUsecase wires the lifecycle service into a livraisonUsecase.
func NewLivraisonUsecase(svc *livraison.Service) livraisonUsecase {
	return svc
}
