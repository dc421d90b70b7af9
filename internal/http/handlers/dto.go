package handlers

import (
	"service-livraison/internal/domain"
	"service-livraison/internal/service/livraison"
)

// Wire field names follow the order backend's French API contract.

type driverDTO struct {
	ID        int64  `json:"id"`
	Nom       string `json:"nom"`
	Email     string `json:"email,omitempty"`
	Telephone string `json:"telephone,omitempty"`
}

func driverFromDTO(d driverDTO) domain.Driver {
	return domain.Driver{
		ID:    d.ID,
		Name:  d.Nom,
		Email: d.Email,
		Phone: d.Telephone,
	}
}

func driverToDTO(d domain.Driver) driverDTO {
	return driverDTO{
		ID:        d.ID,
		Nom:       d.Name,
		Email:     d.Email,
		Telephone: d.Phone,
	}
}

type claimRequest struct {
	CommandeID int64     `json:"commandeId"`
	Livreur    driverDTO `json:"livreur"`
}

type claimResponse struct {
	CommandeID  int64                 `json:"commandeId"`
	LivraisonID int64                 `json:"livraisonId"`
	Status      domain.DeliveryStatus `json:"statusLivraison"`
}

type outcomeRequest struct {
	CommandeID int64                 `json:"commandeId"`
	Status     domain.DeliveryStatus `json:"statusLivraison"`
	Photo      string                `json:"photo,omitempty"`
	Raison     string                `json:"raison,omitempty"`
}

type outcomeResponse struct {
	CommandeID      int64                 `json:"commandeId"`
	Status          domain.DeliveryStatus `json:"statusLivraison"`
	CarbonFootprint *float64              `json:"carbonFootprint,omitempty"`
	CarbonEstime    bool                  `json:"carbonEstime,omitempty"`
}

type cancelRequest struct {
	CommandeID int64 `json:"commandeId"`
}

type pendingOrderDTO struct {
	CommandeID      int64                 `json:"commandeId"`
	ClientNom       string                `json:"clientNom"`
	Adresse         string                `json:"adresse"`
	Telephone       string                `json:"telephone,omitempty"`
	StatusCommande  domain.OrderStatus    `json:"statusCommande"`
	StatusLivraison domain.DeliveryStatus `json:"statusLivraison,omitempty"`
	Livreur         *driverDTO            `json:"livreur,omitempty"`
	LivraisonID     int64                 `json:"livraisonId,omitempty"`
	TempsRestant    int                   `json:"tempsRestant"`
	Annulable       bool                  `json:"annulable"`
}

func pendingToDTO(p livraison.PendingOrder) pendingOrderDTO {
	dto := pendingOrderDTO{
		CommandeID:      p.Order.ID,
		ClientNom:       p.Order.ClientName,
		Adresse:         p.Order.Address,
		Telephone:       p.Order.Phone,
		StatusCommande:  p.Order.Status,
		StatusLivraison: p.DeliveryStatus,
		LivraisonID:     p.DeliveryID,
		TempsRestant:    p.RemainingSeconds,
		Annulable:       p.Cancellable,
	}
	if p.Driver != nil {
		d := driverToDTO(*p.Driver)
		dto.Livreur = &d
	}
	return dto
}
