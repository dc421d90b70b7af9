package order

import "service-livraison/internal/domain"

// Wire types mirror the order backend's JSON contract.

type commandeDTO struct {
	ID        int64  `json:"id"`
	ClientNom string `json:"clientNom"`
	Adresse   string `json:"adresse"`
	Telephone string `json:"telephone"`
	Status    string `json:"status"`
}

type livreurDTO struct {
	ID        int64  `json:"id"`
	Nom       string `json:"nom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	UserID    int64  `json:"userId"`
}

type livraisonDTO struct {
	ID              int64      `json:"id,omitempty"`
	StatusLivraison string     `json:"statusLivraison"`
	TypeLivraison   string     `json:"typeLivraison"`
	CommandeID      int64      `json:"commandeId"`
	Livreur         livreurDTO `json:"livreur"`
	Photo           *string    `json:"photo,omitempty"`
	Reason          *string    `json:"reason,omitempty"`
	CurrentLat      *float64   `json:"currentLat,omitempty"`
	CurrentLng      *float64   `json:"currentLng,omitempty"`
	DestinationLat  *float64   `json:"destinationLat,omitempty"`
	DestinationLng  *float64   `json:"destinationLng,omitempty"`
	CarbonFootprint *float64   `json:"carbonFootprint,omitempty"`
}

type livraisonPatchDTO struct {
	StatusLivraison *string  `json:"statusLivraison,omitempty"`
	Photo           *string  `json:"photo,omitempty"`
	Reason          *string  `json:"reason,omitempty"`
	CurrentLat      *float64 `json:"currentLat,omitempty"`
	CurrentLng      *float64 `json:"currentLng,omitempty"`
	DestinationLat  *float64 `json:"destinationLat,omitempty"`
	DestinationLng  *float64 `json:"destinationLng,omitempty"`
	CarbonFootprint *float64 `json:"carbonFootprint,omitempty"`
}

type carbonRequestDTO struct {
	VehicleType string  `json:"vehicleType"`
	DistanceKm  float64 `json:"distance"`
	LivraisonID int64   `json:"livraisonId"`
}

type carbonResponseDTO struct {
	CarbonFootprint float64 `json:"carbonFootprint"`
	DistanceKm      float64 `json:"distance"`
	EmissionFactor  float64 `json:"emissionFactor"`
}

func mapCommande(dto commandeDTO) domain.Order {
	return domain.Order{
		ID:         dto.ID,
		ClientName: dto.ClientNom,
		Address:    dto.Adresse,
		Phone:      dto.Telephone,
		Status:     domain.OrderStatus(dto.Status),
	}
}

func mapLivraison(dto livraisonDTO) domain.DeliveryRecord {
	rec := domain.DeliveryRecord{
		ID:      dto.ID,
		OrderID: dto.CommandeID,
		Status:  domain.DeliveryStatus(dto.StatusLivraison),
		Type:    domain.DeliveryType(dto.TypeLivraison),
		Driver: domain.Driver{
			ID:    dto.Livreur.ID,
			Name:  dto.Livreur.Nom,
			Email: dto.Livreur.Email,
			Phone: dto.Livreur.Telephone,
		},
		Photo:    dto.Photo,
		Reason:   dto.Reason,
		CarbonKg: dto.CarbonFootprint,
	}
	if dto.CurrentLat != nil && dto.CurrentLng != nil {
		rec.Origin = &domain.Coordinates{Lat: *dto.CurrentLat, Lon: *dto.CurrentLng}
	}
	if dto.DestinationLat != nil && dto.DestinationLng != nil {
		rec.Destination = &domain.Coordinates{Lat: *dto.DestinationLat, Lon: *dto.DestinationLng}
	}
	return rec
}

func mapPatch(p domain.DeliveryPatch) livraisonPatchDTO {
	dto := livraisonPatchDTO{
		Photo:           p.Photo,
		Reason:          p.Reason,
		CarbonFootprint: p.CarbonKg,
	}
	if p.Status != nil {
		s := string(*p.Status)
		dto.StatusLivraison = &s
	}
	if p.Origin != nil {
		dto.CurrentLat = &p.Origin.Lat
		dto.CurrentLng = &p.Origin.Lon
	}
	if p.Destination != nil {
		dto.DestinationLat = &p.Destination.Lat
		dto.DestinationLng = &p.Destination.Lon
	}
	return dto
}
