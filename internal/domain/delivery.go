package domain

import "strings"

// Driver identifies who carries out a delivery.
type Driver struct {
	ID    int64
	Name  string
	Email string
	Phone string
}

// Validate checks that the driver carries enough identity to own a claim.
func (d Driver) Validate() error {
	if d.ID <= 0 || strings.TrimSpace(d.Name) == "" {
		return ErrInvalidDriver
	}
	if d.Phone != "" && !ValidatePhone(d.Phone) {
		return ErrInvalidDriver
	}
	return nil
}

// DeliveryRecord tracks one driver's attempt to fulfill one order.
// Photo is present only when Status is LIVRE, Reason only when NON_LIVRE.
// Coordinates and carbon are populated opportunistically.
type DeliveryRecord struct {
	ID          int64
	OrderID     int64
	Status      DeliveryStatus
	Type        DeliveryType
	Driver      Driver
	Photo       *string
	Reason      *string
	Origin      *Coordinates
	Destination *Coordinates
	CarbonKg    *float64
}

// DeliveryPatch carries optional fields to update a delivery record.
// A nil field leaves that attribute unchanged.
type DeliveryPatch struct {
	Status      *DeliveryStatus
	Photo       *string
	Reason      *string
	Origin      *Coordinates
	Destination *Coordinates
	CarbonKg    *float64
}

// Outcome is the terminal result of a delivery attempt submitted by a driver.
type Outcome struct {
	Status DeliveryStatus
	Photo  string
	Reason string
}

// Validate enforces the evidence rules for a delivery outcome.
func (o Outcome) Validate() error {
	switch o.Status {
	case DeliveryLivre:
		if o.Reason != "" {
			return ErrInvalidOutcome
		}
	case DeliveryNonLivre:
		if strings.TrimSpace(o.Reason) == "" {
			return ErrInvalidOutcome
		}
		if o.Photo != "" {
			return ErrInvalidOutcome
		}
	default:
		return ErrInvalidOutcome
	}
	return nil
}

// Assignment is the durable link between an order and the driver who claimed
// it. DeliveryID stays zero until the backend has assigned a record id; the
// two halves become known at different times and are persisted independently.
type Assignment struct {
	OrderID    int64
	Driver     Driver
	DeliveryID int64
}
