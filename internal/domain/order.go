package domain

type (
	// OrderStatus represents the status of an order.
	OrderStatus string
	// DeliveryStatus represents the status of a delivery record.
	DeliveryStatus string
	// DeliveryType represents how a delivery is carried out.
	DeliveryType string
	// VehicleClass represents the vehicle used for a delivery trip.
	VehicleClass string
)

// Order is a customer purchase awaiting fulfillment. Owned by the external
// order service; read-only here except for status transitions driven by
// delivery outcomes.
type Order struct {
	ID         int64
	ClientName string
	Address    string
	Phone      string
	Status     OrderStatus
}
