package domain

import "regexp"

// List of possible order statuses (owned by the order service).
const (
	OrderPending OrderStatus = "PENDING"
	OrderEnCours OrderStatus = "EN_COURS"
	OrderLivree  OrderStatus = "LIVREE"
	OrderAnnulee OrderStatus = "ANNULEE"
)

// List of possible delivery record statuses.
const (
	DeliveryTakeIt   DeliveryStatus = "TAKE_IT"
	DeliveryEnCours  DeliveryStatus = "EN_COURS"
	DeliveryLivre    DeliveryStatus = "LIVRE"
	DeliveryNonLivre DeliveryStatus = "NON_LIVRE"
)

// List of possible delivery types.
const (
	TypeADomicile DeliveryType = "A_DOMICILE"
)

// List of possible vehicle classes used for carbon estimation.
const (
	VehicleCar     VehicleClass = "car"
	VehicleScooter VehicleClass = "scooter"
	VehicleOnFoot  VehicleClass = "on_foot"
)

var allowedOrderStatuses = [...]OrderStatus{
	OrderPending, OrderEnCours, OrderLivree, OrderAnnulee,
}

var allowedDeliveryStatuses = [...]DeliveryStatus{
	DeliveryTakeIt, DeliveryEnCours, DeliveryLivre, DeliveryNonLivre,
}

var allowedDeliveryTypes = [...]DeliveryType{
	TypeADomicile,
}

var allowedVehicleClasses = [...]VehicleClass{
	VehicleCar, VehicleScooter, VehicleOnFoot,
}

// Valid checks if the OrderStatus is valid
func (s OrderStatus) Valid() bool {
	for _, v := range allowedOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the DeliveryStatus is valid
func (s DeliveryStatus) Valid() bool {
	for _, v := range allowedDeliveryStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether the status ends a delivery attempt.
func (s DeliveryStatus) Terminal() bool {
	return s == DeliveryLivre || s == DeliveryNonLivre
}

// Valid checks if the DeliveryType is valid
func (t DeliveryType) Valid() bool {
	for _, v := range allowedDeliveryTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Valid checks if the VehicleClass is valid
func (c VehicleClass) Valid() bool {
	for _, v := range allowedVehicleClasses {
		if c == v {
			return true
		}
	}
	return false
}

// rePhone is a regex to validate phone numbers
var rePhone = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
