package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyClaimed indicates a lost claim race: another driver already owns
// the order.
var ErrAlreadyClaimed = errors.New("order already claimed")

// ErrNotClaimed indicates an outcome submitted for an order with no claim.
var ErrNotClaimed = errors.New("order not claimed")

// ErrInvalidTransition indicates an operation against a delivery record that
// is already in a terminal state.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrGeocodeUnavailable indicates the geocoding provider timed out or
// returned nothing. Recovered locally via the fallback coordinate.
var ErrGeocodeUnavailable = errors.New("geocoding unavailable")

// ErrRouteUnavailable indicates a transient routing failure. The caller
// falls back to a default distance instead of aborting.
var ErrRouteUnavailable = errors.New("routing unavailable")

// ErrNoRoute indicates the provider answered but found no route between the
// two points. Unlike ErrRouteUnavailable this is surfaced to the operator.
var ErrNoRoute = errors.New("no route between points")

// ErrPersistence indicates an assignment store write failed. Fatal to the
// operation: losing the mapping orphans the delivery record.
var ErrPersistence = errors.New("persistence failure")
