package carbon

import (
	"fmt"
	"math"

	"service-livraison/internal/domain"
)

// Estimate is the result of a carbon footprint computation. Unreliable is set
// when the input distance had to be normalized and the figure should not be
// presented as accurate.
type Estimate struct {
	CarbonKg       float64
	DistanceKm     float64
	EmissionFactor float64
	Unreliable     bool
}

// Estimator derives a CO2-equivalent mass from a trip distance. Pure and
// deterministic; no I/O.
type Estimator struct{}

// NewEstimator - creates a new Estimator.
func NewEstimator() Estimator {
	return Estimator{}
}

// Factor returns the emission factor in kg CO2 per km for a vehicle class.
func (Estimator) Factor(class domain.VehicleClass) (float64, error) {
	switch class {
	case domain.VehicleCar:
		return 0.12, nil
	case domain.VehicleScooter:
		return 0.03, nil
	case domain.VehicleOnFoot:
		return 0, nil
	default:
		return 0, fmt.Errorf("unknown vehicle class: %s", class)
	}
}

// Estimate computes the footprint for a trip. Negative or NaN distances are
// normalized to zero and the result is flagged unreliable instead of
// producing a misleading number.
func (e Estimator) Estimate(distanceKm float64, class domain.VehicleClass) (Estimate, error) {
	factor, err := e.Factor(class)
	if err != nil {
		return Estimate{}, err
	}

	unreliable := false
	if math.IsNaN(distanceKm) || distanceKm < 0 {
		distanceKm = 0
		unreliable = true
	}

	return Estimate{
		CarbonKg:       distanceKm * factor,
		DistanceKm:     distanceKm,
		EmissionFactor: factor,
		Unreliable:     unreliable,
	}, nil
}
