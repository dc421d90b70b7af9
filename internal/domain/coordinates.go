package domain

// Coordinates is a geographic point (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}
