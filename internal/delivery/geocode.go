package delivery

import "math"

// Coordinates is a WGS84 point.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// ZipcodeResolver is the simulated geocoder: a fixed zip-to-coordinates
// table measured against the store location. Zip codes outside the table
// cannot be verified. A real deployment would swap in a geocoding API
// behind the same DistanceResolver interface.
type ZipcodeResolver struct {
	Store Coordinates
	Table map[string]Coordinates
}

// NewZipcodeResolver builds a resolver around the store location with the
// stock demo table.
func NewZipcodeResolver(store Coordinates) *ZipcodeResolver {
	return &ZipcodeResolver{
		Store: store,
		Table: defaultZipcodeTable(),
	}
}

// DistanceKm implements DistanceResolver.
func (r *ZipcodeResolver) DistanceKm(zipCode string) (float64, bool) {
	coords, ok := r.Table[zipCode]
	if !ok {
		return 0, false
	}
	return HaversineKm(r.Store, coords), true
}

// HaversineKm is the great-circle distance between two points in
// kilometers, rounded to 2 decimals.
func HaversineKm(a, b Coordinates) float64 {
	const earthRadiusKm = 6371

	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(earthRadiusKm*c*100) / 100
}

func toRad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// defaultZipcodeTable covers the demo neighbourhood around the Connaught
// Place store plus two far-away city centers that exercise the
// out-of-range path.
func defaultZipcodeTable() map[string]Coordinates {
	return map[string]Coordinates{
		// Very close, inside the free 0.5 km.
		"110001": {28.6139, 77.2090},
		"110002": {28.6145, 77.2095},
		// 0.5-1 km.
		"110003": {28.6190, 77.2130},
		"110004": {28.6180, 77.2140},
		// 1-1.5 km.
		"110005": {28.6230, 77.2170},
		"110006": {28.6250, 77.2180},
		// 1.5-2 km.
		"110007": {28.6280, 77.2200},
		"110008": {28.6300, 77.2210},
		// Out of range.
		"400001": {19.0760, 72.8777}, // Mumbai
		"560001": {12.9716, 77.5946}, // Bangalore
	}
}
