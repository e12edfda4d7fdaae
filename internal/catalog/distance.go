package catalog

import (
	"math"
)

const (
	earthRadiusKm = 6371.0
	kmToMiles     = 0.621371
)

// Campus is the fixed reference point every distance sort measures from.
var Campus = Coordinate{Lat: 40.807384, Lon: -73.963036}

type Coordinate struct {
	Lat float64
	Lon float64
}

// DistanceMiles returns the great-circle distance between two coordinates
// in miles, rounded to one decimal place. Callers guard against missing
// coordinates before calling.
func DistanceMiles(a, b Coordinate) float64 {
	km := haversineKm(a.Lat, a.Lon, b.Lat, b.Lon)
	return math.Round(km*kmToMiles*10) / 10
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
