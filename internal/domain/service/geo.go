package service

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// EarthRadiusMiles is the mean Earth radius used by DistanceMiles.
const EarthRadiusMiles = 3959.0

// GeohashPrecision is the number of characters stored on seller documents.
const GeohashPrecision = 10

// DistanceMiles returns the great-circle distance between two points given in degrees,
// using the haversine formula. Malformed input yields NaN.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}

// Geohash tags a seller location. Nothing queries by it yet.
func Geohash(lat, lon float64) string {
	return geohash.EncodeWithPrecision(lat, lon, GeohashPrecision)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
