// Package distance computes great-circle distances from a fixed origin.
package distance

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const EarthRadiusKm float64 = 6371.0

type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

func NewGeoPoint(lat, lon float64) GeoPoint {
	return GeoPoint{Latitude: lat, Longitude: lon}
}

// Buenos Aires
var DefaultOrigin = GeoPoint{Latitude: -34.6, Longitude: -58.43}

type Formula string

const (
	Canonical      Formula = "canonical"
	AsFoundFormula Formula = "as-found"
)

func ParseFormula(name string) (Formula, error) {
	switch Formula(strings.ToLower(strings.TrimSpace(name))) {
	case "", Canonical:
		return Canonical, nil
	case AsFoundFormula:
		return AsFoundFormula, nil
	}
	return "", fmt.Errorf("unknown distance formula %q", name)
}

// Haversine returns the great-circle distance in kilometers between two points
// given in decimal degrees.
//
// a = sin²(Δφ/2) + cos φ1 ⋅ cos φ2 ⋅ sin²(Δλ/2)
// c = 2 ⋅ atan2( √a, √(1−a) )
// d = R ⋅ c
func Haversine(origin, target GeoPoint) float64 {
	lat1 := toRadians(origin.Latitude)
	lat2 := toRadians(target.Latitude)
	dLat := toRadians(target.Latitude - origin.Latitude)
	dLon := toRadians(target.Longitude - origin.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// AsFound reproduces the distances persisted by earlier versions of the service.
// The second term multiplies by the cosines of the target's latitude and
// longitude instead of both latitudes, so the result is not symmetric.
func AsFound(origin, target GeoPoint) float64 {
	dLat := toRadians(origin.Latitude - target.Latitude)
	dLon := toRadians(origin.Longitude - target.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	a := math.Pow(sinLat, 2) +
		math.Pow(sinLon, 2)*math.Cos(toRadians(target.Latitude))*math.Cos(toRadians(target.Longitude))

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

type Calculator struct {
	Origin  GeoPoint
	Formula Formula
}

func NewCalculator(origin GeoPoint, formula Formula) Calculator {
	return Calculator{Origin: origin, Formula: formula}
}

func (c Calculator) DistanceKm(target GeoPoint) float64 {
	if c.Formula == AsFoundFormula {
		return AsFound(c.Origin, target)
	}
	return Haversine(c.Origin, target)
}

// Round rounds to whole kilometers, halves away from zero.
func Round(km float64) float64 {
	return math.Round(km)
}

func FormatKm(km float64) string {
	r := Round(km)
	if r == 0 {
		r = 0 // drops the sign of -0
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
