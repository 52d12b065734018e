package distance

import (
	"math"
	"testing"

	"github.com/matryer/is"
)

var madrid = GeoPoint{Latitude: 40.4, Longitude: -3.7}

func TestDistanceToOriginIsZero(t *testing.T) {
	is := is.New(t)

	is.Equal(Haversine(DefaultOrigin, DefaultOrigin), 0.0)
	is.Equal(AsFound(DefaultOrigin, DefaultOrigin), 0.0)

	c := NewCalculator(DefaultOrigin, AsFoundFormula)
	is.Equal(c.DistanceKm(DefaultOrigin), 0.0)
}

func TestHaversine(t *testing.T) {
	tests := []struct {
		name      string
		origin    GeoPoint
		target    GeoPoint
		expected  float64
		tolerance float64
	}{
		{"one degree along the equator", NewGeoPoint(0, 0), NewGeoPoint(0, 1), 111.19, 0.01},
		{"equator crossing", NewGeoPoint(1, 0), NewGeoPoint(-1, 0), 222.4, 1.0},
		{"buenos aires to madrid", DefaultOrigin, madrid, 10046.2, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			d := Haversine(tt.origin, tt.target)
			is.True(math.Abs(d-tt.expected) <= tt.tolerance) // distance outside tolerance
		})
	}
}

func TestHaversineIsSymmetric(t *testing.T) {
	is := is.New(t)

	there := Haversine(DefaultOrigin, madrid)
	back := Haversine(madrid, DefaultOrigin)

	is.True(math.Abs(there-back) < 1e-9)
}

func TestAsFoundIsNotSymmetric(t *testing.T) {
	is := is.New(t)

	there := AsFound(DefaultOrigin, madrid)
	back := AsFound(madrid, DefaultOrigin)

	is.True(math.Abs(there-10404.8) < 0.5)
	is.True(math.Abs(back-9518.3) < 0.5)
	is.True(math.Abs(there-back) > 800)
}

func TestCalculatorUsesConfiguredFormula(t *testing.T) {
	is := is.New(t)

	canonical := NewCalculator(DefaultOrigin, Canonical)
	asFound := NewCalculator(DefaultOrigin, AsFoundFormula)

	is.Equal(canonical.DistanceKm(madrid), Haversine(DefaultOrigin, madrid))
	is.Equal(asFound.DistanceKm(madrid), AsFound(DefaultOrigin, madrid))
	is.Equal(FormatKm(canonical.DistanceKm(madrid)), "10046")
	is.Equal(FormatKm(asFound.DistanceKm(madrid)), "10405")
}

func TestParseFormula(t *testing.T) {
	is := is.New(t)

	f, err := ParseFormula("")
	is.NoErr(err)
	is.Equal(f, Canonical)

	f, err = ParseFormula(" AS-FOUND ")
	is.NoErr(err)
	is.Equal(f, AsFoundFormula)

	_, err = ParseFormula("vincenty")
	is.True(err != nil)
}

func TestFormatKm(t *testing.T) {
	is := is.New(t)

	is.Equal(FormatKm(69.5), "70")
	is.Equal(FormatKm(70.49), "70")
	is.Equal(FormatKm(0.4), "0")
	is.Equal(FormatKm(-0.2), "0")
	is.Equal(FormatKm(math.NaN()), "NaN")
}

func TestNaNPropagates(t *testing.T) {
	is := is.New(t)
	is.True(math.IsNaN(Haversine(DefaultOrigin, NewGeoPoint(math.NaN(), 0))))
}

func BenchmarkHaversine(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Haversine(DefaultOrigin, madrid)
	}
}
