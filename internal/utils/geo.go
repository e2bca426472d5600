// internal/utils/geo.go
package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/javajoker/collaboration-service/internal/apperror"
)

// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
const EarthRadiusKm = 6371.0

// Coordinates is a point in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// ParseLocation parses "latitude,longitude".
func ParseLocation(location string) (Coordinates, error) {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return Coordinates{}, apperror.ErrInvalidLocationFormat
	}

	lat, err := parseCoordinate(parts[0])
	if err != nil {
		return Coordinates{}, err
	}
	lon, err := parseCoordinate(parts[1])
	if err != nil {
		return Coordinates{}, err
	}

	return Coordinates{Lat: lat, Lon: lon}, nil
}

// parseCoordinate accepts finite decimal degrees only.
func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperror.ErrInvalidLocationFormat
	}
	return v, nil
}

// DistanceKm returns the great-circle distance between two "lat,lon" strings.
func DistanceKm(loc1, loc2 string) (float64, error) {
	a, err := ParseLocation(loc1)
	if err != nil {
		return 0, err
	}
	b, err := ParseLocation(loc2)
	if err != nil {
		return 0, err
	}
	return Haversine(a, b), nil
}

// Haversine returns the great-circle distance between a and b in kilometres.
func Haversine(a, b Coordinates) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*math.Pow(math.Sin(dLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
