// Package geodesic computes horizontal distances between waypoints.
package geodesic

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/planbiir/hiketime/internal/track"
)

var (
	// ErrNoConvergence is returned when the iterative solution does not settle,
	// typically for nearly antipodal points.
	ErrNoConvergence = errors.New("vincenty formula failed to converge")

	// ErrInvalidCoordinate is returned for NaN or out-of-range coordinates.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidAlgorithm is returned for unknown distance algorithm names.
	ErrInvalidAlgorithm = errors.New("invalid distance algorithm")
)

// Func returns the distance between two waypoints in kilometers.
type Func func(a, b track.Waypoint) (float64, error)

// Algorithm selects the underlying geodesy primitive.
type Algorithm int

const (
	AlgorithmVincenty Algorithm = iota
	AlgorithmHaversine
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmVincenty:
		return "vincenty"
	case AlgorithmHaversine:
		return "haversine"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps "vincenty" or "haversine" to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vincenty":
		return AlgorithmVincenty, nil
	case "haversine":
		return AlgorithmHaversine, nil
	}
	return 0, fmt.Errorf("%w: %q (valid: vincenty, haversine)", ErrInvalidAlgorithm, s)
}

// Options configures New.
type Options struct {
	Algorithm Algorithm

	// Use3D folds the elevation difference into a straight-line distance
	// when both points carry elevation. Off by default; statistics are
	// defined on horizontal distance.
	Use3D bool
}

// New returns a distance function for the given options.
func New(opts Options) Func {
	base := Vincenty
	if opts.Algorithm == AlgorithmHaversine {
		base = Haversine
	}
	if !opts.Use3D {
		return base
	}

	return func(a, b track.Waypoint) (float64, error) {
		d, err := base(a, b)
		if err != nil || !a.HasElevation() || !b.HasElevation() {
			return d, err
		}
		dz := (*b.Elevation - *a.Elevation) / 1000
		return math.Sqrt(d*d + dz*dz), nil
	}
}

// Haversine returns the spherical great-circle distance in kilometers.
func Haversine(a, b track.Waypoint) (float64, error) {
	if err := checkCoordinates(a, b); err != nil {
		return 0, err
	}
	return gpx.HaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon) / 1000, nil
}

func checkCoordinates(points ...track.Waypoint) error {
	for _, p := range points {
		if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) || math.IsInf(p.Lon, 0) || math.Abs(p.Lat) > 90 {
			return fmt.Errorf("%w: lat=%v lon=%v", ErrInvalidCoordinate, p.Lat, p.Lon)
		}
	}
	return nil
}
