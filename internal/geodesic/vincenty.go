package geodesic

import (
	"math"

	"github.com/planbiir/hiketime/internal/track"
)

// WGS-84 ellipsoid
const (
	semiMajor  = 6378137.0
	flattening = 1 / 298.257223563
	semiMinor  = (1 - flattening) * semiMajor

	maxIterations = 200
	tolerance     = 1e-12
)

// Vincenty returns the ellipsoidal distance in kilometers using Vincenty's
// inverse formula. It fails with ErrNoConvergence for nearly antipodal points.
func Vincenty(a, b track.Waypoint) (float64, error) {
	if err := checkCoordinates(a, b); err != nil {
		return 0, err
	}
	if a.Lat == b.Lat && a.Lon == b.Lon {
		return 0, nil
	}

	L := math.Remainder(radians(b.Lon-a.Lon), 2*math.Pi)
	U1 := math.Atan((1 - flattening) * math.Tan(radians(a.Lat)))
	U2 := math.Atan((1 - flattening) * math.Tan(radians(b.Lat)))
	sinU1, cosU1 := math.Sincos(U1)
	sinU2, cosU2 := math.Sincos(U2)

	var (
		sinSigma, cosSigma, sigma float64
		cosSqAlpha, cos2SigmaM    float64
		converged                 bool
	)

	lambda := L
	for i := 0; i < maxIterations; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)

		x := cosU2 * sinLambda
		y := cosU1*sinU2 - sinU1*cosU2*cosLambda
		sinSigma = math.Sqrt(x*x + y*y)
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		if sinSigma == 0 {
			if cosSigma > 0 {
				return 0, nil
			}
			return 0, ErrNoConvergence
		}
		sigma = math.Atan2(sinSigma, cosSigma)

		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		cos2SigmaM = 0 // equatorial line
		if cosSqAlpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}

		C := flattening / 16 * cosSqAlpha * (4 + flattening*(4-3*cosSqAlpha))
		prev := lambda
		lambda = L + (1-C)*flattening*sinAlpha*
			(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		if math.Abs(lambda) > math.Pi {
			return 0, ErrNoConvergence
		}
		if math.Abs(lambda-prev) < tolerance {
			converged = true
			break
		}
	}
	if !converged {
		return 0, ErrNoConvergence
	}

	uSq := cosSqAlpha * (semiMajor*semiMajor - semiMinor*semiMinor) / (semiMinor * semiMinor)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := B * sinSigma * (cos2SigmaM + B/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
		B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	meters := semiMinor * A * (sigma - deltaSigma)
	return meters / 1000, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
