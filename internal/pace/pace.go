// Package pace implements the slope-adjusted walking time model.
package pace

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ErrInvalidAdjustment is returned for adjustments that are not finite and non-negative.
var ErrInvalidAdjustment = errors.New("invalid speed adjustment")

// Model constants: pace (s/m) = base * exp(growth * (slope + adjustment))
const (
	basePace = 0.6
	growth   = 3.5
)

const maxSeconds = math.MaxInt64 / int64(time.Second)

// MaxDuration is the largest duration Duration and Add will report.
const MaxDuration = time.Duration(maxSeconds) * time.Second

// Duration estimates the time needed to walk distanceMeters horizontally
// while climbing deltaElevation meters (negative for descent). Larger
// adjustments model slower terrain. The result is whole seconds, rounded
// half to even. A non-positive distance costs nothing.
func Duration(deltaElevation, distanceMeters, adjustment float64) time.Duration {
	if !(distanceMeters > 0) {
		return 0
	}

	secondsPerMeter := basePace * math.Exp(growth*(deltaElevation/distanceMeters+adjustment))
	seconds := math.RoundToEven(secondsPerMeter * distanceMeters)

	switch {
	case math.IsNaN(seconds) || seconds <= 0:
		return 0
	case seconds >= float64(maxSeconds):
		return MaxDuration
	}
	return time.Duration(seconds) * time.Second
}

// Add sums two non-negative estimates, saturating at MaxDuration.
func Add(a, b time.Duration) time.Duration {
	if a < 0 {
		a = 0
	}
	if b < 0 {
		b = 0
	}
	if a >= MaxDuration || b >= MaxDuration-a {
		return MaxDuration
	}
	return a + b
}

// ValidateAdjustment rejects adjustments outside the accepted domain.
func ValidateAdjustment(adjustment float64) error {
	if math.IsNaN(adjustment) || math.IsInf(adjustment, 0) || adjustment < 0 {
		return fmt.Errorf("%w: %v (must be a finite number >= 0)", ErrInvalidAdjustment, adjustment)
	}
	return nil
}

// ParseAdjustment parses a free-form adjustment value.
func ParseAdjustment(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAdjustment, s)
	}
	if err := ValidateAdjustment(v); err != nil {
		return 0, err
	}
	return v, nil
}
