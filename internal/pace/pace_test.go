package pace

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// formulaSeconds restates the model so tests check the formula, not literals.
func formulaSeconds(delta, distance, adjustment float64) time.Duration {
	s := 0.6 * math.Exp(3.5*(delta/distance+adjustment)) * distance
	return time.Duration(math.RoundToEven(s)) * time.Second
}

func TestDurationMatchesFormula(t *testing.T) {
	cases := []struct {
		name                         string
		delta, distance, adjustment float64
	}{
		{"flat path", 0, 1000, 0.08},
		{"climb", 100, 1000, 0.08},
		{"descent", -50, 1000, 0.08},
		{"steep alpine", 300, 800, 0.28},
		{"short step", 1.5, 12.3, 0.05},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Duration(tc.delta, tc.distance, tc.adjustment)
			assert.Equal(t, formulaSeconds(tc.delta, tc.distance, tc.adjustment), got)
		})
	}
}

func TestDurationFlatKilometer(t *testing.T) {
	// 600 s/km at zero adjustment on flat ground
	assert.Equal(t, 600*time.Second, Duration(0, 1000, 0))
}

func TestDurationZeroDistance(t *testing.T) {
	for _, delta := range []float64{-100, 0, 0.5, 100} {
		for _, adj := range []float64{0, 0.08, 0.28, 3} {
			assert.Zero(t, Duration(delta, 0, adj), "delta=%v adj=%v", delta, adj)
		}
	}
}

func TestDurationNonNegative(t *testing.T) {
	for _, delta := range []float64{-5000, -300, -1, 0, 1, 300, 2000} {
		for _, distance := range []float64{0, 0.1, 1, 100, 1000, 25000} {
			for _, adj := range []float64{0, 0.05, 0.175, 1} {
				got := Duration(delta, distance, adj)
				assert.GreaterOrEqual(t, got, time.Duration(0), "delta=%v distance=%v adj=%v", delta, distance, adj)
				assert.Zero(t, got%time.Second, "duration must be whole seconds")
			}
		}
	}
}

func TestDurationMonotonicInAdjustment(t *testing.T) {
	for _, delta := range []float64{-100, 0, 150} {
		prev := Duration(delta, 1000, 0)
		for adj := 0.05; adj <= 1.0; adj += 0.05 {
			got := Duration(delta, 1000, adj)
			assert.Greater(t, got, prev, "delta=%v adj=%v", delta, adj)
			prev = got
		}
	}
}

func TestDurationMonotonicInAscent(t *testing.T) {
	for _, adj := range []float64{0, 0.08, 0.28} {
		prev := Duration(-400, 1000, adj)
		for delta := -350.0; delta <= 400; delta += 50 {
			got := Duration(delta, 1000, adj)
			assert.Greater(t, got, prev, "delta=%v adj=%v", delta, adj)
			prev = got
		}
	}
}

func TestDurationSaturates(t *testing.T) {
	got := Duration(1e6, 1, 0)
	assert.Equal(t, time.Duration(maxSeconds)*time.Second, got)
}

func TestAddSaturates(t *testing.T) {
	assert.Equal(t, 3*time.Second, Add(time.Second, 2*time.Second))
	assert.Equal(t, MaxDuration, Add(MaxDuration, MaxDuration))
	assert.Equal(t, MaxDuration, Add(MaxDuration-time.Second, 2*time.Second))
	assert.Equal(t, MaxDuration, Add(MaxDuration-time.Second, time.Second))
	assert.Equal(t, time.Second, Add(-time.Hour, time.Second))
}

func TestValidateAdjustment(t *testing.T) {
	require.NoError(t, ValidateAdjustment(0))
	require.NoError(t, ValidateAdjustment(0.175))

	for _, bad := range []float64{-0.01, math.NaN(), math.Inf(1)} {
		err := ValidateAdjustment(bad)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidAdjustment))
	}
}

func TestParseAdjustment(t *testing.T) {
	v, err := ParseAdjustment("0.16")
	require.NoError(t, err)
	assert.Equal(t, 0.16, v)

	_, err = ParseAdjustment("steep")
	assert.ErrorIs(t, err, ErrInvalidAdjustment)

	_, err = ParseAdjustment("-1")
	assert.ErrorIs(t, err, ErrInvalidAdjustment)
}
