package pace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerrainPresets(t *testing.T) {
	want := map[string]float64{
		"road":   0.05,
		"path":   0.08,
		"track":  0.175,
		"alpine": 0.28,
	}

	for name, adjustment := range want {
		terrain, err := ParseTerrain(name)
		require.NoError(t, err)

		got, ok := terrain.Adjustment()
		require.True(t, ok, name)
		assert.Equal(t, adjustment, got, name)
		assert.Equal(t, name, terrain.String())
	}
}

func TestManualTerrain(t *testing.T) {
	terrain, err := ParseTerrain(" Manual ")
	require.NoError(t, err)
	assert.Equal(t, Manual, terrain)

	_, ok := terrain.Adjustment()
	assert.False(t, ok)

	adjustment, err := Resolve(terrain, 0.42)
	require.NoError(t, err)
	assert.Equal(t, 0.42, adjustment)

	_, err = Resolve(terrain, -1)
	assert.ErrorIs(t, err, ErrInvalidAdjustment)
}

func TestResolveIgnoresManualForPresets(t *testing.T) {
	adjustment, err := Resolve(Alpine, 9)
	require.NoError(t, err)
	assert.Equal(t, 0.28, adjustment)
}

func TestParseTerrainUnknown(t *testing.T) {
	_, err := ParseTerrain("glacier")
	assert.ErrorIs(t, err, ErrInvalidAdjustment)
}

func TestTerrainsMenuOrder(t *testing.T) {
	var names []string
	for _, terrain := range Terrains() {
		names = append(names, terrain.String())
	}
	assert.Equal(t, []string{"road", "path", "track", "alpine", "manual"}, names)
	assert.Equal(t, "Terrain(9)", Terrain(9).String())
}
