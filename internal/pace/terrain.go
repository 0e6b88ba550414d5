package pace

import (
	"fmt"
	"strings"
)

// Terrain is a walking surface preset.
type Terrain int

const (
	Road Terrain = iota
	Path
	Track
	Alpine
	Manual
)

// DefaultManualAdjustment is offered when the user picks Manual.
const DefaultManualAdjustment = 0.16

var terrainNames = [...]string{"road", "path", "track", "alpine", "manual"}

var terrainAdjustments = map[Terrain]float64{
	Road:   0.05,
	Path:   0.08,
	Track:  0.175,
	Alpine: 0.28,
}

// Terrains lists every preset in menu order.
func Terrains() []Terrain {
	return []Terrain{Road, Path, Track, Alpine, Manual}
}

func (t Terrain) String() string {
	if t < Road || t > Manual {
		return fmt.Sprintf("Terrain(%d)", int(t))
	}
	return terrainNames[t]
}

// Adjustment returns the preset value. ok is false for Manual, which needs a
// free-form value instead.
func (t Terrain) Adjustment() (adjustment float64, ok bool) {
	adjustment, ok = terrainAdjustments[t]
	return adjustment, ok
}

// ParseTerrain maps a preset name (case-insensitive) to a Terrain.
func ParseTerrain(name string) (Terrain, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range terrainNames {
		if n == name {
			return Terrain(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown terrain %q (valid: %s)",
		ErrInvalidAdjustment, name, strings.Join(terrainNames[:], ", "))
}

// Resolve returns the adjustment for t, falling back to manual when t is
// Manual. The result is validated.
func Resolve(t Terrain, manual float64) (float64, error) {
	adjustment, ok := t.Adjustment()
	if !ok {
		adjustment = manual
	}
	if err := ValidateAdjustment(adjustment); err != nil {
		return 0, err
	}
	return adjustment, nil
}
