package stats

import (
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/planbiir/hiketime/internal/geodesic"
)

// Altitude is an optional elevation figure. Valid is false when the track
// carried no usable elevation data.
type Altitude struct {
	Meters float64 `json:"meters"`
	Valid  bool    `json:"valid"`
}

// PathStatistics summarises one analysis run.
type PathStatistics struct {
	DistanceKm float64       `json:"distance_km"`
	AscentM    float64       `json:"ascent_m"`
	DescentM   float64       `json:"descent_m"`
	Duration   time.Duration `json:"duration_ns"`

	MinAltitude Altitude `json:"min_altitude"`
	MaxAltitude Altitude `json:"max_altitude"`

	// AverageAltitude is the running (avg + next) / 2 recurrence, seeded at 0.
	// Kept for compatibility with earlier reports; see MeanAltitude for the
	// arithmetic mean over the same points.
	AverageAltitude float64  `json:"average_altitude_m"`
	MeanAltitude    Altitude `json:"mean_altitude"`

	Segments int `json:"segments"`
	Points   int `json:"points"`

	// Skipped lists point pairs excluded because their distance could not
	// be computed. It is the only way to tell a skipped pair from one
	// without elevation.
	Skipped []*geodesic.GeometryError `json:"skipped,omitempty"`
}

// Options holds analysis parameters
type Options struct {
	// Adjustment is the terrain difficulty fed into the pace model.
	Adjustment float64

	// RewriteTimes assigns each measured pair's earlier point the time
	// Start + cumulative duration.
	RewriteTimes bool

	// Start is the reference instant for rewritten times (default: now, UTC).
	Start time.Time

	// Distance computes pair distances in km (default: geodesic.Vincenty).
	Distance geodesic.Func

	Logger hclog.Logger
}
