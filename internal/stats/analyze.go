// Package stats computes distance, elevation and estimated walking time for
// GPS tracks.
package stats

import (
	"errors"
	"math"
	"time"

	"github.com/hashicorp/go-hclog"
	gstat "gonum.org/v1/gonum/stat"

	"github.com/planbiir/hiketime/internal/geodesic"
	"github.com/planbiir/hiketime/internal/pace"
	"github.com/planbiir/hiketime/internal/track"
)

// Analyze walks every consecutive point pair of t and accumulates
// PathStatistics. With opts.RewriteTimes set, waypoint times in t are
// overwritten. The only error is an invalid adjustment; per-pair distance
// failures end up in PathStatistics.Skipped.
func Analyze(t *track.Track, opts Options) (PathStatistics, error) {
	if err := pace.ValidateAdjustment(opts.Adjustment); err != nil {
		return PathStatistics{}, err
	}

	distance := opts.Distance
	if distance == nil {
		distance = geodesic.Vincenty
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	start := opts.Start
	if start.IsZero() {
		start = time.Now().UTC()
	}

	var (
		st        PathStatistics
		minHeight = math.Inf(1)
		maxHeight = math.Inf(-1)
		heights   []float64
	)

	st.Segments = len(t.Segments)
	logger.Debug("analyzing track", "name", t.DisplayName(), "segments", st.Segments)

	for s := range t.Segments {
		points := t.Segments[s].Points
		st.Points += len(points)
		logger.Debug("segment", "index", s, "points", len(points))

		for i := 1; i < len(points); i++ {
			a, b := points[i-1], points[i]

			km, err := distance(a, b)
			if err == nil && (math.IsNaN(km) || km < 0) {
				err = errors.New("distance is not a non-negative number")
			}
			if err != nil {
				gerr := &geodesic.GeometryError{Segment: s, From: i - 1, To: i, Err: err}
				st.Skipped = append(st.Skipped, gerr)
				logger.Warn("skipping point pair", "segment", s, "from", i-1, "to", i, "error", err)
				continue
			}

			delta := 0.0
			if a.HasElevation() && b.HasElevation() {
				next := *b.Elevation
				delta = next - *a.Elevation
				if delta > 0 {
					st.AscentM += delta
				} else {
					st.DescentM -= delta
				}
				maxHeight = math.Max(maxHeight, next)
				minHeight = math.Min(minHeight, next)
				st.AverageAltitude = (st.AverageAltitude + next) / 2
				heights = append(heights, next)
			}

			if opts.RewriteTimes {
				points[i-1].Time = start.Add(st.Duration)
			}

			st.Duration = pace.Add(st.Duration, pace.Duration(delta, km*1000, opts.Adjustment))
			st.DistanceKm += km
		}
	}

	if len(heights) > 0 {
		st.MinAltitude = Altitude{Meters: minHeight, Valid: true}
		st.MaxAltitude = Altitude{Meters: maxHeight, Valid: true}
		st.MeanAltitude = Altitude{Meters: gstat.Mean(heights, nil), Valid: true}
	}

	logger.Debug("analysis complete",
		"distance_km", st.DistanceKm, "duration", st.Duration, "skipped", len(st.Skipped))

	return st, nil
}
