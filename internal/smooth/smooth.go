// Package smooth reduces barometric noise in track elevations before analysis.
package smooth

import (
	"sort"

	"github.com/planbiir/hiketime/internal/track"
)

// Elevation applies a median filter of the given window to every segment of
// t, in place. Points without elevation are left alone and do not take part
// in their neighbours' windows. Windows below 3 disable smoothing.
func Elevation(t *track.Track, windowSize int) {
	if windowSize < 3 {
		return
	}

	// Ensure window size is odd
	if windowSize%2 == 0 {
		windowSize++
	}

	for s := range t.Segments {
		smoothSegment(t.Segments[s].Points, windowSize)
	}
}

func smoothSegment(points []track.Waypoint, windowSize int) {
	var idx []int
	var elevations []float64
	for i, p := range points {
		if p.HasElevation() {
			idx = append(idx, i)
			elevations = append(elevations, *p.Elevation)
		}
	}
	if len(elevations) < 3 {
		return
	}

	half := windowSize / 2
	smoothed := make([]float64, len(elevations))
	window := make([]float64, 0, windowSize)

	for i := range elevations {
		start := max(0, i-half)
		end := min(len(elevations), i+half+1)

		window = append(window[:0], elevations[start:end]...)
		smoothed[i] = medianFloat(window)
	}

	for k, i := range idx {
		points[i].Elevation = track.Ele(smoothed[k])
	}
}

// medianFloat sorts values in place.
func medianFloat(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}

	sort.Float64s(values)

	if len(values)%2 == 0 {
		return (values[len(values)/2-1] + values[len(values)/2]) / 2
	}
	return values[len(values)/2]
}
