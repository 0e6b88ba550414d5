package track

import "time"

// Waypoint is a single track point. Elevation is nil when the source carries
// no altitude; a zero Time means no timestamp.
type Waypoint struct {
	Lat       float64
	Lon       float64
	Elevation *float64
	Time      time.Time
}

// HasElevation reports whether the point carries an altitude.
func (w Waypoint) HasElevation() bool {
	return w.Elevation != nil
}

// Segment is an ordered run of waypoints. Order defines walking direction.
type Segment struct {
	Points []Waypoint
}

// Track represents a named sequence of segments
type Track struct {
	Name     string
	Segments []Segment
}

// DisplayName returns the track name, or "Default" for unnamed tracks.
func (t Track) DisplayName() string {
	if t.Name == "" {
		return "Default"
	}
	return t.Name
}

// PointCount returns the number of waypoints across all segments.
func (t Track) PointCount() int {
	n := 0
	for _, seg := range t.Segments {
		n += len(seg.Points)
	}
	return n
}

// Ele is a convenience for building waypoints with an elevation.
func Ele(v float64) *float64 {
	return &v
}
