package track

import "testing"

func TestDisplayName(t *testing.T) {
	if got := (Track{}).DisplayName(); got != "Default" {
		t.Errorf("Expected Default for unnamed track, got %q", got)
	}
	if got := (Track{Name: "Tour du Mont Blanc"}).DisplayName(); got != "Tour du Mont Blanc" {
		t.Errorf("Expected track name, got %q", got)
	}
}

func TestPointCount(t *testing.T) {
	tr := Track{
		Segments: []Segment{
			{Points: []Waypoint{{Lat: 46.0, Lon: 7.0}, {Lat: 46.001, Lon: 7.001}}},
			{Points: []Waypoint{{Lat: 46.002, Lon: 7.002, Elevation: Ele(1000)}}},
		},
	}

	if got := tr.PointCount(); got != 3 {
		t.Errorf("Expected 3 points, got %d", got)
	}

	if tr.Segments[0].Points[0].HasElevation() {
		t.Errorf("Expected first point without elevation")
	}
	if !tr.Segments[1].Points[0].HasElevation() {
		t.Errorf("Expected last point with elevation")
	}
}
