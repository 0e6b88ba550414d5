package gpx

import (
	"errors"
	"fmt"
	"io"
	"os"

	gogpx "github.com/tkrajina/gpxgo/gpx"

	"github.com/planbiir/hiketime/internal/track"
)

var (
	// ErrParse marks input that is not valid GPX.
	ErrParse = errors.New("failed to parse GPX")

	// ErrNoTracks is returned when a file holds no tracks to analyze.
	ErrNoTracks = errors.New("GPX file has no tracks")
)

// File is a decoded GPX document. It keeps the original document so that
// rewritten times can be written back without losing anything else.
type File struct {
	doc *gogpx.GPX
}

// Parse reads and parses a GPX file
func Parse(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return ParseReader(file)
}

// ParseReader parses GPX from an io.Reader
func ParseReader(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read GPX: %w", err)
	}

	doc, err := gogpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &File{doc: doc}, nil
}

// TrackCount returns the number of <trk> elements.
func (f *File) TrackCount() int {
	return len(f.doc.Tracks)
}

// RouteCount returns the number of <rte> elements. Routes are reported but
// not analyzed.
func (f *File) RouteCount() int {
	return len(f.doc.Routes)
}

// TrackNames returns track names in file order; unnamed tracks are "".
func (f *File) TrackNames() []string {
	names := make([]string, len(f.doc.Tracks))
	for i, trk := range f.doc.Tracks {
		names[i] = trk.Name
	}
	return names
}

// Track converts the track at index into the analysis model.
func (f *File) Track(index int) (track.Track, error) {
	if len(f.doc.Tracks) == 0 {
		return track.Track{}, ErrNoTracks
	}
	if index < 0 || index >= len(f.doc.Tracks) {
		return track.Track{}, fmt.Errorf("track index %d out of range (file has %d tracks)", index, len(f.doc.Tracks))
	}

	src := f.doc.Tracks[index]
	out := track.Track{
		Name:     src.Name,
		Segments: make([]track.Segment, len(src.Segments)),
	}
	for s, seg := range src.Segments {
		points := make([]track.Waypoint, len(seg.Points))
		for i, p := range seg.Points {
			points[i] = track.Waypoint{
				Lat:  p.Latitude,
				Lon:  p.Longitude,
				Time: p.Timestamp,
			}
			if p.Elevation.NotNull() {
				points[i].Elevation = track.Ele(p.Elevation.Value())
			}
		}
		out.Segments[s] = track.Segment{Points: points}
	}
	return out, nil
}

// ApplyTimes copies waypoint times from t back into the track at index.
// The track must have the shape returned by Track(index).
func (f *File) ApplyTimes(index int, t track.Track) error {
	if index < 0 || index >= len(f.doc.Tracks) {
		return fmt.Errorf("track index %d out of range (file has %d tracks)", index, len(f.doc.Tracks))
	}

	dst := f.doc.Tracks[index].Segments
	if len(dst) != len(t.Segments) {
		return fmt.Errorf("segment count mismatch: file has %d, track has %d", len(dst), len(t.Segments))
	}
	for s := range dst {
		if len(dst[s].Points) != len(t.Segments[s].Points) {
			return fmt.Errorf("segment %d point count mismatch", s)
		}
		for i := range dst[s].Points {
			dst[s].Points[i].Timestamp = t.Segments[s].Points[i].Time
		}
	}
	return nil
}

// Write saves the GPX document to a file
func (f *File) Write(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := f.WriteToWriter(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// WriteToWriter writes the GPX document to an io.Writer
func (f *File) WriteToWriter(w io.Writer) error {
	data, err := f.doc.ToXml(gogpx.ToXmlParams{Version: "1.1", Indent: true})
	if err != nil {
		return fmt.Errorf("failed to encode GPX: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write GPX: %w", err)
	}
	return nil
}
