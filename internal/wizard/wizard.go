// Package wizard walks the user through choosing an input file, terrain and
// options. Only resolved values leave this package.
package wizard

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/planbiir/hiketime/internal/browse"
	"github.com/planbiir/hiketime/internal/pace"
	"github.com/planbiir/hiketime/internal/splits"
)

// Prompter asks the user one question at a time.
type Prompter interface {
	Select(label string, items []string, cursor int) (int, error)
	Input(label, initial string, validate func(string) error) (string, error)
	Confirm(label string) (bool, error)
}

// Kind is the type of input file.
type Kind int

const (
	KindGPX Kind = iota
	KindSplits
)

// Source is the file chosen for analysis.
type Source struct {
	Kind Kind
	Path string
}

const otherFile = "Other file..."

// Wizard holds the prompter and the defaults offered to the user.
type Wizard struct {
	Prompt       Prompter
	DocumentsDir string
	Logger       hclog.Logger
}

func (w *Wizard) logger() hclog.Logger {
	if w.Logger == nil {
		return hclog.NewNullLogger()
	}
	return w.Logger
}

// Source asks for the input type and file. GPX files are offered from the
// documents directory first; the user can always type a path instead.
func (w *Wizard) Source() (Source, error) {
	choice, err := w.Prompt.Select("Type", []string{"GPX", "JSON splits"}, 0)
	if err != nil {
		return Source{}, err
	}

	if choice == 0 {
		if path, ok, err := w.pickGPX(); err != nil || ok {
			return Source{Kind: KindGPX, Path: path}, err
		}
		path, err := w.Prompt.Input("GPX file path", "", fileExists)
		return Source{Kind: KindGPX, Path: path}, err
	}

	path, err := w.Prompt.Input("Splits file path", "./splits.json", fileExists)
	return Source{Kind: KindSplits, Path: path}, err
}

func (w *Wizard) pickGPX() (string, bool, error) {
	if w.DocumentsDir == "" {
		return "", false, nil
	}

	files, err := browse.GPXFiles(w.DocumentsDir)
	if err != nil {
		w.logger().Debug("cannot list GPX files", "dir", w.DocumentsDir, "error", err)
		return "", false, nil
	}
	if len(files) == 0 {
		return "", false, nil
	}

	choice, err := w.Prompt.Select("Choose file", append(files, otherFile), 0)
	if err != nil {
		return "", false, err
	}
	if choice >= len(files) {
		return "", false, nil
	}
	return files[choice], true, nil
}

// Adjustment asks for the terrain and, for manual terrain, a free value.
func (w *Wizard) Adjustment(defaultTerrain pace.Terrain, defaultManual float64) (float64, error) {
	terrains := pace.Terrains()
	names := make([]string, len(terrains))
	for i, t := range terrains {
		names[i] = t.String()
	}

	choice, err := w.Prompt.Select("Terrain", names, int(defaultTerrain))
	if err != nil {
		return 0, err
	}

	terrain := terrains[choice]
	if adjustment, ok := terrain.Adjustment(); ok {
		return adjustment, nil
	}

	input, err := w.Prompt.Input("Walking speed adjustment (bigger == slower)",
		fmt.Sprint(defaultManual), func(s string) error {
			_, err := pace.ParseAdjustment(s)
			return err
		})
	if err != nil {
		return 0, err
	}
	return pace.ParseAdjustment(input)
}

// TrackIndex picks one of several tracks. A file with one track needs no
// question.
func (w *Wizard) TrackIndex(names []string) (int, error) {
	if len(names) <= 1 {
		return 0, nil
	}

	items := make([]string, len(names))
	for i, n := range names {
		if n == "" {
			n = fmt.Sprintf("Track %d", i+1)
		}
		items[i] = n
	}
	return w.Prompt.Select("Select GPX track", items, 0)
}

// RewriteTimes asks whether estimated times should be written to the points.
func (w *Wizard) RewriteTimes() (bool, error) {
	return w.Prompt.Confirm("Add time to GPX points")
}

// SplitLength asks for the nominal split length in meters.
func (w *Wizard) SplitLength(defaultLength int) (int, error) {
	input, err := w.Prompt.Input("Splits (meters)", fmt.Sprint(defaultLength), func(s string) error {
		_, err := splits.ParseLength(s)
		return err
	})
	if err != nil {
		return 0, err
	}
	return splits.ParseLength(input)
}

func fileExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path doesn't exist")
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory")
	}
	return nil
}
