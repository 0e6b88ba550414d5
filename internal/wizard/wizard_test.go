package wizard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planbiir/hiketime/internal/pace"
	"github.com/planbiir/hiketime/internal/splits"
)

// scripted answers questions in order and records what was asked.
type scripted struct {
	selects  []int
	inputs   []string
	confirms []bool

	labels []string
	items  [][]string
}

func (s *scripted) Select(label string, items []string, cursor int) (int, error) {
	s.labels = append(s.labels, label)
	s.items = append(s.items, items)
	if len(s.selects) == 0 {
		return 0, errors.New("unexpected select: " + label)
	}
	v := s.selects[0]
	s.selects = s.selects[1:]
	return v, nil
}

func (s *scripted) Input(label, initial string, validate func(string) error) (string, error) {
	s.labels = append(s.labels, label)
	if len(s.inputs) == 0 {
		return "", errors.New("unexpected input: " + label)
	}
	v := s.inputs[0]
	s.inputs = s.inputs[1:]
	if err := validate(v); err != nil {
		return "", err
	}
	return v, nil
}

func (s *scripted) Confirm(label string) (bool, error) {
	s.labels = append(s.labels, label)
	if len(s.confirms) == 0 {
		return false, errors.New("unexpected confirm: " + label)
	}
	v := s.confirms[0]
	s.confirms = s.confirms[1:]
	return v, nil
}

func writeFile(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestSourcePicksGPXFromDocuments(t *testing.T) {
	docs := t.TempDir()
	want := writeFile(t, filepath.Join(docs, "hikes", "tmb.gpx"))

	p := &scripted{selects: []int{0, 0}}
	w := &Wizard{Prompt: p, DocumentsDir: docs}

	src, err := w.Source()
	require.NoError(t, err)
	assert.Equal(t, Source{Kind: KindGPX, Path: want}, src)
	assert.Equal(t, []string{want, otherFile}, p.items[1])
}

func TestSourceFallsBackToPathInput(t *testing.T) {
	docs := t.TempDir()
	writeFile(t, filepath.Join(docs, "tmb.gpx"))
	elsewhere := writeFile(t, filepath.Join(t.TempDir(), "other.gpx"))

	p := &scripted{selects: []int{0, 1}, inputs: []string{elsewhere}}
	w := &Wizard{Prompt: p, DocumentsDir: docs}

	src, err := w.Source()
	require.NoError(t, err)
	assert.Equal(t, Source{Kind: KindGPX, Path: elsewhere}, src)
}

func TestSourceNoDocuments(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "a.gpx"))

	p := &scripted{selects: []int{0}, inputs: []string{path}}
	w := &Wizard{Prompt: p, DocumentsDir: filepath.Join(t.TempDir(), "missing")}

	src, err := w.Source()
	require.NoError(t, err)
	assert.Equal(t, path, src.Path)
	assert.Equal(t, []string{"Type", "GPX file path"}, p.labels)
}

func TestSourceSplits(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "splits.json"))

	p := &scripted{selects: []int{1}, inputs: []string{path}}
	src, err := (&Wizard{Prompt: p}).Source()
	require.NoError(t, err)
	assert.Equal(t, Source{Kind: KindSplits, Path: path}, src)
}

func TestSourceRejectsMissingPath(t *testing.T) {
	p := &scripted{selects: []int{1}, inputs: []string{"/definitely/not/here.json"}}
	_, err := (&Wizard{Prompt: p}).Source()
	assert.Error(t, err)
}

func TestAdjustmentPreset(t *testing.T) {
	p := &scripted{selects: []int{int(pace.Track)}}
	adj, err := (&Wizard{Prompt: p}).Adjustment(pace.Path, pace.DefaultManualAdjustment)
	require.NoError(t, err)
	assert.Equal(t, 0.175, adj)
	assert.Equal(t, []string{"road", "path", "track", "alpine", "manual"}, p.items[0])
}

func TestAdjustmentManual(t *testing.T) {
	p := &scripted{selects: []int{int(pace.Manual)}, inputs: []string{"0.2"}}
	adj, err := (&Wizard{Prompt: p}).Adjustment(pace.Path, pace.DefaultManualAdjustment)
	require.NoError(t, err)
	assert.Equal(t, 0.2, adj)

	p = &scripted{selects: []int{int(pace.Manual)}, inputs: []string{"fast"}}
	_, err = (&Wizard{Prompt: p}).Adjustment(pace.Path, pace.DefaultManualAdjustment)
	assert.ErrorIs(t, err, pace.ErrInvalidAdjustment)
}

func TestTrackIndex(t *testing.T) {
	p := &scripted{}
	idx, err := (&Wizard{Prompt: p}).TrackIndex([]string{"only"})
	require.NoError(t, err)
	assert.Zero(t, idx)
	assert.Empty(t, p.labels, "single track needs no question")

	p = &scripted{selects: []int{1}}
	idx, err = (&Wizard{Prompt: p}).TrackIndex([]string{"Day 1", ""})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, []string{"Day 1", "Track 2"}, p.items[0])
}

func TestRewriteTimes(t *testing.T) {
	p := &scripted{confirms: []bool{true}}
	ok, err := (&Wizard{Prompt: p}).RewriteTimes()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSplitLength(t *testing.T) {
	p := &scripted{inputs: []string{"500"}}
	n, err := (&Wizard{Prompt: p}).SplitLength(splits.DefaultLength)
	require.NoError(t, err)
	assert.Equal(t, 500, n)

	p = &scripted{inputs: []string{"0"}}
	_, err = (&Wizard{Prompt: p}).SplitLength(splits.DefaultLength)
	assert.ErrorIs(t, err, splits.ErrInvalidLength)
}
