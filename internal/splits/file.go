package splits

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrParse marks a malformed splits document.
var ErrParse = errors.New("failed to parse splits")

type document struct {
	Splits []Split `json:"splits"`
}

// Load reads a splits file: {"splits": [[ascent, descent], ...]}
func Load(filename string) ([]Split, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Decode(file)
}

// Decode parses a splits document from r.
func Decode(r io.Reader) ([]Split, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if doc.Splits == nil {
		return nil, fmt.Errorf("%w: missing \"splits\" array", ErrParse)
	}
	return doc.Splits, nil
}
