// Package splits estimates walking time for a path described only by the
// ascent and descent of fixed-length pieces.
package splits

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/planbiir/hiketime/internal/pace"
)

// ErrInvalidLength is returned for split lengths that are not positive.
var ErrInvalidLength = errors.New("invalid split length")

// DefaultLength is the nominal split length in meters.
const DefaultLength = 1000

// Split is the ascent and descent in meters over one split.
// In JSON it is a two-element array: [ascent, descent].
type Split struct {
	Ascent  int
	Descent int
}

// Delta is the signed net elevation change.
func (s Split) Delta() int {
	return s.Ascent - s.Descent
}

func (s Split) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{s.Ascent, s.Descent})
}

func (s *Split) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("split must be [ascent, descent], got %d values", len(pair))
	}
	s.Ascent, s.Descent = pair[0], pair[1]
	return nil
}

// Entry is one line of the split timetable.
type Entry struct {
	Index      int           `json:"index"`
	Duration   time.Duration `json:"duration_ns"`
	Cumulative time.Duration `json:"cumulative_ns"`
}

// Summary describes the whole split list.
type Summary struct {
	Count      int           `json:"count"`
	DistanceKm float64       `json:"distance_km"`
	AscentM    int           `json:"ascent_m"`
	DescentM   int           `json:"descent_m"`
	Duration   time.Duration `json:"duration_ns"`
}

// ValidateLength rejects non-positive split lengths.
func ValidateLength(length int) error {
	if length <= 0 {
		return fmt.Errorf("%w: %d (must be > 0 meters)", ErrInvalidLength, length)
	}
	return nil
}

// ParseLength parses a split length in whole meters.
func ParseLength(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidLength, s)
	}
	if err := ValidateLength(n); err != nil {
		return 0, err
	}
	return n, nil
}

// Estimate returns one entry per split, in order, with the running total.
func Estimate(splits []Split, length int, adjustment float64) ([]Entry, error) {
	if err := ValidateLength(length); err != nil {
		return nil, err
	}
	if err := pace.ValidateAdjustment(adjustment); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(splits))
	var total time.Duration
	for i, s := range splits {
		d := pace.Duration(float64(s.Delta()), float64(length), adjustment)
		total = pace.Add(total, d)
		entries = append(entries, Entry{Index: i, Duration: d, Cumulative: total})
	}
	return entries, nil
}

// Summarize totals distance, ascent, descent and estimated time.
func Summarize(splits []Split, length int, adjustment float64) (Summary, error) {
	entries, err := Estimate(splits, length, adjustment)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		Count:      len(splits),
		DistanceKm: float64(len(splits)*length) / 1000,
	}
	for _, s := range splits {
		sum.AscentM += s.Ascent
		sum.DescentM += s.Descent
	}
	if n := len(entries); n > 0 {
		sum.Duration = entries[n-1].Cumulative
	}
	return sum, nil
}
