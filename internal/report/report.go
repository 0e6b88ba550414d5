// Package report renders analysis results for the terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/planbiir/hiketime/internal/splits"
	"github.com/planbiir/hiketime/internal/stats"
)

var (
	bold  = color.New(color.Bold).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	blue  = color.New(color.FgBlue).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
)

// ChosenTrack prints which track of a file is being analyzed (1-based).
func ChosenTrack(w io.Writer, name string, index int) {
	fmt.Fprintf(w, "%s %s %s\n", bold("Chosen track:"), dim("·"),
		green(fmt.Sprintf("%q (track n°%d)", name, index+1)))
}

// Track prints path statistics.
func Track(w io.Writer, st stats.PathStatistics) {
	for _, skipped := range st.Skipped {
		fmt.Fprintf(w, "  %s\n", red(skipped.Error()))
	}

	fmt.Fprintf(w, "  %s\n", bold("Track info:"))
	fmt.Fprintf(w, "    %s %s m D+ %s m D-\n", blue(">"), meters(st.AscentM), meters(st.DescentM))
	fmt.Fprintf(w, "    %s %s km\n", blue(">"), kilometers(st.DistanceKm))
	if st.MinAltitude.Valid {
		fmt.Fprintf(w, "    %s Range: %s m - %s m\n", blue(">"), meters(st.MinAltitude.Meters), meters(st.MaxAltitude.Meters))
	} else {
		fmt.Fprintf(w, "    %s Range: no elevation data\n", blue(">"))
	}
	fmt.Fprintf(w, "    %s Time: %s\n", blue(">"), FormatDuration(st.Duration))
	if st.MeanAltitude.Valid {
		fmt.Fprintf(w, "    %s Average altitude: %s m (mean %s m)\n", blue(">"),
			meters(st.AverageAltitude), meters(st.MeanAltitude.Meters))
	}
	if n := len(st.Skipped); n > 0 {
		fmt.Fprintf(w, "    %s %s\n", blue(">"), red(fmt.Sprintf("%d point pair(s) skipped", n)))
	}
}

// Splits prints the split timetable and totals.
func Splits(w io.Writer, entries []splits.Entry, sum splits.Summary) {
	fmt.Fprintf(w, "%s split(s) found.\nPath info: %s\n", bold(sum.Count),
		bold(fmt.Sprintf("%s km - %s m D+ - %s m D-",
			kilometers(sum.DistanceKm),
			humanize.Comma(int64(sum.AscentM)), humanize.Comma(int64(sum.DescentM)))))

	fmt.Fprintln(w, "Splits:")
	for _, e := range entries {
		fmt.Fprintf(w, "%s : %s -- %s\n",
			dim(fmt.Sprintf("[%d, %d]", e.Index, e.Index+1)),
			FormatDuration(e.Duration), FormatDuration(e.Cumulative))
	}

	fmt.Fprintf(w, "Total time: %s\n", bold(FormatDuration(sum.Duration.Truncate(time.Minute))))
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// FormatDuration renders whole seconds as e.g. "2h 05m 30s", dropping
// leading zero units.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int64(d / time.Hour)
	m := int64(d % time.Hour / time.Minute)
	s := int64(d % time.Minute / time.Second)

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

func kilometers(v float64) string {
	return humanize.CommafWithDigits(math.Round(v*100)/100, 2)
}

func meters(v float64) string {
	return humanize.Comma(int64(math.RoundToEven(v)))
}
