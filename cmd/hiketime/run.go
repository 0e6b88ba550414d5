package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"

	"github.com/planbiir/hiketime/internal/geodesic"
	"github.com/planbiir/hiketime/internal/gpx"
	"github.com/planbiir/hiketime/internal/report"
	"github.com/planbiir/hiketime/internal/smooth"
	"github.com/planbiir/hiketime/internal/splits"
	"github.com/planbiir/hiketime/internal/stats"
)

// asker answers the GPX questions that depend on the file's content.
type asker interface {
	TrackIndex(names []string) (int, error)
	RewriteTimes() (bool, error)
}

type options struct {
	Input        string
	Splits       string
	Output       string
	TrackIndex   int
	RewriteTimes bool
	Adjustment   float64
	SplitLength  int
	Algorithm    string
	Use3D        bool
	SmoothWindow int
	JSON         bool

	// Status receives progress lines. When nil they go to the result
	// writer, or nowhere in JSON mode so the result stays parseable.
	Status io.Writer

	// Ask is set in interactive mode.
	Ask asker
}

func (o options) status(out io.Writer) io.Writer {
	switch {
	case o.Status != nil:
		return o.Status
	case o.JSON:
		return io.Discard
	}
	return out
}

func run(opts options, out io.Writer, logger hclog.Logger) error {
	if opts.Splits != "" {
		return runSplits(opts, out)
	}
	return runGPX(opts, out, logger)
}

func runGPX(opts options, out io.Writer, logger hclog.Logger) error {
	algorithm, err := geodesic.ParseAlgorithm(opts.Algorithm)
	if err != nil {
		return err
	}
	status := opts.status(out)

	fmt.Fprintf(status, "📖 Reading GPX file: %s\n", opts.Input)
	file, err := gpx.Parse(opts.Input)
	if err != nil {
		return err
	}
	fmt.Fprintf(status, "GPX file has %s track(s), %s route(s).\n",
		color.New(color.Bold).Sprint(file.TrackCount()), color.New(color.Bold).Sprint(file.RouteCount()))

	index := opts.TrackIndex
	if index < 0 {
		index = 0
		if opts.Ask != nil {
			if index, err = opts.Ask.TrackIndex(file.TrackNames()); err != nil {
				return err
			}
		}
	}

	trk, err := file.Track(index)
	if err != nil {
		return err
	}
	report.ChosenTrack(status, trk.DisplayName(), index)

	rewrite := opts.RewriteTimes
	if opts.Ask != nil && !rewrite {
		if rewrite, err = opts.Ask.RewriteTimes(); err != nil {
			return err
		}
	}

	smooth.Elevation(&trk, opts.SmoothWindow)

	fmt.Fprintf(status, "  %d segments found, %d points.\n", len(trk.Segments), trk.PointCount())
	st, err := stats.Analyze(&trk, stats.Options{
		Adjustment:   opts.Adjustment,
		RewriteTimes: rewrite,
		Distance:     geodesic.New(geodesic.Options{Algorithm: algorithm, Use3D: opts.Use3D}),
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	if opts.JSON {
		if err := report.JSON(out, st); err != nil {
			return err
		}
	} else {
		report.Track(out, st)
	}

	if !rewrite {
		return nil
	}

	output := opts.Output
	if output == "" {
		ext := filepath.Ext(opts.Input)
		output = strings.TrimSuffix(opts.Input, ext) + "_timed" + ext
	}
	if err := file.ApplyTimes(index, trk); err != nil {
		return err
	}
	fmt.Fprintf(status, "💾 Writing timed track: %s\n", output)
	return file.Write(output)
}

func runSplits(opts options, out io.Writer) error {
	if err := splits.ValidateLength(opts.SplitLength); err != nil {
		return err
	}

	list, err := splits.Load(opts.Splits)
	if err != nil {
		return err
	}

	entries, err := splits.Estimate(list, opts.SplitLength, opts.Adjustment)
	if err != nil {
		return err
	}
	sum, err := splits.Summarize(list, opts.SplitLength, opts.Adjustment)
	if err != nil {
		return err
	}

	if opts.JSON {
		return report.JSON(out, struct {
			Summary splits.Summary `json:"summary"`
			Splits  []splits.Entry `json:"splits"`
		}{sum, entries})
	}
	report.Splits(out, entries, sum)
	return nil
}
