package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"

	"github.com/planbiir/hiketime/internal/config"
	"github.com/planbiir/hiketime/internal/pace"
	"github.com/planbiir/hiketime/internal/wizard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	var (
		inputFile    = flag.String("i", "", "Input GPX file")
		splitsFile   = flag.String("splits", "", "Input JSON splits file")
		outputFile   = flag.String("o", "", "Output GPX file for rewritten times (default: <input>_timed.gpx)")
		terrain      = flag.String("terrain", cfg.Terrain, "Terrain preset: road, path, track, alpine or manual")
		adjust       = flag.String("adjust", "", "Speed adjustment, bigger == slower (overrides -terrain)")
		trackIndex   = flag.Int("track", -1, "Track index (0-based) when the file holds several tracks")
		rewriteTimes = flag.Bool("rewrite-times", false, "Write estimated times to the GPX points")
		splitLength  = flag.Int("split-length", cfg.SplitLength, "Split length in meters")
		algorithm    = flag.String("algorithm", cfg.Algorithm, "Distance algorithm: vincenty or haversine")
		use3D        = flag.Bool("3d", cfg.Use3D, "Include elevation change in point distances")
		smoothWindow = flag.Int("smooth", cfg.SmoothWindow, "Median filter window for elevation (0 = off)")
		statsJSON    = flag.Bool("json", false, "Output statistics as JSON")
		verbose      = flag.Bool("verbose", false, "Enable debug logging")
		version      = flag.Bool("version", false, "Show version information")
	)

	flag.Usage = func() {
		fmt.Printf("hiketime - Hiking time calculator\n\n")
		fmt.Printf("usage: hiketime -i /path/to/file.gpx\n")
		fmt.Printf("       hiketime -splits /path/to/splits.json\n")
		fmt.Printf("       hiketime   (interactive)\n\n")
		fmt.Printf("examples:\n")
		fmt.Printf("  hiketime -i track.gpx -terrain alpine\n")
		fmt.Printf("  hiketime -i track.gpx -adjust 0.2 -rewrite-times -o timed.gpx\n")
		fmt.Printf("  hiketime -splits splits.json -split-length 500\n\n")
		fmt.Printf("options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Println("hiketime v1.0.0 - Hiking time calculator")
		os.Exit(0)
	}

	level := hclog.LevelFromString(cfg.LogLevel)
	if *verbose {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "hiketime",
		Level:  level,
		Output: os.Stderr,
	})

	opts := options{
		Input:        *inputFile,
		Splits:       *splitsFile,
		Output:       *outputFile,
		TrackIndex:   *trackIndex,
		RewriteTimes: *rewriteTimes,
		SplitLength:  *splitLength,
		Algorithm:    *algorithm,
		Use3D:        *use3D,
		SmoothWindow: *smoothWindow,
		JSON:         *statsJSON,
	}
	if opts.JSON {
		opts.Status = os.Stderr
	}

	fmt.Fprintln(opts.status(os.Stdout), "Mountain snail - Hiking time calculator.")

	if opts.Input == "" && opts.Splits == "" {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			flag.Usage()
			os.Exit(2)
		}
		opts, err = interactive(opts, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		opts.Adjustment, err = resolveAdjustment(*terrain, *adjust, cfg.ManualAdjustment)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := run(opts, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveAdjustment prefers an explicit -adjust value over the terrain preset.
func resolveAdjustment(terrainName, adjust string, manual float64) (float64, error) {
	if adjust != "" {
		return pace.ParseAdjustment(adjust)
	}
	terrain, err := pace.ParseTerrain(terrainName)
	if err != nil {
		return 0, err
	}
	return pace.Resolve(terrain, manual)
}

// interactive fills in opts by asking the user.
func interactive(opts options, cfg config.Config, logger hclog.Logger) (options, error) {
	w := &wizard.Wizard{
		Prompt:       wizard.Terminal{},
		DocumentsDir: cfg.DocumentsDir,
		Logger:       logger,
	}

	src, err := w.Source()
	if err != nil {
		return opts, err
	}

	defaultTerrain, err := pace.ParseTerrain(cfg.Terrain)
	if err != nil {
		return opts, err
	}
	if opts.Adjustment, err = w.Adjustment(defaultTerrain, cfg.ManualAdjustment); err != nil {
		return opts, err
	}

	if src.Kind == wizard.KindSplits {
		opts.Splits = src.Path
		opts.SplitLength, err = w.SplitLength(opts.SplitLength)
		return opts, err
	}

	opts.Input = src.Path
	opts.Ask = w
	return opts, nil
}
