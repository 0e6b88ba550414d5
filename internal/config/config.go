// Package config loads defaults for the hiketime command from the
// environment and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/planbiir/hiketime/internal/geodesic"
	"github.com/planbiir/hiketime/internal/pace"
	"github.com/planbiir/hiketime/internal/splits"
)

// Config holds user-level defaults. Command-line flags override these.
type Config struct {
	Terrain          string  `mapstructure:"TERRAIN"`
	ManualAdjustment float64 `mapstructure:"ADJUSTMENT"`
	SplitLength      int     `mapstructure:"SPLIT_LENGTH"`
	Algorithm        string  `mapstructure:"ALGORITHM"`
	Use3D            bool    `mapstructure:"DISTANCE_3D"`
	SmoothWindow     int     `mapstructure:"SMOOTH_WINDOW"`
	LogLevel         string  `mapstructure:"LOG_LEVEL"`
	DocumentsDir     string  `mapstructure:"DOCUMENTS_DIR"`
}

// Load reads HIKETIME_* environment variables and, if present, a
// hiketime.yaml from the working directory or ~/.config/hiketime.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HIKETIME")
	v.AutomaticEnv()

	v.SetDefault("TERRAIN", pace.Path.String())
	v.SetDefault("ADJUSTMENT", pace.DefaultManualAdjustment)
	v.SetDefault("SPLIT_LENGTH", splits.DefaultLength)
	v.SetDefault("ALGORITHM", geodesic.AlgorithmVincenty.String())
	v.SetDefault("DISTANCE_3D", false)
	v.SetDefault("SMOOTH_WINDOW", 0)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DOCUMENTS_DIR", defaultDocumentsDir())

	v.SetConfigName("hiketime")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "hiketime"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects values the analysis would refuse later.
func (c Config) Validate() error {
	if _, err := pace.ParseTerrain(c.Terrain); err != nil {
		return err
	}
	if err := pace.ValidateAdjustment(c.ManualAdjustment); err != nil {
		return err
	}
	if err := splits.ValidateLength(c.SplitLength); err != nil {
		return err
	}
	if _, err := geodesic.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if c.SmoothWindow < 0 {
		return fmt.Errorf("smooth window must be >= 0, got %d", c.SmoothWindow)
	}
	return nil
}

func defaultDocumentsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Documents")
}
