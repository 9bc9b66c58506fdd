// Package config loads process configuration: file paths for the metadata
// collaborators and optional routing-cut overrides. Loaded once per process;
// everything else in the engine is fixed seed data.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/paesdiag/internal/routing"
)

// Config is the resolved process configuration.
type Config struct {
	// DataDir is the root of the finalized exams tree (QTI + metadata),
	// consumed by the offline index builder.
	DataDir string

	// IndexPath is the question→atom index file location.
	IndexPath string

	// DBPath is the SQLite metadata database location. Empty means the
	// JSON index is used directly.
	DBPath string

	// Cuts overrides the routing cut table. Empty means defaults.
	Cuts []routing.CutRange
}

type cutSetting struct {
	Min  int    `mapstructure:"min"`
	Max  int    `mapstructure:"max"`
	Tier string `mapstructure:"tier"`
}

// Load reads configuration from an optional .env file, a paesdiag.yaml in the
// working directory, and PAESDIAG_* environment variables, in increasing
// priority.
func Load() (*Config, error) {
	// A missing .env is fine; it only exists in dev setups.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("paesdiag")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("PAESDIAG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", "data/pruebas/finalizadas")
	v.SetDefault("index_path", "data/question_atoms.json")
	v.SetDefault("db_path", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		DataDir:   v.GetString("data_dir"),
		IndexPath: v.GetString("index_path"),
		DBPath:    v.GetString("db_path"),
	}

	if v.IsSet("routing.cuts") {
		var settings []cutSetting
		if err := v.UnmarshalKey("routing.cuts", &settings); err != nil {
			return nil, fmt.Errorf("parse routing cuts: %w", err)
		}
		for _, s := range settings {
			cfg.Cuts = append(cfg.Cuts, routing.CutRange{
				Min:  s.Min,
				Max:  s.Max,
				Tier: routing.Tier(s.Tier),
			})
		}
		if err := routing.ValidateCuts(cfg.Cuts); err != nil {
			return nil, fmt.Errorf("routing cuts: %w", err)
		}
	}

	return cfg, nil
}

// Classifier builds the routing classifier from the configured cuts.
func (c *Config) Classifier() (*routing.Classifier, error) {
	if len(c.Cuts) == 0 {
		return routing.NewDefaultClassifier(), nil
	}
	return routing.NewClassifier(c.Cuts)
}
