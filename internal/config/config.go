// Package config loads tool configuration with Viper: defaults, an
// optional tanvet.yaml, and TANVET_* environment overrides.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config is the resolved tool configuration.
type Config struct {
	// DataDir is the root of the hand-authored dataset
	// (wz/, codm/, mapping.csv).
	DataDir string `mapstructure:"data_dir"`

	// OutDir receives the rendered PNG files.
	OutDir string `mapstructure:"out_dir"`

	// PlanFile optionally points at a YAML render-plan file. Empty means
	// use the built-in grid plans.
	PlanFile string `mapstructure:"plan_file"`

	// SquareSize is the side length in pixels of one tangram cell.
	SquareSize int `mapstructure:"square_size"`

	// BorderSize is the outer border width in pixels of grid images.
	BorderSize int `mapstructure:"border_size"`
}

// Load resolves configuration from defaults, an optional tanvet.yaml in
// the working directory, and the TANVET_ environment prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("tanvet")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TANVET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config file")
		}
	}

	return unmarshal(v)
}

// LoadFromFile resolves configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read config file %s", path)
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	return &cfg, nil
}
