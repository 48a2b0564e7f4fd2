package config

import "github.com/spf13/viper"

// Default values mirror the original dataset layout and image geometry.
const (
	DefaultDataDir    = "tandata"
	DefaultOutDir     = "output"
	DefaultSquareSize = 10
	DefaultBorderSize = 5
)

// SetDefaults installs defaults on a Viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("out_dir", DefaultOutDir)
	v.SetDefault("plan_file", "")
	v.SetDefault("square_size", DefaultSquareSize)
	v.SetDefault("border_size", DefaultBorderSize)
}
