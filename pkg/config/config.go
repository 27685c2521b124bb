// Package config is for app wide settings that are unmarshalled
// from Viper (see: cmd/dna)
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/liserjrqlxue/dnaUtil/pkg/util"
)

// EnvPrefix of environment variables, e.g. DNA_ORF_MIN_LENGTH
const EnvPrefix = "DNA"

// ORFConfig settings of the orf command
type ORFConfig struct {
	// ORFs shorter than this are dropped
	MinLength int `mapstructure:"min-length"`

	// add protein translation column
	Translate bool `mapstructure:"translate"`
}

// GCConfig settings of the gc command
type GCConfig struct {
	// add Tm column
	Tm bool `mapstructure:"tm"`

	// bins of the histogram plot
	Bins int `mapstructure:"bins"`
}

// Config is the root-level settings struct, a mix of
// settings from the config file, environment and command line
type Config struct {
	ORF ORFConfig `mapstructure:"orf"`
	GC  GCConfig  `mapstructure:"gc"`
}

// New returns a viper instance with defaults and environment bound.
// path is an optional config file, yaml/toml/json by extension.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("orf.min-length", util.DefaultMinORFLength)
	v.SetDefault("orf.translate", false)
	v.SetDefault("gc.tm", false)
	v.SetDefault("gc.bins", 50)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return v, nil
}

// NewConfig returns a new Config populated by v
func NewConfig(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if c.GC.Bins <= 0 {
		return nil, fmt.Errorf("gc.bins must be positive, got %d", c.GC.Bins)
	}
	return &c, nil
}
