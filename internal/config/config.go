// Package config provides configuration defaults for the grcolor
// benchmark driver, layered under the CLI flags with viper: flags always
// win, but a config file or environment variables can set the same knobs
// for repeated local runs.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the driver-wide settings not already pinned down by a CLI
// flag on a given invocation.
type Config struct {
	Benchmark BenchmarkConfig `mapstructure:"benchmark"`
	Log       LogConfig       `mapstructure:"log"`
}

// BenchmarkConfig holds defaults for the coloring benchmark loop.
type BenchmarkConfig struct {
	GraphDir     string `mapstructure:"graph_dir"`
	Threads      int    `mapstructure:"threads"`
	Iterations   int    `mapstructure:"iterations"`
	CSVPath      string `mapstructure:"csv_path"`
	ParallelOnly bool   `mapstructure:"parallel_only"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from configPath if non-empty, otherwise from the
// standard locations (./grcolor.yaml, ./configs/grcolor.yaml), falling back
// to defaults when no file is found. Environment variables prefixed
// GRCOLOR_ override file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("grcolor")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// no config file on disk, defaults stand
		} else if os.IsNotExist(err) {
			// explicit path missing, defaults stand
		} else {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("grcolor")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("benchmark.graph_dir", "graphs")
	v.SetDefault("benchmark.threads", 1)
	v.SetDefault("benchmark.iterations", 1)
	v.SetDefault("benchmark.csv_path", "")
	v.SetDefault("benchmark.parallel_only", false)
	v.SetDefault("log.level", "info")
}
