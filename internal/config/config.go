package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ciricc/countstats/pkg/benchreport"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the optional configuration file is looked up.
const DefaultPath = "countstats.yaml"

type Config struct {
	Input struct {
		Path      string `yaml:"path"`
		Heuristic string `yaml:"heuristic"`
	} `yaml:"input"`

	Output struct {
		Summary   string `yaml:"summary"`
		DPTime    string `yaml:"dp_time"`
		DPYesTime string `yaml:"dp_yes_time"`
		DFSTime   string `yaml:"dfs_time"`
		BFSTime   string `yaml:"bfs_time"`
		Accuracy  string `yaml:"accuracy"`
	} `yaml:"output"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default returns the fixed file layout of the stats pipeline.
func Default() Config {
	var c Config
	c.Input.Path = "stats.csv"
	c.Input.Heuristic = benchreport.DefaultHeuristicName
	c.Output.Summary = "aggregate.csv"
	c.Output.DPTime = "dptime.dat"
	c.Output.DPYesTime = "dpyestime.dat"
	c.Output.DFSTime = "dfstime.dat"
	c.Output.BFSTime = "bfstime.dat"
	c.Output.Accuracy = "accuracy.dat"
	c.Log.Level = "info"
	return c
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, nil
}

// LogLevel maps Log.Level to a slog level.
func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}
