// Package config loads the optional wordladder.yaml configuration file
// that points the CLI at its word list, adjacency store and output
// locations.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default file locations, matching the classic layout: the adjacency
// store is gzip-compressed whenever its name carries the .gz suffix.
const (
	DefaultWordList   = "wordList.txt"
	DefaultDataFile   = "data.gz"
	DefaultOutputFile = "output.txt"
	DefaultConfigFile = "wordladder.yaml"
)

// ErrInvalidConfig is returned when a configuration value is out of
// range (e.g. a non-positive worker count).
var ErrInvalidConfig = errors.New("config: invalid configuration value")

// Config holds the CLI's tunable file locations and precompute
// parallelism.
type Config struct {
	// WordList is the dictionary file, one word per line; line order
	// defines WordID assignment.
	WordList string `yaml:"word_list"`

	// DataFile is the adjacency store; a ".gz" suffix enables the
	// transparent gzip layer.
	DataFile string `yaml:"data_file"`

	// OutputFile receives the found path, one word per line (emptied
	// when no path exists or a query word is unknown).
	OutputFile string `yaml:"output_file"`

	// Workers is the number of precompute worker goroutines.
	Workers int `yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		WordList:   DefaultWordList,
		DataFile:   DefaultDataFile,
		OutputFile: DefaultOutputFile,
		Workers:    1,
	}
}

// Load reads a YAML config from path. A missing file is not an error:
// the defaults are returned. Empty fields fall back to their defaults;
// a non-positive explicit worker count is ErrInvalidConfig.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var file struct {
		WordList   string `yaml:"word_list"`
		DataFile   string `yaml:"data_file"`
		OutputFile string `yaml:"output_file"`
		Workers    *int   `yaml:"workers"`
	}
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if file.WordList != "" {
		cfg.WordList = file.WordList
	}
	if file.DataFile != "" {
		cfg.DataFile = file.DataFile
	}
	if file.OutputFile != "" {
		cfg.OutputFile = file.OutputFile
	}
	if file.Workers != nil {
		if *file.Workers < 1 {
			return cfg, fmt.Errorf("%w: workers must be at least 1 (%d)", ErrInvalidConfig, *file.Workers)
		}
		cfg.Workers = *file.Workers
	}

	return cfg, nil
}
