package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-yaml"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = ".inifix.yaml"

// ErrInvalidColumnSize is returned for column sizes that are neither a
// positive integer nor "auto".
var ErrInvalidColumnSize = errors.New("name_column_size must be a positive integer or \"auto\"")

// ColumnSize is a key column width. Zero stands for "auto".
type ColumnSize int

// UnmarshalYAML accepts an integer or the string "auto".
func (c *ColumnSize) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	n, err := columnSizeOf(raw)
	if err != nil {
		return err
	}
	*c = ColumnSize(n)
	return nil
}

func (c ColumnSize) MarshalYAML() (any, error) {
	if c <= 0 {
		return "auto", nil
	}
	return int(c), nil
}

func columnSizeOf(raw any) (int, error) {
	switch v := raw.(type) {
	case nil:
		return 0, nil
	case string:
		if v == "auto" || v == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColumnSize, v)
		}
		return n, nil
	case uint64:
		if v == 0 || v > 1<<16 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidColumnSize, v)
		}
		return int(v), nil
	case int64:
		if v <= 0 || v > 1<<16 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidColumnSize, v)
		}
		return int(v), nil
	case int:
		if v <= 0 || v > 1<<16 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidColumnSize, v)
		}
		return v, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidColumnSize, v)
	}
}

// Config holds settings read from a YAML file.
type Config struct {
	NameColumnSize ColumnSize `yaml:"name_column_size"`
	LogLevel       string     `yaml:"log_level"`
}

// Parse decodes YAML data. Empty data yields the zero Config.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}
	return cfg, nil
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", cleanPath, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", cleanPath, err)
	}
	return cfg, nil
}

// Discover loads path when set, else DefaultFile from dir when it exists.
// Without either it returns the zero Config.
func Discover(path, dir string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	candidate := filepath.Join(dir, DefaultFile)
	if _, err := os.Stat(candidate); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("stat config %q: %w", candidate, err)
	}
	return Load(candidate)
}
