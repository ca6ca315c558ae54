package nqtree

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a tree in YAML:
//
//	name: sensors
//	capacity: 8
//	bounds: [[0, 100], [0, 100], [10, 200]]
//	searchParallelism: 4
//	metrics: true
type Config struct {
	Name              string      `yaml:"name"`
	Capacity          int         `yaml:"capacity"`
	Bounds            [][]float64 `yaml:"bounds"`
	SearchParallelism int         `yaml:"searchParallelism"`
	Metrics           bool        `yaml:"metrics"`
}

// DefaultConfig returns the settings applied to fields a config file omits.
func DefaultConfig() Config {
	return Config{
		Name:              defaultName,
		Capacity:          4,
		SearchParallelism: 1,
	}
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("nqtree: failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nqtree: failed to read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// Validate checks capacity and bounds.
func (c *Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, c.Capacity)
	}
	_, err := c.AxisBounds()
	return err
}

// AxisBounds converts Bounds into per-axis [low, high] pairs.
func (c *Config) AxisBounds() ([][2]float64, error) {
	if len(c.Bounds) == 0 {
		return nil, fmt.Errorf("%w: no axes", ErrInvalidBounds)
	}
	bounds := make([][2]float64, len(c.Bounds))
	for i, b := range c.Bounds {
		if len(b) != 2 {
			return nil, fmt.Errorf("%w: axis %d has %d values, want 2", ErrInvalidBounds, i, len(b))
		}
		bounds[i] = [2]float64{b[0], b[1]}
	}
	return bounds, nil
}

// NewFromConfig constructs a tree from cfg. opts are applied after the
// config-derived options.
func NewFromConfig[T any](cfg *Config, opts ...Option) (*Tree[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bounds, _ := cfg.AxisBounds()
	all := []Option{
		WithName(cfg.Name),
		WithSearchParallelism(cfg.SearchParallelism),
		WithMetrics(cfg.Metrics),
	}
	return New[T](bounds, cfg.Capacity, append(all, opts...)...)
}
