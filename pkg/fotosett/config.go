package fotosett

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the stock width/quality pairs and web prefix.
func DefaultConfig() *Config {
	return &Config{
		DataFile: "photos.json",
		WebRoot:  "/photos",
		Thumb:    Target{Width: 800, Quality: 80, Dir: "thumbs"},
		Display:  Target{Width: 1920, Quality: 85, Dir: "display"},
	}
}

// LoadConfig reads a YAML config file layered over the defaults.
func LoadConfig(path string) (*Config, error) {
	c := DefaultConfig()

	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(bs, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return c, nil
}
