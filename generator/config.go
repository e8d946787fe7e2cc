package generator

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/bodgit/profileimage/picture"
	"gopkg.in/yaml.v3"
)

// Config describes the layers a generated picture is built from. The three
// color sets must be disjoint so each layer stays visible against the one
// beneath it.
type Config struct {
	Background []int `yaml:"background"`
	Midground  []int `yaml:"midground"`
	Foreground []int `yaml:"foreground"`

	// Borders and Icons are directories of mask images
	Borders string `yaml:"borders"`
	Icons   string `yaml:"icons"`
}

// DefaultConfig returns the stock color sets with no mask directories
func DefaultConfig() Config {
	return Config{
		Background: []int{10, 14, 7},
		Midground:  []int{9, 15, 13, 4, 6, 0},
		Foreground: []int{1, 2, 3, 5, 8, 11, 12},
	}
}

// LoadConfig reads a YAML configuration file. Any key missing from the file
// keeps its default value.
func LoadConfig(file string) (Config, error) {
	cfg := DefaultConfig()

	b, err := ioutil.ReadFile(file)
	if err != nil {
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, fmt.Errorf("generator: parsing %s: %w", file, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks that every color set is non-empty, holds valid color
// indices, and shares no index with another set.
func (c Config) Validate() error {
	seen := make(map[int]string)
	for _, set := range []struct {
		name   string
		colors []int
	}{
		{"background", c.Background},
		{"midground", c.Midground},
		{"foreground", c.Foreground},
	} {
		if len(set.colors) == 0 {
			return fmt.Errorf("%w: %s color set is empty", picture.ErrValidation, set.name)
		}
		for _, i := range set.colors {
			if i < 0 || i >= picture.PaletteSize {
				return fmt.Errorf("%w: %s color %d out of range", picture.ErrValidation, set.name, i)
			}
			if other, ok := seen[i]; ok {
				return fmt.Errorf("%w: color %d is in both %s and %s", picture.ErrValidation, i, other, set.name)
			}
			seen[i] = set.name
		}
	}
	return nil
}
