package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"slb-charger-econ/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk run configuration shape (YAML).
type Config struct {
	// Optional: start from a preset file (e.g. examples/presets/*.yaml).
	// Params given here override the preset; anything absent from both keeps its default.
	PresetFile     string       `yaml:"preset_file"`
	Variant        string       `yaml:"variant"`
	SignConvention string       `yaml:"sign_convention"`
	Params         model.Params `yaml:"params"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var probe struct {
		PresetFile string `yaml:"preset_file"`
	}
	if err := yaml.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	base := model.DefaultParams()
	if probe.PresetFile != "" {
		presetPath := probe.PresetFile
		if !filepath.IsAbs(presetPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), presetPath)
			if _, err := os.Stat(cand); err == nil {
				presetPath = cand
			}
		}
		preset, err := LoadPreset(presetPath, base)
		if err != nil {
			return nil, err
		}
		base = preset.Params
	}

	c := Config{Params: base}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := c.Options(); err != nil {
		return err
	}
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("params invalid: %w", err)
	}
	return nil
}

// Options resolves the variant and sign convention; empty values take defaults.
func (c *Config) Options() (model.Options, error) {
	v, err := model.ParseVariant(c.Variant)
	if err != nil {
		return model.Options{}, err
	}
	s, err := model.ParseSignConvention(c.SignConvention)
	if err != nil {
		return model.Options{}, err
	}
	return model.Options{Variant: v, Sign: s}, nil
}
