package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"slb-charger-econ/internal/model"

	"gopkg.in/yaml.v3"
)

// Preset is a named parameter set stored as YAML.
type Preset struct {
	ID          string
	Name        string
	Description string
	File        string
	Params      model.Params
}

type presetFileWrapper struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Params      model.Params `yaml:"params"`
}

// LoadPreset reads a preset file and overlays its params onto base.
func LoadPreset(path string, base model.Params) (*Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	w := presetFileWrapper{Params: base}
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", path, err)
	}

	// "2_high_usage.yaml" -> "2_high_usage"
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name := w.Name
	if name == "" {
		name = id
	}
	return &Preset{
		ID:          id,
		Name:        name,
		Description: w.Description,
		File:        path,
		Params:      w.Params,
	}, nil
}

// PresetPath maps a preset id to its file in dir. Ids are bare file stems;
// anything that could name a file outside dir is rejected with an error
// matching os.ErrNotExist.
func PresetPath(dir, id string) (string, error) {
	if id == "" || id == "." || id == ".." || filepath.Base(id) != id ||
		strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return "", fmt.Errorf("invalid preset id %q: %w", id, os.ErrNotExist)
	}
	return filepath.Join(dir, id+".yaml"), nil
}

// ListPresets loads every *.yaml preset in dir, sorted by id. Files that fail
// to parse are returned in skipped rather than aborting the listing.
func ListPresets(dir string) (presets []Preset, skipped map[string]error, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	skipped = map[string]error{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		p, err := LoadPreset(path, model.DefaultParams())
		if err != nil {
			skipped[e.Name()] = err
			continue
		}
		presets = append(presets, *p)
	}
	sort.Slice(presets, func(i, j int) bool {
		return presets[i].ID < presets[j].ID
	})
	return presets, skipped, nil
}
