package config

import (
	"os"
	"sync"
	"time"

	"slb-charger-econ/internal/model"
)

type presetEntry struct {
	preset    Preset
	modTime   time.Time
	expiresAt time.Time
}

// PresetCache keeps parsed presets in memory so repeated API requests for the
// same preset skip the YAML decode. An entry is dropped when it expires or the
// file's modification time changes. A nil *PresetCache loads from disk every time.
type PresetCache struct {
	mu    sync.RWMutex
	store map[string]presetEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewPresetCache returns a cache with the given TTL, or nil when ttl <= 0.
func NewPresetCache(ttl time.Duration) *PresetCache {
	if ttl <= 0 {
		return nil
	}
	return &PresetCache{
		store: make(map[string]presetEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Load returns the preset at path overlaid on the default params.
func (c *PresetCache) Load(path string) (*Preset, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return LoadPreset(path, model.DefaultParams())
	}

	c.mu.RLock()
	entry, ok := c.store[path]
	c.mu.RUnlock()
	if ok && entry.modTime.Equal(info.ModTime()) && c.now().Before(entry.expiresAt) {
		p := entry.preset
		return &p, nil
	}

	p, err := LoadPreset(path, model.DefaultParams())
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.store[path] = presetEntry{
		preset:    *p,
		modTime:   info.ModTime(),
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Unlock()
	return p, nil
}

// Len reports the number of cached entries, expired ones included.
func (c *PresetCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear removes all entries from the cache
func (c *PresetCache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]presetEntry)
}
