// Package assets resolves and caches headwear prop assets.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Faultbox/headforge/internal/headwear"
)

// Store resolves prop names to GLB files across search directories.
type Store struct {
	dirs  []string
	cache *Cache
	mu    sync.RWMutex
}

// NewStore creates an empty prop store.
func NewStore() *Store {
	return &Store{
		cache: NewCache(),
	}
}

// AddDir adds a search directory to the store.
// Directories are searched in reverse order (last added = highest priority).
func (s *Store) AddDir(dir string) {
	s.mu.Lock()
	s.dirs = append(s.dirs, dir)
	s.mu.Unlock()
}

// Resolve maps a prop name to the path of its GLB file.
func (s *Store) Resolve(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.dirs) - 1; i >= 0; i-- {
		path := filepath.Join(s.dirs[i], name+".glb")
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Load resolves and parses a prop by name.
func (s *Store) Load(name string) (*headwear.Prop, error) {
	// Check cache first
	if prop, ok := s.cache.Get(name); ok {
		return prop, nil
	}

	path, ok := s.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("prop asset not found: %s", name)
	}

	prop, err := headwear.LoadGLB(path)
	if err != nil {
		return nil, err
	}
	s.cache.Set(name, prop)
	return prop, nil
}

// Clear drops all cached props.
func (s *Store) Clear() {
	s.cache.Clear()
}

// Cache is a simple in-memory cache for parsed props.
type Cache struct {
	props map[string]*headwear.Prop
	mu    sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		props: make(map[string]*headwear.Prop),
	}
}

// Get retrieves a prop from cache.
func (c *Cache) Get(key string) (*headwear.Prop, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prop, ok := c.props[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return prop, ok
}

// Set stores a prop in cache.
func (c *Cache) Set(key string, prop *headwear.Prop) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.props[key] = prop
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.props = make(map[string]*headwear.Prop)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
