// Package assets handles game asset loading and caching.
package assets

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/tilewalk/internal/engine/texture"
	"github.com/Faultbox/tilewalk/internal/logger"
)

// root is one searchable asset location. dir is empty for roots that do not
// live on the local file system.
type root struct {
	fsys fs.FS
	dir  string
}

// Manager loads assets from a stack of directories.
// Roots are searched in reverse order (last added = highest priority).
type Manager struct {
	roots []root
	cache *Cache
	mu    sync.RWMutex
	log   *zap.Logger
}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
		log:   logger.Named("assets"),
	}
}

// AddDir adds a directory root.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("adding asset dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("adding asset dir %s: not a directory", dir)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("adding asset dir %s: %w", dir, err)
	}

	m.mu.Lock()
	m.roots = append(m.roots, root{fsys: os.DirFS(abs), dir: abs})
	m.mu.Unlock()

	m.log.Debug("asset dir added", zap.String("dir", abs))
	return nil
}

// AddFS adds an arbitrary file system root, such as an embedded one.
func (m *Manager) AddFS(fsys fs.FS) {
	m.mu.Lock()
	m.roots = append(m.roots, root{fsys: fsys})
	m.mu.Unlock()
}

// Load reads an asset. Names are slash-separated and relative to the roots;
// an absolute path is read straight from disk.
func (m *Manager) Load(name string) ([]byte, error) {
	// Check cache first
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	if filepath.IsAbs(name) {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", name, err)
		}
		m.cache.Set(name, data)
		return data, nil
	}

	clean := path.Clean(filepath.ToSlash(name))
	if !fs.ValidPath(clean) {
		return nil, fmt.Errorf("loading %s: invalid asset name", name)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.roots) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(m.roots[i].fsys, clean)
		if err == nil {
			m.cache.Set(name, data)
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", name, err)
		}
	}

	return nil, fmt.Errorf("file not found: %s", name)
}

// LoadImage loads and decodes an image into RGBA pixels. colorKey is an
// optional "#rrggbb" color made transparent.
func (m *Manager) LoadImage(name, colorKey string) (*image.RGBA, error) {
	key, err := texture.ParseColorKey(colorKey)
	if err != nil {
		return nil, err
	}
	data, err := m.Load(name)
	if err != nil {
		return nil, err
	}
	img, err := texture.Decode(name, data)
	if err != nil {
		return nil, err
	}
	return texture.ToRGBA(img, key), nil
}

// Locate returns the disk path an asset would be loaded from, or "" if it
// is not on disk.
func (m *Manager) Locate(name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.roots) - 1; i >= 0; i-- {
		r := m.roots[i]
		if r.dir == "" {
			continue
		}
		p := filepath.Join(r.dir, filepath.FromSlash(name))
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Invalidate drops a cached asset so the next Load reads it again.
func (m *Manager) Invalidate(name string) {
	m.cache.Delete(name)
}

// Stats returns cache statistics.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops all roots and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.roots = nil
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Delete removes an item from cache.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
