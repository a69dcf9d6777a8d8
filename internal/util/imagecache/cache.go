// Package imagecache keeps downloaded images on disk, keyed by URL.
package imagecache

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Cache stores remote image bytes under a directory.
type Cache struct {
	dir string
}

// New returns a cache rooted at dir. An empty dir uses DefaultDir.
func New(dir string) (*Cache, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, err
		}
	}
	return &Cache{dir: dir}, nil
}

// DefaultDir returns the default cache directory path.
func DefaultDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		// Fallback to home directory if cache dir not available.
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "tokensmith", "images"), nil
	}
	return filepath.Join(cacheDir, "tokensmith", "images"), nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Path returns where the image for rawURL is stored.
func (c *Cache) Path(rawURL string) string {
	return filepath.Join(c.dir, filename(rawURL))
}

// Get returns the cached bytes for rawURL. A miss is not an error.
func (c *Cache) Get(rawURL string) ([]byte, bool, error) {
	data, err := os.ReadFile(c.Path(rawURL))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached image: %w", err)
	}
	return data, true, nil
}

// Put stores data for rawURL, replacing any earlier copy.
func (c *Cache) Put(rawURL string, data []byte) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil { // #nosec G301 - Cache directory needs standard permissions
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	// Write then rename so readers never see a partial file.
	dst := c.Path(rawURL)
	tmp := dst + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil { // #nosec G306 - Cache files need standard read permissions
		return fmt.Errorf("failed to write cached image: %w", err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write cached image: %w", err)
	}
	return nil
}

// filename derives a stable name from the URL hash and the extension of
// its path.
func filename(rawURL string) string {
	hash := sha256.Sum256([]byte(rawURL))

	ext := ""
	if u, err := url.Parse(rawURL); err == nil {
		ext = path.Ext(u.Path)
	}
	if ext == "" || len(ext) > 5 {
		ext = ".img"
	}

	return fmt.Sprintf("%x%s", hash[:16], strings.ToLower(ext))
}
