package image

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/jmylchreest/tokensmith/internal/security"
	httputil "github.com/jmylchreest/tokensmith/internal/util/http"
	"github.com/jmylchreest/tokensmith/internal/util/imagecache"
)

// Loader reads raw image bytes from a location.
type Loader interface {
	// Load returns the bytes found at path.
	Load(ctx context.Context, path string) ([]byte, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads an image file from disk.
func (l *FileLoader) Load(_ context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}

	return data, nil
}

// SmartLoader loads images from both local files and HTTP(S) URLs.
type SmartLoader struct {
	fileLoader *FileLoader
	timeout    time.Duration
	cache      *imagecache.Cache
	refresh    bool
}

// NewSmartLoader creates a new SmartLoader. A zero timeout uses the HTTP
// package default.
func NewSmartLoader(timeout time.Duration) *SmartLoader {
	return &SmartLoader{
		fileLoader: NewFileLoader(),
		timeout:    timeout,
	}
}

// WithCache makes remote loads read through c. With refresh set, cached
// copies are ignored and replaced.
func (l *SmartLoader) WithCache(c *imagecache.Cache, refresh bool) *SmartLoader {
	l.cache = c
	l.refresh = refresh
	return l
}

// Load reads from a URL when path starts with http:// or https://, and from
// disk otherwise.
func (l *SmartLoader) Load(ctx context.Context, path string) ([]byte, error) {
	if !IsURL(path) {
		return l.fileLoader.Load(ctx, path)
	}

	if l.cache != nil && !l.refresh {
		data, ok, err := l.cache.Get(path)
		if err != nil {
			return nil, err
		}
		if ok {
			return data, nil
		}
	}

	data, err := httputil.Fetch(ctx, path, httputil.FetchOptions{Timeout: l.timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image from URL: %w", err)
	}

	if l.cache != nil {
		if err := l.cache.Put(path, data); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// IsURL reports whether path is an HTTP(S) URL.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// ValidateImagePath checks that path is a fetchable URL or an existing file
// with a supported extension. URLs are not fetched; URLs naming loopback or
// private hosts are rejected unless allowPrivate is set.
func ValidateImagePath(path string, allowPrivate bool) error {
	if path == "" {
		return fmt.Errorf("image path cannot be empty")
	}
	if IsURL(path) {
		return security.ValidateRemoteURL(path, allowPrivate)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("image file not found: %s", path)
		}
		return fmt.Errorf("failed to access image path: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if !isImageFile(path) {
		return fmt.Errorf("unsupported image extension %q (supported: %s)",
			filepath.Ext(path), strings.Join(SupportedImageExtensions(), ", "))
	}

	return nil
}

// isImageFile checks if a file has a supported image extension.
func isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedImageExtensions(), ext)
}
