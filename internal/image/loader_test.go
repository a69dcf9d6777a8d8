package image

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/jmylchreest/tokensmith/internal/util/imagecache"
)

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewFileLoader()

	data, err := loader.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(data) != "data" {
		t.Errorf("Load() = %q, want %q", data, "data")
	}

	for _, bad := range []string{"", filepath.Join(dir, "missing.png"), dir} {
		if _, err := loader.Load(context.Background(), bad); err == nil {
			t.Errorf("Load(%q) expected error", bad)
		}
	}
}

func TestSmartLoaderFetchesURLs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("remote"))
	}))
	defer srv.Close()

	data, err := NewSmartLoader(0).Load(context.Background(), srv.URL+"/logo.png")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(data) != "remote" {
		t.Errorf("Load() = %q, want %q", data, "remote")
	}
}

func TestSmartLoaderCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("remote"))
	}))
	defer srv.Close()

	cache, err := imagecache.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	url := srv.URL + "/logo.png"

	loader := NewSmartLoader(0).WithCache(cache, false)
	for range 3 {
		data, err := loader.Load(context.Background(), url)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if string(data) != "remote" {
			t.Fatalf("Load() = %q", data)
		}
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hit %d times, want 1", n)
	}

	if _, err := NewSmartLoader(0).WithCache(cache, true).Load(context.Background(), url); err != nil {
		t.Fatalf("Load() with refresh error = %v", err)
	}
	if n := hits.Load(); n != 2 {
		t.Errorf("server hit %d times after refresh, want 2", n)
	}
}

func TestSmartLoaderHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	if _, err := NewSmartLoader(0).Load(context.Background(), srv.URL+"/missing.png"); err == nil {
		t.Error("Load() expected error for 404")
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"https://example.com/a.png", true},
		{"http://example.com/a.png", true},
		{"ftp://example.com/a.png", false},
		{"/tmp/a.png", false},
		{"a.png", false},
	}

	for _, tt := range tests {
		if got := IsURL(tt.path); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestValidateImagePath(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "photo.PNG")
	txt := filepath.Join(dir, "notes.txt")
	for _, p := range []string{png, txt} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name         string
		path         string
		allowPrivate bool
		wantErr      bool
	}{
		{"existing image", png, false, false},
		{"unsupported extension", txt, false, true},
		{"missing", filepath.Join(dir, "nope.png"), false, true},
		{"directory", dir, false, true},
		{"empty", "", false, true},
		{"public url", "https://example.com/a.png", false, false},
		{"loopback url", "http://127.0.0.1/a.png", false, true},
		{"loopback url allowed", "http://127.0.0.1/a.png", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImagePath(tt.path, tt.allowPrivate)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImagePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
