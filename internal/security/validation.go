// Package security provides input validation for paths and URLs that come
// from users.
package security

import (
	"fmt"
	"net/netip"
	"net/url"
	"path/filepath"
	"strings"
)

// ValidateRemoteURL checks that urlStr is an http(s) URL with a host. Unless
// allowPrivate is set, loopback, private and link-local hosts are rejected.
func ValidateRemoteURL(urlStr string, allowPrivate bool) error {
	if urlStr == "" {
		return fmt.Errorf("empty URL")
	}

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("invalid URL scheme (only http:// and https:// allowed): %s", parsed.Scheme)
	}

	if parsed.Hostname() == "" {
		return fmt.Errorf("URL must have a hostname")
	}

	host := strings.ToLower(parsed.Hostname())
	if !allowPrivate && isLocalOrPrivateHost(host) {
		return fmt.Errorf("URL cannot point to local or private hosts: %s", host)
	}

	return nil
}

// ValidateFilePath checks that filePath is relative and stays inside baseDir
// once joined to it.
func ValidateFilePath(filePath, baseDir string) error {
	if filePath == "" {
		return fmt.Errorf("empty file path")
	}

	if filepath.IsAbs(filePath) {
		return fmt.Errorf("absolute file path not allowed: %s", filePath)
	}

	cleanFinal := filepath.Join(baseDir, filePath)
	cleanBase := filepath.Clean(baseDir)

	if cleanFinal == cleanBase {
		return fmt.Errorf("file path resolves to the base directory: %s", filePath)
	}
	if !strings.HasPrefix(cleanFinal, cleanBase+string(filepath.Separator)) && cleanBase != "." {
		return fmt.Errorf("file path would escape base directory: %s", filePath)
	}
	if cleanBase == "." && (cleanFinal == ".." || strings.HasPrefix(cleanFinal, ".."+string(filepath.Separator))) {
		return fmt.Errorf("file path would escape base directory: %s", filePath)
	}

	return nil
}

// isLocalOrPrivateHost reports whether host names this machine or a
// non-routable address.
func isLocalOrPrivateHost(host string) bool {
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	return addr.IsLoopback() ||
		addr.IsPrivate() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsUnspecified()
}
