package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Assets referenced from the layout, relative to the static directory
var versionedAssets = []string{
	"css/site.css",
	"js/app.js",
	"images/favicon.svg",
}

var (
	assetVersions   = make(map[string]string)
	assetVersionsMu sync.RWMutex
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string) {
	versions := make(map[string]string, len(versionedAssets))
	for _, asset := range versionedAssets {
		version := computeFileHash(filepath.Join(staticDir, asset))
		if version == "" {
			version = "1"
		}
		versions[asset] = version
	}

	assetVersionsMu.Lock()
	assetVersions = versions
	assetVersionsMu.Unlock()
	log.Printf("[INFO] Asset versions initialized: %d files", len(versions))
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetVersion returns the cache-busting version of a static asset
func AssetVersion(asset string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	if version, ok := assetVersions[asset]; ok {
		return version
	}
	return "1"
}

// AssetURL returns the public URL of a static asset with its version query
func AssetURL(asset string) string {
	return "/static/" + asset + "?v=" + AssetVersion(asset)
}
