package middleware

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFileHash(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.css")
	require.NoError(t, os.WriteFile(tmpFile, []byte("body { color: red; }"), 0644))

	hash := computeFileHash(tmpFile)
	assert.Len(t, hash, 8)

	assert.Empty(t, computeFileHash("non_existent_file.css"))
}

func TestAssetVersionDefault(t *testing.T) {
	assert.Equal(t, "1", AssetVersion("js/unknown.js"))
	assert.Equal(t, "/static/js/unknown.js?v=1", AssetURL("js/unknown.js"))
}

func TestInitAssetVersions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "site.css"), []byte("css"), 0644))

	InitAssetVersions(dir)

	css := AssetVersion("css/site.css")
	assert.Len(t, css, 8)
	assert.Equal(t, "/static/css/site.css?v="+css, AssetURL("css/site.css"))
	assert.Equal(t, "1", AssetVersion("js/app.js"), "missing files fall back to the default version")
}
