package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, warn, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.NoError(t, warn)
	assert.Equal(t, Defaults(), s)
}

func TestLoadMalformedFileWarnsAndKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("homepage = [unterminated"), 0o644))
	s, warn, err := Load(path)
	require.NoError(t, err)
	assert.Error(t, warn)
	assert.Equal(t, Defaults(), s)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("debug = true\nhomepage = \"gopher://example.org/1/\"\n"), 0o644))
	s, warn, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, warn)
	assert.True(t, s.Debug)
	assert.Equal(t, "gopher://example.org/1/", s.Homepage)
	assert.Equal(t, DefaultDownloadPath, s.DownloadPath)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Settings{DownloadPath: "/tmp/dl", Homepage: "gopher://example.org/", Debug: true}
	require.NoError(t, Save(path, want))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), generatedHeader))

	got, warn, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, warn)
	assert.Equal(t, want, got)
}

func TestDownloadDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/u", "Downloads"), Defaults().DownloadDir("/home/u"))
	assert.Equal(t, "/srv/files", Settings{DownloadPath: "/srv/files"}.DownloadDir("/home/u"))
}
