package system

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Masterminds/semver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const versionPlistTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>ProductBuildVersion</key>
	<string>23A344</string>
	<key>ProductName</key>
	<string>macOS</string>
	<key>ProductVersion</key>
	<string>VERSION</string>
</dict>
</plist>
`

func writeVersionPlist(t *testing.T, dir, name, version string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	data := strings.Replace(versionPlistTemplate, "VERSION", version, 1)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestGetVersionRelease(t *testing.T) {
	tests := []struct {
		version string
		want    Release
	}{
		{"10.14.6", Mojave},
		{"10.15.7", Catalina},
		{"10.16", CompatMode},
		{"11.7.1", BigSur},
		{"12.6", Monterey},
		{"13.0", Ventura},
		{"14.1.1", Sonoma},
		{"15.0", Sequoia},
		{"26.0", Tahoe},
		{"9.0", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			v := semver.MustParse(tt.version)

			assert.Equal(t, tt.want, getVersionRelease(*v))
		})
	}
}

func TestNewProduct(t *testing.T) {
	p, err := newProduct("14.1.1")
	require.NoError(t, err)
	assert.Equal(t, Sonoma, p.Release)
	assert.Equal(t, "macOS Sonoma 14.1.1", p.String())

	_, err = newProduct("not-a-version")
	assert.Error(t, err, "should reject unparseable versions")
}

func TestProduct_SealedSystemVolume(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"10.14.6", false},
		{"10.15.7", false},
		{"10.16", true},
		{"11.0.1", true},
		{"14.1.1", true},
		{"26.0", true},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			p, err := newProduct(tt.version)
			require.NoError(t, err)

			assert.Equal(t, tt.want, p.SealedSystemVolume())
		})
	}
}

func TestDecodeVersionInfo(t *testing.T) {
	data := strings.Replace(versionPlistTemplate, "VERSION", "13.4", 1)

	info, err := decodeVersionInfo(strings.NewReader(data))

	require.NoError(t, err)
	assert.Equal(t, "23A344", info.ProductBuildVersion)
	assert.Equal(t, "macOS", info.ProductName)
	assert.Equal(t, "13.4", info.ProductVersion)
}

func TestReadVersion(t *testing.T) {
	t.Run("standard file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeVersionPlist(t, dir, "SystemVersion.plist", "14.0")

		info, err := readVersion(path, filepath.Join(dir, "missing.plist"))

		require.NoError(t, err)
		assert.Equal(t, "14.0", info.ProductVersion)
	})

	t.Run("compat mode reads dot file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeVersionPlist(t, dir, "SystemVersion.plist", dotVersionSwitch)
		dotPath := writeVersionPlist(t, dir, ".SystemVersionPlatform.plist", "11.2.3")

		info, err := readVersion(path, dotPath)

		require.NoError(t, err)
		assert.Equal(t, "11.2.3", info.ProductVersion)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readVersion(filepath.Join(t.TempDir(), "missing.plist"), "")

		assert.Error(t, err)
	})
}
