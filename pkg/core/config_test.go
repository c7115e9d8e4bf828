// pkg/core/config_test.go
package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoadConfigDefaults ensures a missing file yields the defaults.
func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultCompatLevel, cfg.CompatLevel)
	require.Equal(t, DefaultObjdumpTool, cfg.ObjdumpTool)
	require.Equal(t, DefaultGensymbolsTool, cfg.GensymbolsTool)
	require.Equal(t, DefaultOverridesDir, cfg.OverridesDir)
}

// TestLoadConfigFile checks YAML parsing with partial settings.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "compat: 11\nobjdump_tool: llvm-objdump\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 11, cfg.CompatLevel)
	require.Equal(t, "llvm-objdump", cfg.ObjdumpTool)
	// Unset fields fall back to defaults.
	require.Equal(t, DefaultGensymbolsTool, cfg.GensymbolsTool)
	require.Equal(t, DefaultOverridesDir, cfg.OverridesDir)
}

// TestLoadManifest checks the package job list format.
func TestLoadManifest(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "shlibs.yaml")
	content := `packages:
  - package: libfoobar1
    version: 1.1-3
    staging: debian/libfoobar1
    udeb: libfoobar1-udeb
    excludes:
      - /usr/lib/debug
  - package: libbaz2
    version: 2.0-1
    staging: debian/libbaz2
    version_info: none
    no_scripts: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, m.Packages, 2)

	require.Equal(t, "libfoobar1", m.Packages[0].Package)
	require.Equal(t, "1.1-3", m.Packages[0].Version)
	require.Equal(t, "libfoobar1-udeb", m.Packages[0].UdebPackage)
	require.Equal(t, []string{"/usr/lib/debug"}, m.Packages[0].Excludes)

	require.Equal(t, "none", m.Packages[1].VersionInfo)
	require.True(t, m.Packages[1].NoScripts)

	_, err = LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
