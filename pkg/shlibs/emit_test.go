// pkg/shlibs/emit_test.go
package shlibs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestWriteShlibs checks ordering, trailing newlines, and the normalized mode.
func TestWriteShlibs(t *testing.T) {
	t.Parallel()

	staging := t.TempDir()
	lines := []string{"libfoobar 1 libfoobar1 (>= 1.1)", "libbaz 2 libfoobar1 (>= 1.1)"}
	udebLines := []string{"udeb: libfoobar 1 libfoobar1-udeb (>= 1.1)"}

	path, err := WriteShlibs(staging, lines, udebLines)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(staging, "DEBIAN", "shlibs"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t,
		"libfoobar 1 libfoobar1 (>= 1.1)\n"+
			"libbaz 2 libfoobar1 (>= 1.1)\n"+
			"udeb: libfoobar 1 libfoobar1-udeb (>= 1.1)\n",
		string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(ControlFileMode), info.Mode().Perm())
}

// TestWriteShlibsEmpty ensures nothing is written without lines.
func TestWriteShlibsEmpty(t *testing.T) {
	t.Parallel()

	staging := t.TempDir()
	path, err := WriteShlibs(staging, nil, nil)
	require.NoError(t, err)
	require.Empty(t, path)

	_, err = os.Stat(ShlibsPath(staging))
	require.True(t, os.IsNotExist(err))
}

// TestInstallOverride ensures overrides are copied byte-for-byte.
func TestInstallOverride(t *testing.T) {
	t.Parallel()

	staging := t.TempDir()
	override := filepath.Join(t.TempDir(), "libfoobar1.shlibs")
	content := "libfoobar 1 libfoobar1 (>= 1.0), libextra\n# hand-authored\n"
	require.NoError(t, os.WriteFile(override, []byte(content), 0o600))

	path, err := InstallOverride(staging, override)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, content, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(ControlFileMode), info.Mode().Perm())
}

// TestOverridePaths checks override file resolution.
func TestOverridePaths(t *testing.T) {
	t.Parallel()

	require.Equal(t, filepath.Join("debian", "libfoobar1.shlibs"), OverridePath("debian", "libfoobar1"))
	require.Equal(t, filepath.Join("debian", "libfoobar1.symbols"), SymbolsOverridePath("debian", "libfoobar1"))
}
