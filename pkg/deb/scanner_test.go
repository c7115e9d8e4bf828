// pkg/deb/scanner_test.go
package deb

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"debug/elf"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/blakesmith/ar"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

// minimalELF returns a bare 64-bit ELF header of the given type
func minimalELF(typ elf.Type) []byte {
	buf := make([]byte, 64)
	copy(buf, []byte{0x7f, 'E', 'L', 'F', 2, 1, 1, 0})
	binary.LittleEndian.PutUint16(buf[16:], uint16(typ))
	binary.LittleEndian.PutUint16(buf[18:], uint16(elf.EM_X86_64))
	binary.LittleEndian.PutUint32(buf[20:], 1)
	binary.LittleEndian.PutUint16(buf[52:], 64)
	binary.LittleEndian.PutUint16(buf[54:], 56)
	binary.LittleEndian.PutUint16(buf[58:], 64)
	return buf
}

// tarball builds a compressed tar archive from the given members
func tarball(t *testing.T, comp string, files map[string][]byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	var w io.WriteCloser
	switch comp {
	case "gz":
		w = gzip.NewWriter(&buf)
	case "xz":
		xw, err := xz.NewWriter(&buf)
		require.NoError(t, err)
		w = xw
	case "zst":
		zw, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		w = zw
	default:
		t.Fatalf("unknown compression %q", comp)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tar.NewWriter(w)
	for _, name := range names {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Typeflag: tar.TypeReg,
			Mode:     0o644,
			Size:     int64(len(files[name])),
		}))
		_, err := tw.Write(files[name])
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, w.Close())

	return buf.Bytes()
}

// buildDeb assembles a minimal .deb with the given data.tar compression
func buildDeb(t *testing.T, path, comp string) {
	t.Helper()

	control := "Package: libfoo1\nVersion: 1.1-3\nArchitecture: amd64\nDescription: test fixture\n"
	controlTar := tarball(t, "gz", map[string][]byte{"./control": []byte(control)})
	dataTar := tarball(t, comp, map[string][]byte{
		"./usr/lib/libfoo.so.1":   minimalELF(elf.ET_DYN),
		"./usr/lib/libjunk.so.2":  []byte("garbage"),
		"./usr/share/doc/README":  []byte("docs"),
	})

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	aw := ar.NewWriter(f)
	require.NoError(t, aw.WriteGlobalHeader())

	members := []struct {
		name string
		data []byte
	}{
		{"debian-binary", []byte("2.0\n")},
		{"control.tar.gz", controlTar},
		{"data.tar." + comp, dataTar},
	}
	for _, m := range members {
		require.NoError(t, aw.WriteHeader(&ar.Header{
			Name: m.name,
			Mode: 0o644,
			Size: int64(len(m.data)),
		}))
		_, err := aw.Write(m.data)
		require.NoError(t, err)
	}
}

// TestScanArchive covers all supported data.tar compressions.
func TestScanArchive(t *testing.T) {
	t.Parallel()

	for _, comp := range []string{"gz", "xz", "zst"} {
		comp := comp
		t.Run(comp, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "libfoo1_1.1-3_amd64.deb")
			buildDeb(t, path, comp)

			info, err := ScanArchive(path)
			require.NoError(t, err)
			require.Equal(t, "libfoo1", info.Package)
			require.Equal(t, "1.1-3", info.Version)
			require.Equal(t, "amd64", info.Architecture)

			// Only the confirmed shared object is listed; the garbage
			// file and the doc file are dropped.
			require.Len(t, info.Libraries, 1)
			require.Equal(t, "usr/lib/libfoo.so.1", info.Libraries[0].Path)
			require.Nil(t, info.Libraries[0].Lib)
			require.Empty(t, info.Libraries[0].Soname)
		})
	}
}

// TestScanArchiveMissing checks the open error path.
func TestScanArchiveMissing(t *testing.T) {
	t.Parallel()

	_, err := ScanArchive(filepath.Join(t.TempDir(), "nope.deb"))
	require.Error(t, err)
}
