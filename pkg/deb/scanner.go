// pkg/deb/scanner.go
package deb

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"debug/elf"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blakesmith/ar"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/debtools/makeshlibs/pkg/elfscan"
	"github.com/debtools/makeshlibs/pkg/objdump"
)

// ScannedLib is one shared object found inside a built archive
type ScannedLib struct {
	Path        string              // Path inside the archive, without leading ./
	Soname      string              // Raw SONAME, empty when the object has none
	Lib         *objdump.SharedLib  // Descriptor when the SONAME is versioned
	Unversioned bool                // SONAME present but unversioned
}

// ArchiveInfo summarizes a scanned .deb archive
type ArchiveInfo struct {
	Package      string
	Version      string
	Architecture string
	Libraries    []ScannedLib
}

// ScanArchive inspects a built .deb without extracting it to disk: the ar
// container is walked member by member, control.tar.* supplies the package
// identity and data.tar.* is searched for ELF shared objects.
func ScanArchive(path string) (*ArchiveInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	info := &ArchiveInfo{}
	arReader := ar.NewReader(f)

	for {
		header, err := arReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading ar entry: %w", err)
		}

		name := strings.TrimSuffix(header.Name, "/")
		switch {
		case strings.HasPrefix(name, "control.tar"):
			if err := scanControlTar(arReader, name, info); err != nil {
				return nil, err
			}
		case strings.HasPrefix(name, "data.tar"):
			if err := scanDataTar(arReader, name, info); err != nil {
				return nil, err
			}
		}
	}

	return info, nil
}

// newDecompressor wraps the tar stream according to the member suffix
func newDecompressor(r io.Reader, name string) (io.Reader, error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewReader(r)
	case strings.HasSuffix(name, ".xz"):
		return xz.NewReader(r)
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	default:
		// Uncompressed tar
		return r, nil
	}
}

func scanControlTar(r io.Reader, name string, info *ArchiveInfo) error {
	dr, err := newDecompressor(r, name)
	if err != nil {
		return fmt.Errorf("decompressing %s: %w", name, err)
	}

	tarReader := tar.NewReader(dr)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}

		if strings.TrimPrefix(header.Name, "./") != "control" {
			continue
		}
		fields, err := ParseControl(tarReader)
		if err != nil {
			return fmt.Errorf("parsing control: %w", err)
		}
		info.Package = fields["Package"]
		info.Version = fields["Version"]
		info.Architecture = fields["Architecture"]
		return nil
	}

	return nil
}

func scanDataTar(r io.Reader, name string, info *ArchiveInfo) error {
	dr, err := newDecompressor(r, name)
	if err != nil {
		return fmt.Errorf("decompressing %s: %w", name, err)
	}

	tarReader := tar.NewReader(dr)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}

		if header.Typeflag != tar.TypeReg {
			// Symlinks never qualify, matching the staging-tree scan
			continue
		}
		cleanPath := strings.TrimPrefix(header.Name, "./")
		if !elfscan.MatchesName(cleanPath) {
			continue
		}

		data, err := io.ReadAll(tarReader)
		if err != nil {
			return fmt.Errorf("reading member %s: %w", cleanPath, err)
		}
		if lib, ok := inspectObject(cleanPath, data); ok {
			info.Libraries = append(info.Libraries, lib)
		}
	}

	return nil
}

// inspectObject confirms the member is an ELF shared object and reads its
// SONAME directly from the dynamic section
func inspectObject(path string, data []byte) (ScannedLib, bool) {
	f, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return ScannedLib{}, false
	}
	defer f.Close()
	if f.Type != elf.ET_DYN {
		return ScannedLib{}, false
	}

	lib := ScannedLib{Path: path}
	sonames, err := f.DynString(elf.DT_SONAME)
	if err != nil || len(sonames) == 0 {
		return lib, true
	}

	res := objdump.ParseSoname(sonames[0], path)
	lib.Soname = res.Soname
	lib.Lib = res.Lib
	lib.Unversioned = res.Unversioned
	return lib, true
}
