// pkg/elfscan/scanner.go
package elfscan

import (
	"debug/elf"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Shared-library file names: libfoo.so, libfoo.so.1, libfoo.so.1.2.3
var sharedLibName = regexp.MustCompile(`\.so(\.\d+)*$`)

// Scan walks root and returns the paths of regular files that look like
// shared libraries and are confirmed ELF shared objects. Symlinks are
// skipped so development symlinks never produce false positives. The
// result is sorted byte-wise over the full path, which keeps output
// ordering independent of directory traversal order.
func Scan(root string, excludes []string) ([]string, error) {
	var candidates []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			// Directories, symlinks, devices
			return nil
		}
		if !sharedLibName.MatchString(d.Name()) {
			return nil
		}
		if Excluded(path, excludes) {
			return nil
		}
		if !isSharedObject(path) {
			return nil
		}
		candidates = append(candidates, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	sort.Strings(candidates)
	return candidates, nil
}

// MatchesName reports whether a file name follows the shared-library
// naming pattern, without looking at the file contents
func MatchesName(name string) bool {
	return sharedLibName.MatchString(name)
}

// Excluded reports whether path matches one of the exclusion patterns.
// Patterns are plain substrings of the path.
func Excluded(path string, excludes []string) bool {
	for _, pattern := range excludes {
		if pattern != "" && strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

// isSharedObject confirms the file is an ELF shared object. Unreadable or
// non-ELF files contribute nothing to the scan.
func isSharedObject(path string) bool {
	f, err := elf.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	return f.Type == elf.ET_DYN
}
