// pkg/shlibs/emit.go
package shlibs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ShlibsPath returns the location of the generated control file inside a
// staging tree
func ShlibsPath(staging string) string {
	return filepath.Join(staging, ControlDir, ShlibsFile)
}

// OverridePath returns the hand-authored shlibs override location for a
// package, e.g. debian/libfoobar1.shlibs
func OverridePath(overridesDir, pkg string) string {
	return filepath.Join(overridesDir, pkg+"."+ShlibsFile)
}

// SymbolsOverridePath returns the symbols override location for a package
func SymbolsOverridePath(overridesDir, pkg string) string {
	return filepath.Join(overridesDir, pkg+"."+SymbolsFile)
}

// WriteShlibs writes the accumulated dependency lines to the control file:
// primary lines first, udeb-tagged lines last. Nothing is written when
// both sets are empty. Write failures are fatal for the whole run.
func WriteShlibs(staging string, lines, udebLines []string) (string, error) {
	if len(lines) == 0 && len(udebLines) == 0 {
		return "", nil
	}

	path := ShlibsPath(staging)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating control directory: %w", err)
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, line := range udebLines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), ControlFileMode); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	// Normalize mode in case the file pre-existed with different permissions
	if err := os.Chmod(path, ControlFileMode); err != nil {
		return "", fmt.Errorf("normalizing mode of %s: %w", path, err)
	}

	return path, nil
}

// InstallOverride copies a hand-authored override file byte-for-byte into
// the staging control directory, replacing any computed lines
func InstallOverride(staging, overridePath string) (string, error) {
	data, err := os.ReadFile(overridePath)
	if err != nil {
		return "", fmt.Errorf("reading override %s: %w", overridePath, err)
	}

	path := ShlibsPath(staging)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating control directory: %w", err)
	}
	if err := os.WriteFile(path, data, ControlFileMode); err != nil {
		return "", fmt.Errorf("installing override to %s: %w", path, err)
	}
	if err := os.Chmod(path, ControlFileMode); err != nil {
		return "", fmt.Errorf("normalizing mode of %s: %w", path, err)
	}

	return path, nil
}
