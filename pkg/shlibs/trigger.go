// pkg/shlibs/trigger.go
package shlibs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TriggersPath returns the trigger registration file inside a staging tree
func TriggersPath(staging string) string {
	return filepath.Join(staging, ControlDir, TriggersFile)
}

// NeedsTrigger decides whether the package must register the ldconfig
// trigger: either a qualifying library produced a dependency line, or a
// symbols override exists and at least one unversioned SONAME was seen
// (libraries intentionally lacking versioned SONAMEs still need the
// linker cache refreshed after install).
func NeedsTrigger(linesEmitted bool, symbolsOverride, unversionedSoname bool) bool {
	return linesEmitted || (symbolsOverride && unversionedSoname)
}

// RegisterTrigger appends the ldconfig activation to the package trigger
// file, keeping existing registrations and never duplicating the entry
func RegisterTrigger(staging string) error {
	path := TriggersPath(staging)

	var existing []string
	if data, err := os.ReadFile(path); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			if line != "" {
				existing = append(existing, line)
			}
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	for _, line := range existing {
		if strings.TrimSpace(line) == LdconfigTrigger {
			return nil
		}
	}
	existing = append(existing, LdconfigTrigger)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating control directory: %w", err)
	}
	content := strings.Join(existing, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), ControlFileMode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
