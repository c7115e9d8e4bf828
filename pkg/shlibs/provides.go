// pkg/shlibs/provides.go
package shlibs

import (
	"sort"
	"strings"

	"github.com/debtools/makeshlibs/pkg/objdump"
)

// Provides derives virtual package tokens from scanned library
// descriptors, one per distinct SONAME: libfoo.so.1 yields "libfoo1".
// When a package version is supplied each token carries a strict version
// qualifier. Tokens are deduplicated and sorted for deterministic output.
func Provides(libs []objdump.SharedLib, version string) []string {
	seen := make(map[string]struct{})
	var tokens []string

	for _, lib := range libs {
		token := lib.Name + strings.ReplaceAll(lib.Major, ".", "-")
		if version != "" {
			token += " (= " + version + ")"
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}

	sort.Strings(tokens)
	return tokens
}

// ProvidesLine joins provides tokens into a single control-field body
func ProvidesLine(tokens []string) string {
	return strings.Join(tokens, ", ")
}
