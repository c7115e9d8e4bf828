// pkg/shlibs/builder.go
package shlibs

import (
	"fmt"
	"strings"
)

// DefaultMode returns the dependency relation mode implied by the
// compatibility level. Levels below 12 historically emitted the bare
// package name; later levels default to an upstream-version constraint.
func DefaultMode(compat int) VersionMode {
	if compat >= compatDefaultUpstream {
		return ModeUpstreamVersion
	}
	return ModeNone
}

// UpstreamVersion strips the packaging revision suffix from a full
// package version: "1.1-3" becomes "1.1". Native versions without a
// revision are returned unchanged.
func UpstreamVersion(version string) string {
	if idx := strings.LastIndex(version, "-"); idx >= 0 {
		return version[:idx]
	}
	return version
}

// ParseVersionInfo maps a version-info argument to a mode: empty defers
// to the compat default, "none" and "upstream" select the named modes,
// anything else is taken as a literal relation string
func ParseVersionInfo(s string) (VersionMode, string) {
	switch s {
	case "":
		return ModeDefault, ""
	case "none":
		return ModeNone, ""
	case "upstream", "upstream-version":
		return ModeUpstreamVersion, ""
	default:
		return ModeExplicit, s
	}
}

// Dependency resolves the dependency relation string for a package
// according to the configured mode
func Dependency(opts Options) (string, error) {
	mode := opts.Mode
	if mode == ModeDefault {
		mode = DefaultMode(opts.Compat)
	}

	switch mode {
	case ModeNone:
		return opts.Package, nil
	case ModeUpstreamVersion:
		if opts.Version == "" {
			return "", fmt.Errorf("package %s: version required for upstream-version relation", opts.Package)
		}
		return fmt.Sprintf("%s (>= %s)", opts.Package, UpstreamVersion(opts.Version)), nil
	case ModeExplicit:
		// Opaque, no validation
		return opts.Relation, nil
	default:
		return "", fmt.Errorf("unknown version mode %d", mode)
	}
}

// Line builds one shlibs record: "library major dependency"
func Line(lib, major, dependency string) string {
	return fmt.Sprintf("%s %s %s", lib, major, dependency)
}

// UdebDependency derives the udeb variant of a dependency string.
// Substitution contract: every whitespace-delimited token exactly equal
// to the package name is replaced by the udeb target package; everything
// else, including version constraints, is preserved.
func UdebDependency(dependency, pkg, udebPkg string) string {
	if pkg == "" || udebPkg == "" {
		return dependency
	}
	fields := strings.Fields(dependency)
	for i, f := range fields {
		if f == pkg {
			fields[i] = udebPkg
		}
	}
	return strings.Join(fields, " ")
}

// UdebLine builds one udeb-tagged shlibs record
func UdebLine(lib, major, dependency string) string {
	return UdebPrefix + Line(lib, major, dependency)
}
