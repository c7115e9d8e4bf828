// pkg/shlibs/types.go
package shlibs

// VersionMode selects how the dependency relation of a shlibs line is
// derived. The zero value defers to the compatibility-level default.
type VersionMode int

const (
	// ModeDefault resolves to ModeNone or ModeUpstreamVersion depending
	// on the compatibility level
	ModeDefault VersionMode = iota

	// ModeNone emits the bare package name
	ModeNone

	// ModeUpstreamVersion emits "name (>= upstream-version)"
	ModeUpstreamVersion

	// ModeExplicit emits a caller-supplied relation verbatim
	ModeExplicit
)

func (m VersionMode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeUpstreamVersion:
		return "upstream-version"
	case ModeExplicit:
		return "explicit"
	default:
		return "default"
	}
}

// Options configures line construction for one package
type Options struct {
	Package     string      // Binary package name
	Version     string      // Full package version including revision
	Major       string      // Overrides the SONAME-derived major when set
	Mode        VersionMode // Dependency relation mode
	Relation    string      // Literal relation for ModeExplicit
	UdebPackage string      // Target package for udeb lines, empty to disable
	Compat      int         // Packaging compatibility level
}

// LineSet accumulates dependency lines for one package, deduplicated by
// exact line text with discovery order preserved.
type LineSet struct {
	seen  map[string]struct{}
	lines []string
}

// Add records a line unless an identical one was already added
func (s *LineSet) Add(line string) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, dup := s.seen[line]; dup {
		return
	}
	s.seen[line] = struct{}{}
	s.lines = append(s.lines, line)
}

// Lines returns the accumulated lines in insertion order
func (s *LineSet) Lines() []string {
	return s.lines
}

// Empty reports whether no lines were accumulated
func (s *LineSet) Empty() bool {
	return len(s.lines) == 0
}
