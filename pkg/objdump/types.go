// pkg/objdump/types.go
package objdump

// SharedLib is a library descriptor derived from one file's SONAME field.
// It lives only as long as the scan that produced it.
type SharedLib struct {
	Name  string // Library name without version suffix (e.g. "libfoobar")
	Major string // Major version parsed from the SONAME (e.g. "1")
	Path  string // File the SONAME was read from
}

// ParseResult is the outcome of inspecting one candidate file
type ParseResult struct {
	// Lib is set when the SONAME matched a versioned naming pattern
	Lib *SharedLib
	// Unversioned is set when a SONAME was present but carried no
	// recognizable version (intentionally unversioned libraries)
	Unversioned bool
	// Soname is the raw SONAME value, for logging
	Soname string
}
