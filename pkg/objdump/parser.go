// pkg/objdump/parser.go
package objdump

import (
	"bufio"
	"regexp"
	"strings"
)

var (
	// Canonical versioned SONAME: libfoo.so.1
	sonameVersioned = regexp.MustCompile(`^(.+)\.so\.(.+)$`)
	// Legacy hyphenated SONAME: libfoo-1.2.so
	sonameHyphenated = regexp.MustCompile(`^(.+)-(\d.*)\.so$`)
)

// Parse extracts the SONAME field from the textual output of the
// binary-metadata dumper and derives a library descriptor from it.
// Output without a SONAME line yields an empty result; that is not an error.
func Parse(output, path string) ParseResult {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 2 && fields[0] == "SONAME" {
			return ParseSoname(fields[1], path)
		}
	}
	return ParseResult{}
}

// ParseSoname derives a library descriptor from a raw SONAME value.
// Pattern attempts are ordered: the canonical name.so.major form first,
// then the hyphenated name-major.so form. Any other SONAME marks the
// library as unversioned without producing a descriptor.
func ParseSoname(soname, path string) ParseResult {
	if m := sonameVersioned.FindStringSubmatch(soname); m != nil {
		return ParseResult{
			Lib:    &SharedLib{Name: m[1], Major: m[2], Path: path},
			Soname: soname,
		}
	}
	if m := sonameHyphenated.FindStringSubmatch(soname); m != nil {
		return ParseResult{
			Lib:    &SharedLib{Name: m[1], Major: m[2], Path: path},
			Soname: soname,
		}
	}
	return ParseResult{Unversioned: true, Soname: soname}
}
