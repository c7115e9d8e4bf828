// pkg/deb/control_test.go
package deb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseControl checks field parsing, continuations, and stanza end.
func TestParseControl(t *testing.T) {
	t.Parallel()

	stanza := `Package: libfoo1
Version: 1.1-3
Architecture: amd64
Depends: libc6 (>= 2.34)
Description: test library
 extended description line

Package: ignored-second-stanza
`

	fields, err := ParseControl(strings.NewReader(stanza))
	require.NoError(t, err)
	require.Equal(t, "libfoo1", fields["Package"])
	require.Equal(t, "1.1-3", fields["Version"])
	require.Equal(t, "amd64", fields["Architecture"])
	require.Equal(t, "test library\nextended description line", fields["Description"])
	require.NotContains(t, fields, "ignored-second-stanza")
}
