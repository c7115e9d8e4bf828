// pkg/shlibs/trigger_test.go
package shlibs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNeedsTrigger covers the decision table, including the unversioned
// SONAME plus symbols override case with zero emitted lines.
func TestNeedsTrigger(t *testing.T) {
	t.Parallel()

	require.True(t, NeedsTrigger(true, false, false))
	require.True(t, NeedsTrigger(false, true, true))
	require.False(t, NeedsTrigger(false, true, false))
	require.False(t, NeedsTrigger(false, false, true))
	require.False(t, NeedsTrigger(false, false, false))
}

// TestRegisterTrigger checks creation, appending, and dedup.
func TestRegisterTrigger(t *testing.T) {
	t.Parallel()

	staging := t.TempDir()

	require.NoError(t, RegisterTrigger(staging))
	data, err := os.ReadFile(TriggersPath(staging))
	require.NoError(t, err)
	require.Equal(t, LdconfigTrigger+"\n", string(data))

	// Registering again does not duplicate the entry.
	require.NoError(t, RegisterTrigger(staging))
	data, err = os.ReadFile(TriggersPath(staging))
	require.NoError(t, err)
	require.Equal(t, LdconfigTrigger+"\n", string(data))
}

// TestRegisterTriggerKeepsExisting ensures other registrations survive.
func TestRegisterTriggerKeepsExisting(t *testing.T) {
	t.Parallel()

	staging := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Dir(TriggersPath(staging)), 0o755))
	require.NoError(t, os.WriteFile(TriggersPath(staging), []byte("interest /usr/share/icons\n"), 0o644))

	require.NoError(t, RegisterTrigger(staging))
	data, err := os.ReadFile(TriggersPath(staging))
	require.NoError(t, err)
	require.Equal(t, "interest /usr/share/icons\n"+LdconfigTrigger+"\n", string(data))
}
