// pkg/symbols/gensymbols.go
package symbols

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/debtools/makeshlibs/pkg/shlibs"
)

// compatExplicitLibs is the level at or above which discovered library
// paths are passed to the tool instead of letting it rescan the tree
const compatExplicitLibs = 11

// Config selects the external symbol-versioning tool and the
// compatibility level governing its invocation
type Config struct {
	Tool   string // Defaults to "dpkg-gensymbols"
	Compat int
}

// Generate invokes the symbol-versioning tool for one package. The tool
// receives the package name, the override file, and the staging root; on
// recent compatibility levels the discovered library files are passed
// explicitly so the tool does not rescan the tree. A produced symbols
// file that came out empty is removed. A nonzero exit is returned as an
// error for the caller to record; it must not abort other packages.
func Generate(ctx context.Context, cfg Config, pkg, overridePath, staging string, libs []string, extraArgs []string) (string, error) {
	tool := cfg.Tool
	if tool == "" {
		tool = "dpkg-gensymbols"
	}

	args := []string{
		"-p" + pkg,
		"-I" + overridePath,
		"-P" + staging,
	}
	if cfg.Compat >= compatExplicitLibs {
		for _, lib := range libs {
			args = append(args, "-e"+lib)
		}
	}
	args = append(args, extraArgs...)

	cmd := exec.CommandContext(ctx, tool, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s failed for %s: %w\n%s", tool, pkg, err, out)
	}

	path := filepath.Join(staging, shlibs.ControlDir, shlibs.SymbolsFile)
	if info, err := os.Stat(path); err == nil && info.Size() == 0 {
		if err := os.Remove(path); err != nil {
			return "", fmt.Errorf("removing empty %s: %w", path, err)
		}
		return "", nil
	}

	return path, nil
}
