// pkg/objdump/objdump.go
package objdump

import (
	"context"
	"fmt"
	"os/exec"
)

// Runner invokes the binary-metadata dumper on candidate files.
// Invocations are synchronous; there is no timeout beyond the context.
type Runner struct {
	tool string
}

// NewRunner creates a runner for the given dumper tool (typically "objdump")
func NewRunner(tool string) *Runner {
	if tool == "" {
		tool = "objdump"
	}
	return &Runner{tool: tool}
}

// Tool returns the configured dumper tool name
func (r *Runner) Tool() string {
	return r.tool
}

// Dump runs the dumper on one file and returns its raw textual output
func (r *Runner) Dump(ctx context.Context, path string) (string, error) {
	out, err := exec.CommandContext(ctx, r.tool, "-p", path).Output()
	if err != nil {
		return "", fmt.Errorf("running %s -p %s: %w", r.tool, path, err)
	}
	return string(out), nil
}

// Inspect dumps one file and parses its SONAME field
func (r *Runner) Inspect(ctx context.Context, path string) (ParseResult, error) {
	out, err := r.Dump(ctx, path)
	if err != nil {
		return ParseResult{}, err
	}
	return Parse(out, path), nil
}
