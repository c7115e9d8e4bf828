// errors.go
package makeshlibs

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPackages indicates that no package jobs were provided
	ErrNoPackages = errors.New("no packages to process")

	// ErrPackageNameRequired indicates a job without a package name
	ErrPackageNameRequired = errors.New("package name is required")

	// ErrStagingDirRequired indicates a job without a staging directory
	ErrStagingDirRequired = errors.New("staging directory is required")

	// ErrRunFailed indicates that at least one package failed post-processing
	ErrRunFailed = errors.New("run failed")
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
