// makeshlibs.go
package makeshlibs

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/debtools/makeshlibs/internal/logger"
	"github.com/debtools/makeshlibs/pkg/core"
	"github.com/debtools/makeshlibs/pkg/elfscan"
	"github.com/debtools/makeshlibs/pkg/objdump"
	"github.com/debtools/makeshlibs/pkg/shlibs"
	"github.com/debtools/makeshlibs/pkg/symbols"
)

// Re-export core types for convenience
type (
	Config      = core.Config
	PackageJob  = core.PackageJob
	Manifest    = core.Manifest
	SharedLib   = objdump.SharedLib
	VersionMode = shlibs.VersionMode
)

// Re-export version modes
const (
	ModeDefault         = shlibs.ModeDefault
	ModeNone            = shlibs.ModeNone
	ModeUpstreamVersion = shlibs.ModeUpstreamVersion
	ModeExplicit        = shlibs.ModeExplicit
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *core.Config {
	return core.DefaultConfig()
}

// Runner processes package jobs sequentially: one forward pass per
// package, all scan state re-initialized between packages.
type Runner struct {
	config  *core.Config
	objdump *objdump.Runner
	logger  *zap.SugaredLogger
}

// NewRunner creates a runner for the given configuration
func NewRunner(cfg *core.Config) *Runner {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	return &Runner{
		config:  cfg,
		objdump: objdump.NewRunner(cfg.ObjdumpTool),
		logger:  logger.Logger(),
	}
}

// PackageResult records the outcome of one package's pass
type PackageResult struct {
	Package           string
	Libraries         []objdump.SharedLib
	Lines             []string
	UdebLines         []string
	ShlibsPath        string
	TriggerNeeded     bool
	UnversionedSoname bool
	Err               error // Recorded failure; the run continues past it
}

// Run processes all jobs. Per-package external-tool failures are recorded
// and reported together at the end; file-write failures abort immediately.
func (r *Runner) Run(ctx context.Context, jobs []core.PackageJob) ([]PackageResult, error) {
	if len(jobs) == 0 {
		return nil, ErrNoPackages
	}

	results := make([]PackageResult, 0, len(jobs))
	var failures []error

	for _, job := range jobs {
		res, err := r.processPackage(ctx, job)
		results = append(results, res)
		if err != nil {
			return results, err
		}
		if res.Err != nil {
			r.logger.Errorf("package %s failed: %v", job.Package, res.Err)
			failures = append(failures, &Error{Op: "process", Package: job.Package, Err: res.Err})
		}
	}

	if len(failures) > 0 {
		return results, fmt.Errorf("%w: %w", ErrRunFailed, errors.Join(failures...))
	}
	return results, nil
}

// processPackage performs the scan, line construction, emission, and
// post-processing for one package. The returned error is fatal for the
// whole run; recoverable failures are recorded on the result instead.
func (r *Runner) processPackage(ctx context.Context, job core.PackageJob) (PackageResult, error) {
	res := PackageResult{Package: job.Package}

	if job.Package == "" {
		return res, ErrPackageNameRequired
	}
	if job.StagingDir == "" {
		return res, &Error{Op: "scan", Package: job.Package, Err: ErrStagingDirRequired}
	}

	libs, unversioned, err := r.ScanLibraries(ctx, job.StagingDir, job.Excludes)
	if err != nil {
		res.Err = err
		return res, nil
	}
	res.Libraries = libs
	res.UnversionedSoname = unversioned

	if len(libs) > 0 {
		mode, relation := shlibs.ParseVersionInfo(job.VersionInfo)
		dep, err := shlibs.Dependency(shlibs.Options{
			Package:  job.Package,
			Version:  job.Version,
			Mode:     mode,
			Relation: relation,
			Compat:   r.config.CompatLevel,
		})
		if err != nil {
			res.Err = err
			return res, nil
		}

		var primary, udeb shlibs.LineSet
		for _, lib := range libs {
			major := lib.Major
			if job.Major != "" {
				major = job.Major
			}
			primary.Add(shlibs.Line(lib.Name, major, dep))
			if job.UdebPackage != "" {
				udebDep := shlibs.UdebDependency(dep, job.Package, job.UdebPackage)
				udeb.Add(shlibs.UdebLine(lib.Name, major, udebDep))
			}
		}
		res.Lines = primary.Lines()
		res.UdebLines = udeb.Lines()
	}

	// Emission: a hand-authored override wins over all computed lines
	overridePath := shlibs.OverridePath(r.config.OverridesDir, job.Package)
	if _, err := os.Stat(overridePath); err == nil {
		path, err := shlibs.InstallOverride(job.StagingDir, overridePath)
		if err != nil {
			return res, &Error{Op: "install override", Package: job.Package, Err: err}
		}
		res.ShlibsPath = path
		r.logger.Debugf("installed shlibs override %s for %s", overridePath, job.Package)
	} else if len(res.Lines) > 0 || len(res.UdebLines) > 0 {
		path, err := shlibs.WriteShlibs(job.StagingDir, res.Lines, res.UdebLines)
		if err != nil {
			return res, &Error{Op: "write shlibs", Package: job.Package, Err: err}
		}
		res.ShlibsPath = path
		r.logger.Debugf("wrote %d shlibs lines for %s", len(res.Lines)+len(res.UdebLines), job.Package)
	}

	// Post-processing: run the symbol-versioning tool when an override exists
	symbolsOverride := shlibs.SymbolsOverridePath(r.config.OverridesDir, job.Package)
	hasSymbols := false
	if _, err := os.Stat(symbolsOverride); err == nil {
		hasSymbols = true

		paths := make([]string, 0, len(libs))
		for _, lib := range libs {
			paths = append(paths, lib.Path)
		}
		cfg := symbols.Config{Tool: r.config.GensymbolsTool, Compat: r.config.CompatLevel}
		if _, err := symbols.Generate(ctx, cfg, job.Package, symbolsOverride, job.StagingDir, paths, job.GensymbolsArgs); err != nil {
			res.Err = err
		}
	}

	res.TriggerNeeded = shlibs.NeedsTrigger(
		len(res.Lines) > 0 || len(res.UdebLines) > 0,
		hasSymbols,
		unversioned,
	)
	if res.TriggerNeeded && !job.NoScripts {
		if err := shlibs.RegisterTrigger(job.StagingDir); err != nil {
			return res, &Error{Op: "register trigger", Package: job.Package, Err: err}
		}
	}

	return res, nil
}

// ScanLibraries walks a staging tree and returns the versioned library
// descriptors found in it, plus whether any unversioned SONAME was seen.
// Files without a SONAME contribute nothing; that is not an error.
func (r *Runner) ScanLibraries(ctx context.Context, staging string, excludes []string) ([]objdump.SharedLib, bool, error) {
	paths, err := elfscan.Scan(staging, excludes)
	if err != nil {
		return nil, false, err
	}

	var libs []objdump.SharedLib
	unversioned := false

	for _, path := range paths {
		parsed, err := r.objdump.Inspect(ctx, path)
		if err != nil {
			return nil, false, err
		}
		switch {
		case parsed.Lib != nil:
			r.logger.Debugf("%s: SONAME %s -> %s %s", path, parsed.Soname, parsed.Lib.Name, parsed.Lib.Major)
			libs = append(libs, *parsed.Lib)
		case parsed.Unversioned:
			r.logger.Warnf("%s: unversioned SONAME %s", path, parsed.Soname)
			unversioned = true
		default:
			r.logger.Debugf("%s: no SONAME, skipped", path)
		}
	}

	return libs, unversioned, nil
}
