// pkg/core/job.go
package core

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PackageJob describes one binary package whose staging directory is
// scanned for shared libraries. All state derived from a job is discarded
// once the job has been processed.
type PackageJob struct {
	// Package is the binary package name (e.g. "libfoobar1")
	Package string `yaml:"package"`
	// Version is the full package version, including any packaging revision
	Version string `yaml:"version"`
	// StagingDir is the root of the installed file tree for the package
	StagingDir string `yaml:"staging"`
	// Major overrides the major version parsed from SONAMEs when set
	Major string `yaml:"major,omitempty"`
	// VersionInfo selects the dependency relation: empty for the
	// compat-level default, "none", "upstream", or a literal relation
	// string taken verbatim
	VersionInfo string `yaml:"version_info,omitempty"`
	// Excludes lists substrings; paths containing one are never scanned
	Excludes []string `yaml:"excludes,omitempty"`
	// UdebPackage adds udeb dependency lines targeting this package
	UdebPackage string `yaml:"udeb,omitempty"`
	// NoScripts suppresses the ldconfig trigger registration
	NoScripts bool `yaml:"no_scripts,omitempty"`
	// GensymbolsArgs are passed through to the symbol-versioning tool
	GensymbolsArgs []string `yaml:"gensymbols_args,omitempty"`
}

// Manifest lists the package jobs for a multi-package run
type Manifest struct {
	Packages []PackageJob `yaml:"packages"`
}

// LoadManifest loads a package job manifest from a YAML file
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	return &m, nil
}
