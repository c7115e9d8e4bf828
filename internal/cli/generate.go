// internal/cli/generate.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/debtools/makeshlibs"
	"github.com/debtools/makeshlibs/internal/logger"
	"github.com/debtools/makeshlibs/pkg/core"
)

var (
	genStaging     string
	genPackage     string
	genVersion     string
	genMajor       string
	genVersionInfo string
	genExcludes    []string
	genUdeb        string
	genNoScripts   bool
	genManifest    string
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] [-- gensymbols-args...]",
	Short: "Generate shlibs control files for staged packages",
	Long: `Generate scans one or more staging directories for shared libraries
and writes the shlibs dependency-control file for each package.

Examples:
  makeshlibs generate --staging debian/libfoobar1 --package libfoobar1 --version 1.1-3
  makeshlibs generate --staging debian/libfoobar1 --package libfoobar1 -V none
  makeshlibs generate --manifest debian/shlibs.yaml -- -c4
  makeshlibs generate --staging debian/libfoobar1 --package libfoobar1 -X /usr/lib/debug`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genStaging, "staging", "", "staging directory to scan")
	generateCmd.Flags().StringVar(&genPackage, "package", "", "binary package name")
	generateCmd.Flags().StringVar(&genVersion, "version", "", "package version including revision")
	generateCmd.Flags().StringVarP(&genMajor, "major", "m", "", "override the SONAME-derived major version")
	generateCmd.Flags().StringVarP(&genVersionInfo, "version-info", "V", "", "dependency relation: none, upstream, or a literal relation")
	generateCmd.Flags().StringArrayVarP(&genExcludes, "exclude", "X", nil, "exclude paths containing this substring (repeatable)")
	generateCmd.Flags().StringVar(&genUdeb, "add-udeb", "", "also emit udeb lines for this package")
	generateCmd.Flags().BoolVarP(&genNoScripts, "no-scripts", "n", false, "do not register the ldconfig trigger")
	generateCmd.Flags().StringVar(&genManifest, "manifest", "", "YAML manifest listing package jobs")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Arguments after -- are passed through to the symbol-versioning tool
	var passThrough []string
	if at := cmd.Flags().ArgsLenAtDash(); at >= 0 {
		passThrough = args[at:]
	} else if len(args) > 0 {
		return fmt.Errorf("unexpected arguments %v (use -- for gensymbols pass-through)", args)
	}

	jobs, err := buildJobs(passThrough)
	if err != nil {
		return err
	}

	runner := makeshlibs.NewRunner(config)
	results, err := runner.Run(context.Background(), jobs)

	log := logger.Logger()
	for _, res := range results {
		if res.ShlibsPath != "" {
			log.Infof("%s: %d shlibs lines -> %s", res.Package, len(res.Lines)+len(res.UdebLines), res.ShlibsPath)
		} else {
			log.Infof("%s: no shared libraries found", res.Package)
		}
		if res.TriggerNeeded {
			log.Debugf("%s: ldconfig trigger needed", res.Package)
		}
	}

	return err
}

// buildJobs assembles the package jobs from the manifest or from flags
func buildJobs(passThrough []string) ([]core.PackageJob, error) {
	if genManifest != "" {
		m, err := core.LoadManifest(genManifest)
		if err != nil {
			return nil, err
		}
		jobs := m.Packages
		if len(passThrough) > 0 {
			for i := range jobs {
				jobs[i].GensymbolsArgs = append(jobs[i].GensymbolsArgs, passThrough...)
			}
		}
		return jobs, nil
	}

	if genPackage == "" {
		return nil, fmt.Errorf("either --manifest or --package is required")
	}
	if genStaging == "" {
		return nil, fmt.Errorf("--staging is required")
	}

	return []core.PackageJob{{
		Package:        genPackage,
		Version:        genVersion,
		StagingDir:     genStaging,
		Major:          genMajor,
		VersionInfo:    genVersionInfo,
		Excludes:       genExcludes,
		UdebPackage:    genUdeb,
		NoScripts:      genNoScripts,
		GensymbolsArgs: passThrough,
	}}, nil
}
