// internal/cli/scandeb.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/debtools/makeshlibs/pkg/deb"
)

var scanDebCmd = &cobra.Command{
	Use:   "scan-deb <archive.deb>",
	Short: "List shared libraries inside a built .deb archive",
	Long: `Scan-deb walks a built .deb without unpacking it to disk and lists
every ELF shared object in the data archive along with its SONAME.

Examples:
  makeshlibs scan-deb libfoobar1_1.1-3_amd64.deb`,
	Args: cobra.ExactArgs(1),
	RunE: runScanDeb,
}

func runScanDeb(cmd *cobra.Command, args []string) error {
	info, err := deb.ScanArchive(args[0])
	if err != nil {
		return fmt.Errorf("scanning %s: %w", args[0], err)
	}

	if info.Package != "" {
		fmt.Printf("%s %s (%s)\n", info.Package, info.Version, info.Architecture)
	}
	for _, lib := range info.Libraries {
		switch {
		case lib.Lib != nil:
			fmt.Printf("%s: %s %s\n", lib.Path, lib.Lib.Name, lib.Lib.Major)
		case lib.Unversioned:
			fmt.Printf("%s: unversioned SONAME %s\n", lib.Path, lib.Soname)
		default:
			fmt.Printf("%s: no SONAME\n", lib.Path)
		}
	}

	return nil
}
