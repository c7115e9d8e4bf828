// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/debtools/makeshlibs/internal/logger"
	"github.com/debtools/makeshlibs/pkg/core"
)

var (
	cfgFile     string
	logLevel    string
	compat      int
	objdumpTool string
	config      *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "makeshlibs",
	Short: "Debian shared-library dependency helper",
	Long: `makeshlibs - Debian shared-library dependency helper

Scans staged package trees for ELF shared objects, derives shlibs
dependency lines from their SONAMEs, runs the symbol-versioning tool
when an override is present, and registers the ldconfig trigger.`,
	Version: "0.1.0",
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "tool config file (default is $HOME/.config/makeshlibs/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVar(&compat, "compat", 0, "packaging compatibility level")
	rootCmd.PersistentFlags().StringVar(&objdumpTool, "objdump", "", "binary-metadata dumper to invoke")

	// Add commands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scanDebCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if level, ok := logger.ParseLogLevel(logLevel); ok {
		logger.SetLevel(level)
	}

	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if compat != 0 {
		config.CompatLevel = compat
	}
	if objdumpTool != "" {
		config.ObjdumpTool = objdumpTool
	}
}
