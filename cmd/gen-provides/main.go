// cmd/gen-provides/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/debtools/makeshlibs"
	"github.com/debtools/makeshlibs/pkg/shlibs"
)

func main() {
	var (
		staging     = flag.String("staging", "", "Staging directory to scan")
		version     = flag.String("version", "", "Package version for (= ...) qualifiers")
		objdumpTool = flag.String("objdump", "", "Binary-metadata dumper to invoke")
		exclude     = flag.String("exclude", "", "Comma-separated path substrings to skip")
	)
	flag.Parse()

	if *staging == "" {
		fmt.Println("Usage: gen-provides -staging=<dir> [-version=<version>] [-exclude=<patterns>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	config := makeshlibs.DefaultConfig()
	if *objdumpTool != "" {
		config.ObjdumpTool = *objdumpTool
	}

	var excludes []string
	if *exclude != "" {
		excludes = strings.Split(*exclude, ",")
	}

	runner := makeshlibs.NewRunner(config)
	libs, _, err := runner.ScanLibraries(context.Background(), *staging, excludes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	tokens := shlibs.Provides(libs, *version)
	if len(tokens) == 0 {
		// Nothing staged provides a versioned SONAME
		return
	}
	fmt.Println(shlibs.ProvidesLine(tokens))
}
