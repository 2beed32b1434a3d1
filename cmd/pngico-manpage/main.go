package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pngico/cmd/pngico"
	"github.com/arthur-debert/pngico/internal/version"
)

func main() {
	rootCmd := pngico.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PNGICO",
		Section: "1",
		Source:  "pngico " + version.Version,
		Manual:  "pngico manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
