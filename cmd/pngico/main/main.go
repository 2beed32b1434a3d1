package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pngico/cmd/pngico"
	"github.com/arthur-debert/pngico/pkg/ui/styles"
)

func main() {
	rootCmd := pngico.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := styles.GetStyle(styles.Error)
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
