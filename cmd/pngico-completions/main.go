package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/pngico/cmd/pngico"
	"github.com/spf13/cobra"
)

// generators write a completion script for pngico to w
var generators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
}

func shells() string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <%s>\n", os.Args[0], shells())
		os.Exit(1)
	}

	shell := os.Args[1]
	generate, ok := generators[shell]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown shell %q, expected one of %s\n", shell, shells())
		os.Exit(1)
	}

	if err := generate(pngico.NewRootCmd(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s completion: %v\n", shell, err)
		os.Exit(1)
	}
}
