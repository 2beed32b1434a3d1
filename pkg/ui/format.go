package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how a Reporter renders progress lines
type Format int

const (
	// FormatAuto picks FormatTerminal or FormatText from where output goes
	FormatAuto Format = iota
	// FormatTerminal prints pterm prefixes and colored messages
	FormatTerminal
	// FormatText prints bare lines, warnings prefixed with "warning: "
	FormatText
	// FormatJSON prints one {"level", "message"} object per line
	FormatJSON
)

// String returns the name accepted by --format and output.format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat reads a --format value. "terminal" and "plain" are aliases
// of "term" and "text".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
}

// DetectFormat resolves FormatAuto for a reporter writing to output.
// Colors are only used on a color-capable terminal and never when
// NO_COLOR is set, so redirected conversion logs stay plain text.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	fd := output.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}
	if termenv.NewOutput(output).Profile == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
