package paths

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pngico/pkg/errors"
	"github.com/arthur-debert/pngico/pkg/filesystem"
)

// Mode selects the conversion direction
type Mode int

const (
	// ModeAuto infers the direction from the input
	ModeAuto Mode = iota
	// ModeICO builds an ICO file from a PNG folder
	ModeICO
	// ModePNG extracts an ICO file into a PNG folder
	ModePNG
)

// IconExtension is the extension that marks ICO inputs in auto mode
const IconExtension = ".ico"

// String returns the flag value of the mode
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeICO:
		return "ico"
	case ModePNG:
		return "png"
	default:
		return "unknown"
	}
}

// ParseMode parses a flag value into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ModeAuto, nil
	case "ico":
		return ModeICO, nil
	case "png":
		return ModePNG, nil
	default:
		return ModeAuto, fmt.Errorf("unknown conversion mode %q (want auto, ico or png)", s)
	}
}

// Request is what the user asked for
type Request struct {
	Input     string
	Output    string
	Mode      Mode
	Overwrite bool
}

// Plan is a request with the mode and output resolved
type Plan struct {
	Mode   Mode
	Input  string
	Output string
	// Replacing reports whether Output already exists
	Replacing bool
}

// Resolve validates req and works out the plan. It only stats paths.
func Resolve(fsys filesystem.FS, req Request) (Plan, error) {
	if err := ValidatePath(req.Input); err != nil {
		return Plan{}, err
	}

	input := filepath.Clean(req.Input)
	parent, stem, err := splitInput(input)
	if err != nil {
		return Plan{}, err
	}

	mode := req.Mode
	if mode == ModeAuto {
		mode, err = inferMode(fsys, input)
		if err != nil {
			return Plan{}, err
		}
	}

	output := req.Output
	if output == "" {
		output = DefaultOutput(parent, stem, mode)
	} else if err := ValidatePath(output); err != nil {
		return Plan{}, err
	}

	plan := Plan{Mode: mode, Input: input, Output: output}

	info, err := fsys.Stat(output)
	switch {
	case err == nil:
		plan.Replacing = true
		if !req.Overwrite {
			kind := "file"
			if info.IsDir() {
				kind = "folder"
			}
			return Plan{}, errors.Newf(errors.ErrAlreadyExists,
				"The output %s already exists. Specify --overwrite to overwrite it.", kind).
				WithDetail("output", output)
		}
	case !stderrors.Is(err, fs.ErrNotExist):
		return Plan{}, errors.Wrapf(err, errors.ErrConfig, "cannot inspect output %s", output)
	}

	return plan, nil
}

// DefaultOutput returns the output path used when none is given
func DefaultOutput(parent, stem string, mode Mode) string {
	if mode == ModeICO {
		return filepath.Join(parent, stem+IconExtension)
	}
	return filepath.Join(parent, stem)
}

// splitInput returns the directory holding input and its stem
func splitInput(input string) (string, string, error) {
	base := filepath.Base(input)
	if base == string(filepath.Separator) || base == "." || base == ".." {
		return "", "", errors.Newf(errors.ErrConfig, "can't get file stem of %s", input).
			WithDetail("input", input)
	}

	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		// dotfile such as ".icons"
		stem = base
	}
	return filepath.Dir(input), stem, nil
}

func inferMode(fsys filesystem.FS, input string) (Mode, error) {
	info, err := fsys.Stat(input)
	if err != nil {
		return ModeAuto, errors.Wrapf(err, errors.ErrConfig, "can't read input %s", input)
	}

	if info.IsDir() {
		return ModeICO, nil
	}
	if info.Mode().IsRegular() && strings.EqualFold(filepath.Ext(input), IconExtension) {
		return ModePNG, nil
	}
	return ModeAuto, errors.Newf(errors.ErrConfig,
		"can't infer conversion for %s: expected a folder or an %s file, use --convert", input, IconExtension).
		WithDetail("input", input)
}
