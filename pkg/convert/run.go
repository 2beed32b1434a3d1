package convert

import (
	"github.com/arthur-debert/pngico/pkg/config"
	"github.com/arthur-debert/pngico/pkg/errors"
	"github.com/arthur-debert/pngico/pkg/filesystem"
	"github.com/arthur-debert/pngico/pkg/paths"
	"github.com/arthur-debert/pngico/pkg/ui"
)

// Run executes a resolved plan in the direction it names
func Run(fsys filesystem.FS, plan paths.Plan, cfg *config.Config, reporter ui.Reporter) (int, error) {
	switch plan.Mode {
	case paths.ModeICO:
		opts, err := NewEncodeOptions(cfg, plan.Input, plan.Output, reporter)
		if err != nil {
			return 0, err
		}
		return CreateICO(fsys, opts)
	case paths.ModePNG:
		opts, err := NewDecodeOptions(cfg, plan.Input, plan.Output, reporter)
		if err != nil {
			return 0, err
		}
		return ExtractPNGs(fsys, opts)
	default:
		return 0, errors.Newf(errors.ErrInternal, "unresolved conversion mode %s", plan.Mode)
	}
}
