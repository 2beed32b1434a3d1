package paths

import (
	"strings"

	"github.com/arthur-debert/pngico/pkg/errors"
)

// ValidatePath rejects paths no filesystem call should be made with
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrConfig, "path cannot be empty")
	}

	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrConfig, "path contains null bytes")
	}

	// Common filesystem limit
	if len(path) > 4096 {
		return errors.New(errors.ErrConfig, "path exceeds maximum length")
	}

	return nil
}
