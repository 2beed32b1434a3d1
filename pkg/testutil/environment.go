package testutil

import (
	"testing"

	"github.com/adrg/xdg"
)

// IsolateXDG points the XDG config and state homes at fresh temp
// directories so tests never read or write the user's files.
func IsolateXDG(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
}
