package hashutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	assert.Equal(t,
		"sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		Checksum(nil))

	sum := Checksum([]byte("\x00\x00\x01\x00"))
	assert.True(t, strings.HasPrefix(sum, "sha256:"))
	assert.Len(t, sum, 71)
	assert.NotEqual(t, Checksum([]byte("a")), Checksum([]byte("b")))
}
