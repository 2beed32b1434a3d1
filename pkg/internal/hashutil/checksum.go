// Package hashutil computes the content digests written to the logs for
// every file pngico produces.
package hashutil

import (
	"crypto/sha256"
	"fmt"
)

// Checksum returns the SHA256 checksum of data as "sha256:<hex>"
func Checksum(data []byte) string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256(data))
}
