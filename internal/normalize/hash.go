package normalize

import (
	"crypto/sha256"
	"fmt"
)

// BytesHash computes the hex-encoded SHA-256 of an uploaded workbook.
func BytesHash(data []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}
