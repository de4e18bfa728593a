package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// hashChunkSize is the read size used when streaming data through a digest
const hashChunkSize = 8192

// SHA256Reader streams a reader through SHA-256 in fixed-size chunks and
// returns the hex-encoded digest
func SHA256Reader(r io.Reader) (string, error) {
	h := sha256.New()

	buf := make([]byte, hashChunkSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
