package helpers

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// SHA256 returns the hex digest of input.
func SHA256(input string) string {
	return SHA256Bytes([]byte(input))
}

// SHA256Bytes returns the hex digest of input.
func SHA256Bytes(input []byte) string {
	hash := sha256.Sum256(input)
	return hex.EncodeToString(hash[:])
}

// SHA256Reader returns the hex digest of everything read from reader.
func SHA256Reader(reader io.Reader) (string, error) {
	hash := sha256.New()
	_, err := io.Copy(hash, reader)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// ShortSHA256 returns the first n hex characters of the digest of input,
// used for source URLs and executable unit ids.
func ShortSHA256(input string, n int) string {
	digest := SHA256(input)
	if n <= 0 || n > len(digest) {
		return digest
	}
	return digest[:n]
}
