package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Calculator computes content fingerprints.
type Calculator interface {
	// Calculate returns the hex digest of content.
	Calculate(content []byte) string
}

// SHA256 implements Calculator using SHA-256 of the raw bytes.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// Calculate computes SHA-256 of content.
func (SHA256) Calculate(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

var _ Calculator = SHA256{}
