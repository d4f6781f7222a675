package checksum

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// Calculator computes content fingerprints.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of content with normalized line endings.
	CalculateNormalized(content []byte) string
}

// SHA256 implements Calculator using SHA-256.
// It is a zero-size type and is safe for concurrent use.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of content after line-ending normalization.
func (c SHA256) CalculateNormalized(content []byte) string {
	return c.CalculateRaw(normalizeLineEndings(content))
}

var (
	crlf = []byte("\r\n")
	cr   = []byte("\r")
	lf   = []byte("\n")
)

func normalizeLineEndings(content []byte) []byte {
	if bytes.IndexByte(content, '\r') < 0 {
		return content
	}
	content = bytes.ReplaceAll(content, crlf, lf)
	return bytes.ReplaceAll(content, cr, lf)
}
