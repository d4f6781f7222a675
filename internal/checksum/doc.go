// Package checksum fingerprints dictionary sources.
//
// Two fingerprints are offered:
//
//   - Raw: hash of the exact content
//   - Normalized: hash after line endings are normalized the way an XML
//     parser normalizes them (CRLF and lone CR become LF)
//
// The normalized fingerprint keys the snapshot cache, so a document checked
// out with different line endings reuses the same compiled snapshot.
//
//	calculator := checksum.New()
//	key := calculator.CalculateNormalized(content)
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
