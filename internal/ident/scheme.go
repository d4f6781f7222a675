package ident

import (
	"crypto/sha1"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
)

// SchemeNamespace is the name-based UUID namespace scheme identities are hashed under.
var SchemeNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// schemeIDVersion is written to the version nibble of derived scheme identities.
// It is not the RFC 4122 name-based SHA-1 version (5).
const schemeIDVersion = 0xa

// SchemeID derives the identity of the dictionary namespace named by uri:
// SHA-1 over the namespace bytes followed by the ASCII bytes of uri, with the
// version nibble set to 0xa and the RFC 4122 variant bits.
//
// uri must be ASCII; callers validate it first. A non-ASCII uri panics.
func SchemeID(uri string) uuid.UUID {
	if !IsASCII(uri) {
		panic(fmt.Sprintf("ident: scheme URI %q is not ASCII", uri))
	}
	return uuid.NewHash(sha1.New(), SchemeNamespace, []byte(uri), schemeIDVersion)
}

// IsASCII reports whether s contains only 7-bit characters.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
