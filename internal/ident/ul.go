package ident

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ULPrefix is the fixed first four bytes of every SMPTE Universal Label.
var ULPrefix = [4]byte{0x06, 0x0e, 0x2b, 0x34}

const (
	ulURNPrefix = "urn:smpte:ul:"

	categoryOctet = 4
	registryOctet = 5
	versionOctet  = 7

	// categoryGroups is the category designator of group (set and pack) labels.
	categoryGroups = 0x02

	// normalizedGroupRegistry replaces the registry designator of group labels.
	normalizedGroupRegistry = 0x7f
)

// UL is a SMPTE Universal Label.
type UL [16]byte

// ULFromBytes copies a 16-byte slice into a UL.
func ULFromBytes(b []byte) (UL, error) {
	var u UL
	if len(b) != len(u) {
		return u, fmt.Errorf("universal label must be %d bytes, got %d", len(u), len(b))
	}
	copy(u[:], b)
	return u, nil
}

// MustParseUL is like ParseUL but panics on malformed input.
// Intended for package-level label constants.
func MustParseUL(s string) UL {
	u, err := ParseUL(s)
	if err != nil {
		panic(err)
	}
	return u
}

// ParseUL parses the URN form "urn:smpte:ul:060e2b34.01010101.0d010101.01010000".
// The urn prefix and the dot separators are optional.
func ParseUL(s string) (UL, error) {
	var u UL

	text := strings.TrimSpace(s)
	if len(text) >= len(ulURNPrefix) && strings.EqualFold(text[:len(ulURNPrefix)], ulURNPrefix) {
		text = text[len(ulURNPrefix):]
	}
	text = strings.ReplaceAll(text, ".", "")

	if len(text) != 2*len(u) {
		return u, fmt.Errorf("invalid universal label %q: expected 32 hex digits", s)
	}
	if _, err := hex.Decode(u[:], []byte(text)); err != nil {
		return u, fmt.Errorf("invalid universal label %q: %w", s, err)
	}
	return u, nil
}

// Bytes returns a copy of the label bytes.
func (u UL) Bytes() []byte {
	b := make([]byte, len(u))
	copy(b, u[:])
	return b
}

// HasPrefix reports whether the label starts with the SMPTE UL prefix.
func (u UL) HasPrefix() bool {
	return u[0] == ULPrefix[0] && u[1] == ULPrefix[1] && u[2] == ULPrefix[2] && u[3] == ULPrefix[3]
}

// Category returns the category designator (byte 5 in SMPTE 1-based numbering).
func (u UL) Category() byte { return u[categoryOctet] }

// RegistryDesignator returns the registry designator (byte 6 in SMPTE numbering).
func (u UL) RegistryDesignator() byte { return u[registryOctet] }

// Version returns the registry version byte (byte 8 in SMPTE numbering).
func (u UL) Version() byte { return u[versionOctet] }

// IsGroup reports whether the label identifies a group (set or pack).
func (u UL) IsGroup() bool { return u[categoryOctet] == categoryGroups }

// WithVersion returns a copy of the label with the version byte replaced.
func (u UL) WithVersion(v byte) UL {
	u[versionOctet] = v
	return u
}

// WithRegistryDesignator returns a copy of the label with the registry designator replaced.
func (u UL) WithRegistryDesignator(g byte) UL {
	u[registryOctet] = g
	return u
}

// String returns the URN form of the label.
func (u UL) String() string {
	var b strings.Builder
	b.Grow(len(ulURNPrefix) + 35)
	b.WriteString(ulURNPrefix)
	for i := 0; i < len(u); i += 4 {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(hex.EncodeToString(u[i : i+4]))
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (u UL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UL) UnmarshalText(text []byte) error {
	parsed, err := ParseUL(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
