package ident

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const uuidURNPrefix = "urn:uuid:"

// AUID is a 16-byte identifier holding either a UL or a UUID.
//
// UUIDs are stored half-swapped: bytes 8..15 of the UUID come first. Since
// ULs start with 0x06 and UUIDs carry the RFC 4122 variant in byte 8, the
// top bit of the first byte is clear for ULs and set for UUIDs.
type AUID [16]byte

// NewAUIDFromUL wraps a UL.
func NewAUIDFromUL(u UL) AUID {
	return AUID(u)
}

// NewAUIDFromUUID wraps a UUID.
func NewAUIDFromUUID(id uuid.UUID) AUID {
	var a AUID
	copy(a[:8], id[8:])
	copy(a[8:], id[:8])
	return a
}

// MustParseAUID is like ParseAUID but panics on malformed input.
func MustParseAUID(s string) AUID {
	a, err := ParseAUID(s)
	if err != nil {
		panic(err)
	}
	return a
}

// ParseAUID parses either "urn:smpte:ul:..." or "urn:uuid:...".
func ParseAUID(s string) (AUID, error) {
	text := strings.TrimSpace(s)
	lower := strings.ToLower(text)

	switch {
	case strings.HasPrefix(lower, ulURNPrefix):
		u, err := ParseUL(text)
		if err != nil {
			return AUID{}, err
		}
		return NewAUIDFromUL(u), nil
	case strings.HasPrefix(lower, uuidURNPrefix):
		id, err := uuid.Parse(text)
		if err != nil {
			return AUID{}, fmt.Errorf("invalid AUID %q: %w", s, err)
		}
		return NewAUIDFromUUID(id), nil
	default:
		return AUID{}, fmt.Errorf("invalid AUID %q: expected urn:smpte:ul: or urn:uuid: prefix", s)
	}
}

// IsUL reports whether the AUID holds a UL.
func (a AUID) IsUL() bool {
	return a[0]&0x80 == 0
}

// IsZero reports whether all bytes are zero.
func (a AUID) IsZero() bool {
	return a == AUID{}
}

// UL returns the wrapped label. ok is false when the AUID holds a UUID.
func (a AUID) UL() (u UL, ok bool) {
	if !a.IsUL() {
		return UL{}, false
	}
	return UL(a), true
}

// UUID returns the wrapped UUID. ok is false when the AUID holds a UL.
func (a AUID) UUID() (id uuid.UUID, ok bool) {
	if a.IsUL() {
		return uuid.Nil, false
	}
	copy(id[:8], a[8:])
	copy(id[8:], a[:8])
	return id, true
}

// String returns the URN form of the wrapped identifier.
func (a AUID) String() string {
	if u, ok := a.UL(); ok {
		return u.String()
	}
	id, _ := a.UUID()
	return id.URN()
}

// MarshalText implements encoding.TextMarshaler.
func (a AUID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *AUID) UnmarshalText(text []byte) error {
	parsed, err := ParseAUID(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
