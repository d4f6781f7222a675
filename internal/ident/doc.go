// Package ident provides the 16-byte identifiers used by SMPTE metadata
// dictionaries and the rules for comparing them.
//
// # Identifier Kinds
//
//   - UL: a SMPTE Universal Label (ST 298), always starting 06.0e.2b.34
//   - AUID: either a UL or a UUID, stored in a single 16-byte value
//
// UUIDs are held inside an AUID with their two 8-byte halves swapped
// (ST 377-1), so the top bit of the first byte tells the two kinds apart.
//
// # Normalization
//
// Two ULs that differ only in their version byte, or two group ULs that
// differ only in their registry designator byte, name the same entity.
// NormalizeUL and NormalizeAUID map such labels to one canonical value;
// every dictionary insert and lookup goes through them. UUIDs are never
// normalized.
//
// # Scheme Identity
//
// SchemeID derives the identity of a dictionary namespace from its URI.
// The result is deterministic and depends on nothing but the URI text.
package ident
