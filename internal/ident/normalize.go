package ident

// NormalizeUL returns the canonical form of a label used for identity
// comparison: the version byte is zeroed and, for group labels, the
// registry designator is set to 0x7f.
func NormalizeUL(u UL) UL {
	n := u.WithVersion(0)
	if u.IsGroup() {
		n = n.WithRegistryDesignator(normalizedGroupRegistry)
	}
	return n
}

// NormalizeAUID normalizes a wrapped UL and returns UUIDs unchanged.
func NormalizeAUID(a AUID) AUID {
	if u, ok := a.UL(); ok {
		return NewAUIDFromUL(NormalizeUL(u))
	}
	return a
}
