package ident

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// randomLabels returns labels with the SMPTE prefix and random remaining bytes,
// half of them forced into the groups category.
func randomLabels(n int) []UL {
	rng := rand.New(rand.NewSource(336))
	labels := make([]UL, n)
	for i := range labels {
		var u UL
		copy(u[:4], ULPrefix[:])
		rng.Read(u[4:])
		if i%2 == 0 {
			u[categoryOctet] = categoryGroups
		}
		labels[i] = u
	}
	return labels
}

func TestNormalizeUL_ZeroesVersion(t *testing.T) {
	u := MustParseUL("urn:smpte:ul:060e2b34.01010105.01011502.00000000")
	n := NormalizeUL(u)

	assert.Equal(t, byte(0), n.Version())
	assert.Equal(t, byte(0x05), u.Version(), "input must not change")
}

func TestNormalizeUL_GroupRegistry(t *testing.T) {
	group := MustParseUL("urn:smpte:ul:060e2b34.02530101.0d010101.01012f00")
	assert.Equal(t, "urn:smpte:ul:060e2b34.027f0100.0d010101.01012f00", NormalizeUL(group).String())

	element := MustParseUL("urn:smpte:ul:060e2b34.01530101.0d010101.01012f00")
	assert.Equal(t, byte(0x53), NormalizeUL(element).RegistryDesignator())
}

func TestNormalizeUL_Idempotent(t *testing.T) {
	for _, u := range randomLabels(256) {
		once := NormalizeUL(u)
		assert.Equal(t, once, NormalizeUL(once), "label %s", u)
	}
}

func TestNormalizeUL_VersionInsensitive(t *testing.T) {
	for _, u := range randomLabels(64) {
		want := NormalizeUL(u)
		for v := 0; v < 256; v++ {
			assert.Equal(t, want, NormalizeUL(u.WithVersion(byte(v))))
		}
	}
}

func TestNormalizeUL_GroupCollapse(t *testing.T) {
	for _, u := range randomLabels(64) {
		want := NormalizeUL(u)
		for g := 0; g < 256; g++ {
			variant := u.WithRegistryDesignator(byte(g))
			if u.IsGroup() {
				assert.Equal(t, want, NormalizeUL(variant))
			} else if byte(g) != u.RegistryDesignator() {
				assert.NotEqual(t, want, NormalizeUL(variant))
			}
		}
	}
}

func TestNormalizeAUID(t *testing.T) {
	u := MustParseUL("urn:smpte:ul:060e2b34.01010107.01011502.00000000")
	assert.Equal(t, NewAUIDFromUL(NormalizeUL(u)), NormalizeAUID(NewAUIDFromUL(u)))

	id := NewAUIDFromUUID(uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"))
	assert.Equal(t, id, NormalizeAUID(id), "UUIDs are never normalized")
}
