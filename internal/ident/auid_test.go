package ident

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAUID_FromUL(t *testing.T) {
	u := MustParseUL(instanceUIDLabel)
	a := NewAUIDFromUL(u)

	assert.True(t, a.IsUL())
	got, ok := a.UL()
	require.True(t, ok)
	assert.Equal(t, u, got)

	_, ok = a.UUID()
	assert.False(t, ok)
	assert.Equal(t, instanceUIDLabel, a.String())
}

func TestAUID_FromUUID_HalfSwapped(t *testing.T) {
	id := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	a := NewAUIDFromUUID(id)

	assert.False(t, a.IsUL())
	assert.Equal(t, byte(0xa7), a[0], "UUID byte 8 leads the AUID")
	assert.Equal(t, byte(0x55), a[8])

	got, ok := a.UUID()
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = a.UL()
	assert.False(t, ok)
	assert.Equal(t, "urn:uuid:550e8400-e29b-41d4-a716-446655440000", a.String())
}

func TestParseAUID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantUL  bool
		wantErr bool
	}{
		{"ul", instanceUIDLabel, true, false},
		{"uuid", "urn:uuid:550e8400-e29b-41d4-a716-446655440000", false, false},
		{"upper case uuid urn", "URN:UUID:550E8400-E29B-41D4-A716-446655440000", false, false},
		{"missing prefix", "550e8400-e29b-41d4-a716-446655440000", false, true},
		{"bad uuid", "urn:uuid:550e8400", false, true},
		{"bad ul", "urn:smpte:ul:060e2b34", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseAUID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUL, a.IsUL())
		})
	}
}

func TestAUID_TextMarshaling(t *testing.T) {
	for _, s := range []string{instanceUIDLabel, "urn:uuid:550e8400-e29b-41d4-a716-446655440000"} {
		a := MustParseAUID(s)
		text, err := a.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, s, string(text))

		var back AUID
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, a, back)
	}
}

func TestAUID_IsZero(t *testing.T) {
	assert.True(t, AUID{}.IsZero())
	assert.False(t, MustParseAUID(instanceUIDLabel).IsZero())
}
