package definition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/regxml/internal/definition"
	"github.com/vvka-141/regxml/internal/testing/fixtures"
)

func TestAllKinds_CoversEveryKind(t *testing.T) {
	seen := make(map[definition.Kind]bool)
	for _, d := range fixtures.AllKinds() {
		seen[definition.KindOf(d)] = true
	}
	for _, k := range definition.Kinds() {
		assert.True(t, seen[k], "fixture set is missing %s", k)
	}
}

func TestKind_TagNames(t *testing.T) {
	tests := []struct {
		kind definition.Kind
		tag  string
	}{
		{definition.KindClass, "ClassDefinition"},
		{definition.KindProperty, "PropertyDefinition"},
		{definition.KindPropertyAlias, "PropertyAliasDefinition"},
		{definition.KindEnumerationType, "TypeEnumerationDefinition"},
		{definition.KindRecordType, "TypeRecordDefinition"},
		{definition.KindStrongReferenceType, "TypeStrongReferenceDefinition"},
		{definition.KindWeakReferenceType, "TypeWeakReferenceDefinition"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.tag, tt.kind.TagName())
			k, ok := definition.KindForTag(tt.tag)
			require.True(t, ok)
			assert.Equal(t, tt.kind, k)
		})
	}

	_, ok := definition.KindForTag("TypeUnknownDefinition")
	assert.False(t, ok)
	assert.Equal(t, "", definition.Kind(99).TagName())
	assert.Equal(t, "Kind(99)", definition.Kind(99).String())
}

func TestNew_MatchesKind(t *testing.T) {
	for _, k := range definition.Kinds() {
		d := definition.New(k)
		require.NotNil(t, d, "kind %s", k)
		assert.Equal(t, k, definition.KindOf(d))
	}
	assert.Nil(t, definition.New(definition.Kind(-1)))
}

func TestMeta_Accessors(t *testing.T) {
	d := &definition.OpaqueTypeDefinition{
		Meta: definition.Meta{ID: fixtures.AUID(fixtures.CategoryType, 0x42), Sym: "Opaque", Name: "Opaque Type"},
	}

	assert.Equal(t, fixtures.AUID(fixtures.CategoryType, 0x42), d.Identification())
	assert.Equal(t, "Opaque", d.Symbol())
	assert.Equal(t, "Opaque Type", d.Info().Name)
}

func TestClone_IsDeep(t *testing.T) {
	for _, d := range fixtures.AllKinds() {
		c := definition.Clone(d)
		assert.Equal(t, d, c)
		assert.NotSame(t, d, c)
	}

	enum := &definition.EnumerationTypeDefinition{Elements: fixtures.YesNoElements()}
	c := definition.Clone(enum).(*definition.EnumerationTypeDefinition)
	c.Elements[0].Name = "Oui"
	assert.Equal(t, "Yes", enum.Elements[0].Name)

	parent := fixtures.InterchangeObjectID
	class := &definition.ClassDefinition{ParentClass: &parent}
	cc := definition.Clone(class).(*definition.ClassDefinition)
	require.NotNil(t, cc.ParentClass)
	assert.NotSame(t, class.ParentClass, cc.ParentClass)
}

func TestEnumeration_Lookups(t *testing.T) {
	enum := &definition.EnumerationTypeDefinition{Elements: fixtures.YesNoElements()}

	e, ok := enum.ElementByValue(0)
	require.True(t, ok)
	assert.Equal(t, "No", e.Name)

	e, ok = enum.ElementByName("Yes")
	require.True(t, ok)
	assert.Equal(t, 1, e.Value)

	_, ok = enum.ElementByValue(7)
	assert.False(t, ok)
	_, ok = enum.ElementByName("Maybe")
	assert.False(t, ok)
}

func TestReferences(t *testing.T) {
	record := &definition.RecordTypeDefinition{
		Members: []definition.RecordMember{
			{Name: "Numerator", Type: fixtures.UInt32ID},
			{Name: "Denominator", Type: fixtures.UInt8ID},
		},
	}
	assert.Equal(t, []definition.Reference{
		{Field: "Members/Numerator", Target: fixtures.UInt32ID},
		{Field: "Members/Denominator", Target: fixtures.UInt8ID},
	}, definition.References(record))

	assert.Empty(t, definition.References(&definition.StreamTypeDefinition{}))
	assert.Empty(t, definition.References(&definition.ClassDefinition{}), "root class has no parent")
}

func TestMemberOf(t *testing.T) {
	prop := &definition.PropertyDefinition{MemberOf: fixtures.InterchangeObjectID}
	class, ok := definition.MemberOf(prop)
	require.True(t, ok)
	assert.Equal(t, fixtures.InterchangeObjectID, class)

	alias := &definition.PropertyAliasDefinition{}
	alias.MemberOf = fixtures.IdentificationID
	class, ok = definition.MemberOf(alias)
	require.True(t, ok)
	assert.Equal(t, fixtures.IdentificationID, class)

	_, ok = definition.MemberOf(&definition.ClassDefinition{})
	assert.False(t, ok)
}

type silentDefinition struct {
	definition.Meta
}

func (*silentDefinition) Accept(definition.Visitor) error { return nil }

func TestKindOf_NonDispatchingDefinition(t *testing.T) {
	k := definition.KindOf(&silentDefinition{})

	assert.False(t, k.Valid())
	assert.NotEqual(t, definition.KindClass, k)
	assert.Equal(t, "Kind(-1)", k.String())
}
