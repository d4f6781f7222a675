package dict

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/regxml/internal/definition"
	"github.com/vvka-141/regxml/internal/ident"
	"github.com/vvka-141/regxml/internal/testing/fixtures"
	"github.com/vvka-141/regxml/pkg/regxml"
)

func newFixtureDictionary(t *testing.T) *MetaDictionary {
	t.Helper()
	d, err := New(fixtures.SchemeURI, fixtures.AllKinds(), WithDescription("fixture"))
	require.NoError(t, err)
	return d
}

func TestNew_AllKinds(t *testing.T) {
	d := newFixtureDictionary(t)

	assert.Equal(t, fixtures.SchemeURI, d.SchemeURI())
	assert.Equal(t, ident.SchemeID(fixtures.SchemeURI), d.SchemeID())
	assert.Equal(t, "fixture", d.Description())
	assert.Equal(t, len(fixtures.AllKinds()), d.Len())
}

func TestNew_PreservesDeclarationOrder(t *testing.T) {
	d := newFixtureDictionary(t)

	var symbols []string
	for _, def := range d.Definitions() {
		symbols = append(symbols, def.Symbol())
	}
	var want []string
	for _, def := range fixtures.AllKinds() {
		want = append(want, def.Symbol())
	}
	assert.Equal(t, want, symbols)
}

func TestNew_CopiesInput(t *testing.T) {
	defs := fixtures.AllKinds()
	d, err := New(fixtures.SchemeURI, defs)
	require.NoError(t, err)

	defs[0].(*definition.ClassDefinition).Sym = "Changed"

	_, ok := d.DefinitionBySymbol("Changed")
	assert.False(t, ok)
	def, ok := d.Definition(fixtures.InterchangeObjectID)
	require.True(t, ok)
	assert.Equal(t, "InterchangeObject", def.Symbol())
}

func TestDefinitions_ReturnsCopy(t *testing.T) {
	d := newFixtureDictionary(t)

	defs := d.Definitions()
	defs[0] = nil

	assert.NotNil(t, d.Definitions()[0])
}

func TestLookups_ReturnCopies(t *testing.T) {
	d := newFixtureDictionary(t)

	def, ok := d.DefinitionBySymbol("Boolean")
	require.True(t, ok)
	enum := def.(*definition.EnumerationTypeDefinition)
	enum.Sym = "Renamed"
	enum.ID = fixtures.AUID(fixtures.CategoryType, 0xee)
	enum.Elements[0].Name = "Maybe"

	again, ok := d.DefinitionBySymbol("Boolean")
	require.True(t, ok)
	assert.Equal(t, fixtures.BooleanID, again.Identification())
	assert.Equal(t, "Yes", again.(*definition.EnumerationTypeDefinition).Elements[0].Name)
	_, ok = d.DefinitionBySymbol("Renamed")
	assert.False(t, ok)

	listed := d.Definitions()[1].(*definition.ClassDefinition)
	require.NotNil(t, listed.ParentClass)
	*listed.ParentClass = fixtures.IdentificationID
	class, ok := d.Definition(fixtures.IdentificationID)
	require.True(t, ok)
	assert.Equal(t, fixtures.InterchangeObjectID, *class.(*definition.ClassDefinition).ParentClass)

	root, ok := d.Definition(fixtures.InterchangeObjectID)
	require.True(t, ok)
	member := d.MembersOf(root.(*definition.ClassDefinition))[0].(*definition.PropertyDefinition)
	member.Sym = "Changed"
	members := d.MembersOf(root.(*definition.ClassDefinition))
	require.Len(t, members, 1)
	assert.Equal(t, "InstanceID", members[0].Symbol())
}

func TestNew_DuplicateAUIDAfterNormalization(t *testing.T) {
	label := fixtures.Label(fixtures.CategoryType, 0x01)
	defs := []definition.Definition{
		&definition.OpaqueTypeDefinition{Meta: definition.Meta{ID: ident.NewAUIDFromUL(label.WithVersion(0x01)), Sym: "A"}},
		&definition.OpaqueTypeDefinition{Meta: definition.Meta{ID: ident.NewAUIDFromUL(label.WithVersion(0x0d)), Sym: "B"}},
	}

	d, err := New(fixtures.SchemeURI, defs)
	require.Error(t, err)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, regxml.ErrDuplicateIdentity)
	assert.ErrorIs(t, err, regxml.ErrDuplicateDefinition)
	assert.NotErrorIs(t, err, regxml.ErrDuplicateSymbol)

	var dup *DuplicateDefinitionError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, 0, dup.FirstIndex)
	assert.Equal(t, 1, dup.Index)
}

func TestNew_DuplicateGroupAUIDAcrossRegistryDesignators(t *testing.T) {
	label := fixtures.Label(fixtures.CategoryGroup, 0x07)
	defs := []definition.Definition{
		&definition.ClassDefinition{Meta: definition.Meta{ID: ident.NewAUIDFromUL(label.WithRegistryDesignator(0x53)), Sym: "A"}},
		&definition.ClassDefinition{Meta: definition.Meta{ID: ident.NewAUIDFromUL(label.WithRegistryDesignator(0x13)), Sym: "B"}},
	}

	_, err := New(fixtures.SchemeURI, defs)
	assert.ErrorIs(t, err, regxml.ErrDuplicateIdentity)
}

func TestNew_DuplicateSymbol(t *testing.T) {
	defs := []definition.Definition{
		&definition.OpaqueTypeDefinition{Meta: definition.Meta{ID: fixtures.AUID(fixtures.CategoryType, 0x01), Sym: "Same"}},
		&definition.StreamTypeDefinition{Meta: definition.Meta{ID: fixtures.AUID(fixtures.CategoryType, 0x02), Sym: "Same"}},
	}

	d, err := New(fixtures.SchemeURI, defs)
	require.Error(t, err)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, regxml.ErrDuplicateSymbol)
	assert.NotErrorIs(t, err, regxml.ErrDuplicateIdentity)
	assert.Contains(t, err.Error(), "duplicate Symbol: Same")
}

func TestNew_ReportsBothCollisions(t *testing.T) {
	id := fixtures.AUID(fixtures.CategoryType, 0x01)
	defs := []definition.Definition{
		&definition.OpaqueTypeDefinition{Meta: definition.Meta{ID: id, Sym: "Same"}},
		&definition.OpaqueTypeDefinition{Meta: definition.Meta{ID: id, Sym: "Same"}},
	}

	_, err := New(fixtures.SchemeURI, defs)
	assert.ErrorIs(t, err, regxml.ErrDuplicateIdentity)
	assert.ErrorIs(t, err, regxml.ErrDuplicateSymbol)
}

func TestNew_NilDefinition(t *testing.T) {
	_, err := New(fixtures.SchemeURI, []definition.Definition{nil})
	assert.ErrorIs(t, err, regxml.ErrMalformedInput)
}

func TestNew_InvalidSchemeURI(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{"empty", ""},
		{"non-ascii", "http://example.com/schéma"},
		{"unparseable", "http://[::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.uri, fixtures.AllKinds())
			assert.ErrorIs(t, err, regxml.ErrInvalidSchemeURI)
			assert.ErrorIs(t, err, regxml.ErrMalformedInput)
		})
	}
}

func TestNew_EmptyDefinitionSet(t *testing.T) {
	d, err := New(fixtures.SchemeURI, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.Definitions())
}

func TestLookups(t *testing.T) {
	d := newFixtureDictionary(t)

	t.Run("by AUID ignores version", func(t *testing.T) {
		u, _ := fixtures.UInt8ID.UL()
		def, ok := d.Definition(ident.NewAUIDFromUL(u.WithVersion(0x0e)))
		require.True(t, ok)
		assert.Equal(t, "UInt8", def.Symbol())
	})

	t.Run("by UL", func(t *testing.T) {
		def, ok := d.DefinitionByUL(fixtures.Label(fixtures.CategoryType, 0x02).WithVersion(0x05))
		require.True(t, ok)
		assert.Equal(t, "UInt32", def.Symbol())
	})

	t.Run("by group UL with other registry designator", func(t *testing.T) {
		def, ok := d.DefinitionByUL(fixtures.Label(fixtures.CategoryGroup, 0x02).WithRegistryDesignator(0x13))
		require.True(t, ok)
		assert.Equal(t, "Identification", def.Symbol())
	})

	t.Run("by UUID", func(t *testing.T) {
		def, ok := d.Definition(ident.NewAUIDFromUUID(fixtures.StreamTypeUUID))
		require.True(t, ok)
		assert.Equal(t, definition.KindStreamType, definition.KindOf(def))
	})

	t.Run("by symbol is exact", func(t *testing.T) {
		_, ok := d.DefinitionBySymbol("Boolean")
		assert.True(t, ok)
		_, ok = d.DefinitionBySymbol("boolean")
		assert.False(t, ok)
	})

	t.Run("misses", func(t *testing.T) {
		_, ok := d.Definition(fixtures.AUID(fixtures.CategoryType, 0xee))
		assert.False(t, ok)
		_, ok = d.DefinitionByUL(fixtures.Label(fixtures.CategoryElement, 0xee))
		assert.False(t, ok)
		_, ok = d.DefinitionBySymbol("Missing")
		assert.False(t, ok)
	})
}

func TestMembersOf(t *testing.T) {
	d := newFixtureDictionary(t)

	root, ok := d.Definition(fixtures.InterchangeObjectID)
	require.True(t, ok)
	members := d.MembersOf(root.(*definition.ClassDefinition))
	require.Len(t, members, 1)
	assert.Equal(t, "InstanceID", members[0].Symbol())

	identification, ok := d.Definition(fixtures.IdentificationID)
	require.True(t, ok)
	members = d.MembersOf(identification.(*definition.ClassDefinition))
	require.Len(t, members, 1)
	assert.Equal(t, "GenerationID", members[0].Symbol())
}

func TestMembersOf_NormalizesMemberOf(t *testing.T) {
	classLabel := fixtures.Label(fixtures.CategoryGroup, 0x30)
	defs := []definition.Definition{
		&definition.ClassDefinition{Meta: definition.Meta{ID: ident.NewAUIDFromUL(classLabel), Sym: "Widget"}},
		&definition.PropertyDefinition{
			Meta:     definition.Meta{ID: fixtures.AUID(fixtures.CategoryElement, 0x30), Sym: "WidgetName"},
			MemberOf: ident.NewAUIDFromUL(classLabel.WithVersion(0x0c).WithRegistryDesignator(0x13)),
		},
	}
	d, err := New(fixtures.SchemeURI, defs)
	require.NoError(t, err)

	class, _ := d.Definition(ident.NewAUIDFromUL(classLabel))
	members := d.MembersOf(class.(*definition.ClassDefinition))
	require.Len(t, members, 1)
	assert.Equal(t, "WidgetName", members[0].Symbol())
}

func TestMembersOf_EmptyAndUnknown(t *testing.T) {
	d, err := New(fixtures.SchemeURI, []definition.Definition{
		&definition.ClassDefinition{Meta: definition.Meta{ID: fixtures.InterchangeObjectID, Sym: "Lonely"}},
	})
	require.NoError(t, err)

	class, _ := d.DefinitionBySymbol("Lonely")
	assert.Empty(t, d.MembersOf(class.(*definition.ClassDefinition)))
	assert.Empty(t, d.MembersOfID(fixtures.AUID(fixtures.CategoryGroup, 0x99)))
}

func TestMembersOf_ReturnsCopy(t *testing.T) {
	d := newFixtureDictionary(t)
	members := d.MembersOfID(fixtures.InterchangeObjectID)
	require.Len(t, members, 1)
	members[0] = nil

	assert.NotNil(t, d.MembersOfID(fixtures.InterchangeObjectID)[0])
}

func TestQualify(t *testing.T) {
	assert.Equal(t, "Foo", Qualify("", "Foo"))
	assert.Equal(t, "Bar Foo", Qualify("Bar", "Foo"))
}

func TestConcurrentReads(t *testing.T) {
	d := newFixtureDictionary(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, def := range d.Definitions() {
				if _, ok := d.Definition(def.Identification()); !ok {
					t.Errorf("lookup of %s failed", def.Symbol())
				}
				d.MembersOfID(def.Identification())
			}
		}()
	}
	wg.Wait()
}

func TestNew_DuplicateIndicesReferToInput(t *testing.T) {
	opaque := func(item byte, symbol string) definition.Definition {
		return &definition.OpaqueTypeDefinition{Meta: definition.Meta{ID: fixtures.AUID(fixtures.CategoryType, item), Sym: symbol}}
	}
	defs := []definition.Definition{
		opaque(0x01, "X"),
		opaque(0x01, "Y"),
		opaque(0x02, "Z"),
		opaque(0x02, "W"),
	}

	_, err := New(fixtures.SchemeURI, defs)
	require.Error(t, err)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	errs := joined.Unwrap()
	require.Len(t, errs, 2)

	var second *DuplicateDefinitionError
	require.True(t, errors.As(errs[1], &second))
	assert.Equal(t, 2, second.FirstIndex)
	assert.Equal(t, 3, second.Index)
}
