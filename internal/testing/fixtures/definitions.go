package fixtures

import (
	"github.com/google/uuid"

	"github.com/vvka-141/regxml/internal/definition"
	"github.com/vvka-141/regxml/internal/ident"
)

// SchemeURI is the scheme used by dictionary fixtures.
const SchemeURI = "http://www.smpte-ra.org/reg/335/2012"

// Categories of fixture labels.
const (
	CategoryElement byte = 0x01
	CategoryGroup   byte = 0x02
	CategoryType    byte = 0x04
)

// Label returns a fixture UL in category with item as its distinguishing byte.
// Group labels carry registry designator 0x53, everything else 0x01.
func Label(category, item byte) ident.UL {
	registry := byte(0x01)
	if category == CategoryGroup {
		registry = 0x53
	}
	return ident.UL{0x06, 0x0e, 0x2b, 0x34, category, registry, 0x01, 0x01, 0x0f, 0x01, item, 0, 0, 0, 0, 0}
}

// AUID wraps Label.
func AUID(category, item byte) ident.AUID {
	return ident.NewAUIDFromUL(Label(category, item))
}

// StreamTypeUUID identifies the stream type fixture, the only one keyed by a UUID.
var StreamTypeUUID = uuid.MustParse("4d8c2b66-0c57-4a38-9c8e-2f35f4e8a6d1")

// Fixture identities shared by AllKinds.
var (
	InterchangeObjectID = AUID(CategoryGroup, 0x01)
	IdentificationID    = AUID(CategoryGroup, 0x02)
	InstanceIDID        = AUID(CategoryElement, 0x01)
	GenerationIDID      = AUID(CategoryElement, 0x02)
	UInt8ID             = AUID(CategoryType, 0x01)
	UInt32ID            = AUID(CategoryType, 0x02)
	CharacterID         = AUID(CategoryType, 0x03)
	BooleanID           = AUID(CategoryType, 0x05)
	StrongRefID         = AUID(CategoryType, 0x10)
)

// YesNoElements are the elements of the Boolean enumeration fixture.
func YesNoElements() []definition.EnumerationElement {
	return []definition.EnumerationElement{
		{Name: "Yes", Value: 1, Description: ""},
		{Name: "No", Value: 0, Description: ""},
	}
}

// AllKinds returns one definition of every kind. References between them resolve
// within the returned set.
func AllKinds() []definition.Definition {
	root := InterchangeObjectID
	return []definition.Definition{
		&definition.ClassDefinition{
			Meta:       definition.Meta{ID: InterchangeObjectID, Sym: "InterchangeObject", Name: "Interchange Object"},
			IsConcrete: false,
		},
		&definition.ClassDefinition{
			Meta:        definition.Meta{ID: IdentificationID, Sym: "Identification", Description: "Application that wrote the file"},
			ParentClass: &root,
			IsConcrete:  true,
		},
		&definition.PropertyDefinition{
			Meta:                definition.Meta{ID: InstanceIDID, Sym: "InstanceID"},
			Type:                UInt32ID,
			MemberOf:            InterchangeObjectID,
			LocalIdentification: 0x3c0a,
			IsUniqueIdentifier:  true,
		},
		&definition.PropertyAliasDefinition{
			PropertyDefinition: definition.PropertyDefinition{
				Meta:                definition.Meta{ID: GenerationIDID, Sym: "GenerationID"},
				Type:                UInt32ID,
				MemberOf:            IdentificationID,
				LocalIdentification: 0x3c09,
				IsOptional:          true,
			},
			OriginalProperty: InstanceIDID,
		},
		&definition.IntegerTypeDefinition{
			Meta: definition.Meta{ID: UInt8ID, Sym: "UInt8"},
			Size: 1,
		},
		&definition.IntegerTypeDefinition{
			Meta: definition.Meta{ID: UInt32ID, Sym: "UInt32"},
			Size: 4,
		},
		&definition.CharacterTypeDefinition{
			Meta: definition.Meta{ID: CharacterID, Sym: "Character"},
		},
		&definition.StringTypeDefinition{
			Meta:        definition.Meta{ID: AUID(CategoryType, 0x04), Sym: "UTF16String"},
			ElementType: CharacterID,
		},
		&definition.EnumerationTypeDefinition{
			Meta:        definition.Meta{ID: BooleanID, Sym: "Boolean"},
			ElementType: UInt8ID,
			Elements:    YesNoElements(),
		},
		&definition.ExtendibleEnumerationTypeDefinition{
			Meta: definition.Meta{ID: AUID(CategoryType, 0x06), Sym: "ColorPrimaries"},
		},
		&definition.FixedArrayTypeDefinition{
			Meta:         definition.Meta{ID: AUID(CategoryType, 0x07), Sym: "UInt8Array8"},
			ElementType:  UInt8ID,
			ElementCount: 8,
		},
		&definition.IndirectTypeDefinition{
			Meta: definition.Meta{ID: AUID(CategoryType, 0x08), Sym: "Indirect"},
		},
		&definition.OpaqueTypeDefinition{
			Meta: definition.Meta{ID: AUID(CategoryType, 0x09), Sym: "Opaque"},
		},
		&definition.RecordTypeDefinition{
			Meta: definition.Meta{ID: AUID(CategoryType, 0x0a), Sym: "Rational"},
			Members: []definition.RecordMember{
				{Name: "Numerator", Type: UInt32ID},
				{Name: "Denominator", Type: UInt32ID},
			},
		},
		&definition.RenameTypeDefinition{
			Meta:        definition.Meta{ID: AUID(CategoryType, 0x0b), Sym: "VersionType"},
			RenamedType: UInt32ID,
		},
		&definition.SetTypeDefinition{
			Meta:        definition.Meta{ID: AUID(CategoryType, 0x0c), Sym: "UInt32Set"},
			ElementType: UInt32ID,
		},
		&definition.StreamTypeDefinition{
			Meta: definition.Meta{ID: ident.NewAUIDFromUUID(StreamTypeUUID), Sym: "Stream"},
		},
		&definition.StrongReferenceTypeDefinition{
			Meta:           definition.Meta{ID: StrongRefID, Sym: "IdentificationStrongReference"},
			ReferencedType: IdentificationID,
		},
		&definition.VariableArrayTypeDefinition{
			Meta:        definition.Meta{ID: AUID(CategoryType, 0x11), Sym: "IdentificationStrongReferenceVariableArray"},
			ElementType: StrongRefID,
		},
		&definition.WeakReferenceTypeDefinition{
			Meta:           definition.Meta{ID: AUID(CategoryType, 0x12), Sym: "IdentificationWeakReference"},
			ReferencedType: IdentificationID,
			TargetSet:      []ident.AUID{InstanceIDID},
		},
	}
}
