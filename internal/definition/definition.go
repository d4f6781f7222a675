package definition

import (
	"github.com/vvka-141/regxml/internal/ident"
)

// Definition is one registered element of a metadata dictionary.
type Definition interface {
	// Identification returns the AUID the definition is registered under.
	Identification() ident.AUID

	// Symbol returns the definition's symbol, unique within its dictionary.
	Symbol() string

	// Info returns a copy of the fields shared by all kinds.
	Info() Meta

	// Accept calls the visitor method matching the definition's kind.
	Accept(v Visitor) error

	sealed()
}

// Meta holds the fields shared by all definition kinds.
type Meta struct {
	ID          ident.AUID `xml:"Identification" cbor:"1,keyasint"`
	Sym         string     `xml:"Symbol" cbor:"2,keyasint"`
	Name        string     `xml:"Name,omitempty" cbor:"3,keyasint,omitempty"`
	Description string     `xml:"Description,omitempty" cbor:"4,keyasint,omitempty"`
}

func (m *Meta) Identification() ident.AUID { return m.ID }
func (m *Meta) Symbol() string             { return m.Sym }
func (m *Meta) Info() Meta                 { return *m }
func (m *Meta) sealed()                    {}

// ClassDefinition defines a class of objects (a set in KLV terms).
type ClassDefinition struct {
	Meta
	ParentClass *ident.AUID `xml:"ParentClass,omitempty" cbor:"10,keyasint,omitempty"`
	IsConcrete  bool        `xml:"IsConcrete" cbor:"11,keyasint"`
}

// PropertyDefinition defines a property of a class.
type PropertyDefinition struct {
	Meta
	Type                ident.AUID `xml:"Type" cbor:"10,keyasint"`
	MemberOf            ident.AUID `xml:"MemberOf" cbor:"11,keyasint"`
	LocalIdentification uint16     `xml:"LocalIdentification" cbor:"12,keyasint"`
	IsUniqueIdentifier  bool       `xml:"IsUniqueIdentifier,omitempty" cbor:"13,keyasint,omitempty"`
	IsOptional          bool       `xml:"IsOptional" cbor:"14,keyasint"`
}

// PropertyAliasDefinition defines a property that stands in for another one.
type PropertyAliasDefinition struct {
	PropertyDefinition
	OriginalProperty ident.AUID `xml:"OriginalProperty" cbor:"20,keyasint"`
}

// CharacterTypeDefinition defines a character type.
type CharacterTypeDefinition struct {
	Meta
}

// EnumerationElement is one named value of an enumeration.
type EnumerationElement struct {
	Name        string `xml:"Name" cbor:"1,keyasint"`
	Value       int    `xml:"Value" cbor:"2,keyasint"`
	Description string `xml:"Description" cbor:"3,keyasint"`
}

// EnumerationTypeDefinition defines an enumeration over an integer element type.
// Elements are kept in declaration order.
type EnumerationTypeDefinition struct {
	Meta
	ElementType ident.AUID           `xml:"ElementType" cbor:"10,keyasint"`
	Elements    []EnumerationElement `xml:"Elements>Element" cbor:"11,keyasint"`
}

// ElementByValue returns the element carrying value.
func (d *EnumerationTypeDefinition) ElementByValue(value int) (EnumerationElement, bool) {
	for _, e := range d.Elements {
		if e.Value == value {
			return e, true
		}
	}
	return EnumerationElement{}, false
}

// ElementByName returns the element named name.
func (d *EnumerationTypeDefinition) ElementByName(name string) (EnumerationElement, bool) {
	for _, e := range d.Elements {
		if e.Name == name {
			return e, true
		}
	}
	return EnumerationElement{}, false
}

// ExtendibleEnumerationTypeDefinition defines an enumeration whose values are labels
// registered outside the dictionary.
type ExtendibleEnumerationTypeDefinition struct {
	Meta
}

// FixedArrayTypeDefinition defines an array with a fixed element count.
type FixedArrayTypeDefinition struct {
	Meta
	ElementType  ident.AUID `xml:"ElementType" cbor:"10,keyasint"`
	ElementCount int        `xml:"ElementCount" cbor:"11,keyasint"`
}

// IndirectTypeDefinition defines a value that carries its own type.
type IndirectTypeDefinition struct {
	Meta
}

// IntegerTypeDefinition defines an integer of Size bytes.
type IntegerTypeDefinition struct {
	Meta
	Size     uint8 `xml:"Size" cbor:"10,keyasint"`
	IsSigned bool  `xml:"IsSigned" cbor:"11,keyasint"`
}

// OpaqueTypeDefinition defines an uninterpreted value.
type OpaqueTypeDefinition struct {
	Meta
}

// RecordMember is one named field of a record.
type RecordMember struct {
	Name string     `xml:"Name" cbor:"1,keyasint"`
	Type ident.AUID `xml:"Type" cbor:"2,keyasint"`
}

// RecordTypeDefinition defines a record with ordered members.
type RecordTypeDefinition struct {
	Meta
	Members []RecordMember `xml:"Members>Member" cbor:"10,keyasint"`
}

// RenameTypeDefinition defines an alias of another type.
type RenameTypeDefinition struct {
	Meta
	RenamedType ident.AUID `xml:"RenamedType" cbor:"10,keyasint"`
}

// SetTypeDefinition defines an unordered collection.
type SetTypeDefinition struct {
	Meta
	ElementType ident.AUID `xml:"ElementType" cbor:"10,keyasint"`
}

// StreamTypeDefinition defines a stream of bytes.
type StreamTypeDefinition struct {
	Meta
}

// StringTypeDefinition defines a string of characters of ElementType.
type StringTypeDefinition struct {
	Meta
	ElementType ident.AUID `xml:"ElementType" cbor:"10,keyasint"`
}

// StrongReferenceTypeDefinition defines an owning reference to an object of ReferencedType.
type StrongReferenceTypeDefinition struct {
	Meta
	ReferencedType ident.AUID `xml:"ReferencedType" cbor:"10,keyasint"`
}

// VariableArrayTypeDefinition defines an array with a variable element count.
type VariableArrayTypeDefinition struct {
	Meta
	ElementType ident.AUID `xml:"ElementType" cbor:"10,keyasint"`
}

// WeakReferenceTypeDefinition defines a non-owning reference to an object of ReferencedType.
// TargetSet lists the properties followed from the root object to find the target.
type WeakReferenceTypeDefinition struct {
	Meta
	ReferencedType ident.AUID   `xml:"ReferencedType" cbor:"10,keyasint"`
	TargetSet      []ident.AUID `xml:"TargetSet>MetaDefRef,omitempty" cbor:"11,keyasint,omitempty"`
}
