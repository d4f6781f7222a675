package definition

import "fmt"

// Kind enumerates the definition kinds.
type Kind int

const (
	KindClass Kind = iota
	KindProperty
	KindPropertyAlias
	KindCharacterType
	KindEnumerationType
	KindExtendibleEnumerationType
	KindFixedArrayType
	KindIndirectType
	KindIntegerType
	KindOpaqueType
	KindRecordType
	KindRenameType
	KindSetType
	KindStreamType
	KindStringType
	KindStrongReferenceType
	KindVariableArrayType
	KindWeakReferenceType

	kindCount
)

// kindTags are the interchange element names, indexed by Kind.
var kindTags = [kindCount]string{
	KindClass:                     "ClassDefinition",
	KindProperty:                  "PropertyDefinition",
	KindPropertyAlias:             "PropertyAliasDefinition",
	KindCharacterType:             "TypeCharacterDefinition",
	KindEnumerationType:           "TypeEnumerationDefinition",
	KindExtendibleEnumerationType: "TypeExtendibleEnumerationDefinition",
	KindFixedArrayType:            "TypeFixedArrayDefinition",
	KindIndirectType:              "TypeIndirectDefinition",
	KindIntegerType:               "TypeIntegerDefinition",
	KindOpaqueType:                "TypeOpaqueDefinition",
	KindRecordType:                "TypeRecordDefinition",
	KindRenameType:                "TypeRenameDefinition",
	KindSetType:                   "TypeSetDefinition",
	KindStreamType:                "TypeStreamDefinition",
	KindStringType:                "TypeStringDefinition",
	KindStrongReferenceType:       "TypeStrongReferenceDefinition",
	KindVariableArrayType:         "TypeVariableArrayDefinition",
	KindWeakReferenceType:         "TypeWeakReferenceDefinition",
}

var kindsByTag = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k, tag := range kindTags {
		m[tag] = Kind(k)
	}
	return m
}()

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// TagName returns the interchange element name of the kind.
func (k Kind) TagName() string {
	if !k.Valid() {
		return ""
	}
	return kindTags[k]
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindTags[k]
}

// KindForTag returns the kind whose interchange element name is tag.
func KindForTag(tag string) (Kind, bool) {
	k, ok := kindsByTag[tag]
	return k, ok
}

// New returns an empty definition of kind k, or nil if k is not valid.
// Decoders use it to allocate the target of an element before filling it in.
func New(k Kind) Definition {
	switch k {
	case KindClass:
		return &ClassDefinition{}
	case KindProperty:
		return &PropertyDefinition{}
	case KindPropertyAlias:
		return &PropertyAliasDefinition{}
	case KindCharacterType:
		return &CharacterTypeDefinition{}
	case KindEnumerationType:
		return &EnumerationTypeDefinition{}
	case KindExtendibleEnumerationType:
		return &ExtendibleEnumerationTypeDefinition{}
	case KindFixedArrayType:
		return &FixedArrayTypeDefinition{}
	case KindIndirectType:
		return &IndirectTypeDefinition{}
	case KindIntegerType:
		return &IntegerTypeDefinition{}
	case KindOpaqueType:
		return &OpaqueTypeDefinition{}
	case KindRecordType:
		return &RecordTypeDefinition{}
	case KindRenameType:
		return &RenameTypeDefinition{}
	case KindSetType:
		return &SetTypeDefinition{}
	case KindStreamType:
		return &StreamTypeDefinition{}
	case KindStringType:
		return &StringTypeDefinition{}
	case KindStrongReferenceType:
		return &StrongReferenceTypeDefinition{}
	case KindVariableArrayType:
		return &VariableArrayTypeDefinition{}
	case KindWeakReferenceType:
		return &WeakReferenceTypeDefinition{}
	}
	return nil
}

// KindOf returns the kind of d, or an invalid Kind when d does not dispatch
// to any visitor method.
func KindOf(d Definition) Kind {
	v := kindVisitor{kind: Kind(-1)}
	_ = d.Accept(&v)
	return v.kind
}

type kindVisitor struct {
	kind Kind
}

func (v *kindVisitor) set(k Kind) error {
	v.kind = k
	return nil
}

func (v *kindVisitor) VisitClass(*ClassDefinition) error       { return v.set(KindClass) }
func (v *kindVisitor) VisitProperty(*PropertyDefinition) error { return v.set(KindProperty) }
func (v *kindVisitor) VisitPropertyAlias(*PropertyAliasDefinition) error {
	return v.set(KindPropertyAlias)
}
func (v *kindVisitor) VisitCharacterType(*CharacterTypeDefinition) error {
	return v.set(KindCharacterType)
}
func (v *kindVisitor) VisitEnumerationType(*EnumerationTypeDefinition) error {
	return v.set(KindEnumerationType)
}
func (v *kindVisitor) VisitExtendibleEnumerationType(*ExtendibleEnumerationTypeDefinition) error {
	return v.set(KindExtendibleEnumerationType)
}
func (v *kindVisitor) VisitFixedArrayType(*FixedArrayTypeDefinition) error {
	return v.set(KindFixedArrayType)
}
func (v *kindVisitor) VisitIndirectType(*IndirectTypeDefinition) error {
	return v.set(KindIndirectType)
}
func (v *kindVisitor) VisitIntegerType(*IntegerTypeDefinition) error {
	return v.set(KindIntegerType)
}
func (v *kindVisitor) VisitOpaqueType(*OpaqueTypeDefinition) error {
	return v.set(KindOpaqueType)
}
func (v *kindVisitor) VisitRecordType(*RecordTypeDefinition) error {
	return v.set(KindRecordType)
}
func (v *kindVisitor) VisitRenameType(*RenameTypeDefinition) error {
	return v.set(KindRenameType)
}
func (v *kindVisitor) VisitSetType(*SetTypeDefinition) error       { return v.set(KindSetType) }
func (v *kindVisitor) VisitStreamType(*StreamTypeDefinition) error { return v.set(KindStreamType) }
func (v *kindVisitor) VisitStringType(*StringTypeDefinition) error { return v.set(KindStringType) }
func (v *kindVisitor) VisitStrongReferenceType(*StrongReferenceTypeDefinition) error {
	return v.set(KindStrongReferenceType)
}
func (v *kindVisitor) VisitVariableArrayType(*VariableArrayTypeDefinition) error {
	return v.set(KindVariableArrayType)
}
func (v *kindVisitor) VisitWeakReferenceType(*WeakReferenceTypeDefinition) error {
	return v.set(KindWeakReferenceType)
}
