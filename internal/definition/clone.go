package definition

import (
	"slices"

	"github.com/vvka-141/regxml/internal/ident"
)

// Clone returns a deep copy of d. The copy shares no slices or pointers with d.
func Clone(d Definition) Definition {
	var v cloneVisitor
	_ = d.Accept(&v)
	return v.out
}

type cloneVisitor struct {
	out Definition
}

func cloneAUIDPtr(a *ident.AUID) *ident.AUID {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

func (v *cloneVisitor) VisitClass(d *ClassDefinition) error {
	c := *d
	c.ParentClass = cloneAUIDPtr(d.ParentClass)
	v.out = &c
	return nil
}

func (v *cloneVisitor) VisitProperty(d *PropertyDefinition) error {
	c := *d
	v.out = &c
	return nil
}

func (v *cloneVisitor) VisitPropertyAlias(d *PropertyAliasDefinition) error {
	c := *d
	v.out = &c
	return nil
}

func (v *cloneVisitor) VisitCharacterType(d *CharacterTypeDefinition) error {
	c := *d
	v.out = &c
	return nil
}

func (v *cloneVisitor) VisitEnumerationType(d *EnumerationTypeDefinition) error {
	c := *d
	c.Elements = slices.Clone(d.Elements)
	v.out = &c
	return nil
}

func (v *cloneVisitor) VisitExtendibleEnumerationType(d *ExtendibleEnumerationTypeDefinition) error {
	c := *d
	v.out = &c
	return nil
}

func (v *cloneVisitor) VisitFixedArrayType(d *FixedArrayTypeDefinition) error {
	c := *d
	v.out = &c
	return nil
}

func (v *cloneVisitor) VisitIndirectType(d *IndirectTypeDefinition) error {
	c := *d
	v.out = &c
	return nil
}

func (v *cloneVisitor) VisitIntegerType(d *IntegerTypeDefinition) error {
	c := *d
	v.out = &c
	return nil
}

func (v *cloneVisitor) VisitOpaqueType(d *OpaqueTypeDefinition) error {
	c := *d
	v.out = &c
	return nil
}

func (v *cloneVisitor) VisitRecordType(d *RecordTypeDefinition) error {
	c := *d
	c.Members = slices.Clone(d.Members)
	v.out = &c
	return nil
}

func (v *cloneVisitor) VisitRenameType(d *RenameTypeDefinition) error {
	c := *d
	v.out = &c
	return nil
}

func (v *cloneVisitor) VisitSetType(d *SetTypeDefinition) error {
	c := *d
	v.out = &c
	return nil
}

func (v *cloneVisitor) VisitStreamType(d *StreamTypeDefinition) error {
	c := *d
	v.out = &c
	return nil
}

func (v *cloneVisitor) VisitStringType(d *StringTypeDefinition) error {
	c := *d
	v.out = &c
	return nil
}

func (v *cloneVisitor) VisitStrongReferenceType(d *StrongReferenceTypeDefinition) error {
	c := *d
	v.out = &c
	return nil
}

func (v *cloneVisitor) VisitVariableArrayType(d *VariableArrayTypeDefinition) error {
	c := *d
	v.out = &c
	return nil
}

func (v *cloneVisitor) VisitWeakReferenceType(d *WeakReferenceTypeDefinition) error {
	c := *d
	c.TargetSet = slices.Clone(d.TargetSet)
	v.out = &c
	return nil
}
