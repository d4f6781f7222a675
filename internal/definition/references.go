package definition

import "github.com/vvka-141/regxml/internal/ident"

// Reference is an AUID a definition points at, with the field it came from.
type Reference struct {
	Field  string
	Target ident.AUID
}

// References returns the AUIDs d refers to, in field order.
func References(d Definition) []Reference {
	var v referenceVisitor
	_ = d.Accept(&v)
	return v.refs
}

// MemberOf returns the class a property or property alias belongs to.
// ok is false for every other kind.
func MemberOf(d Definition) (class ident.AUID, ok bool) {
	switch p := d.(type) {
	case *PropertyDefinition:
		return p.MemberOf, true
	case *PropertyAliasDefinition:
		return p.MemberOf, true
	}
	return ident.AUID{}, false
}

type referenceVisitor struct {
	refs []Reference
}

func (v *referenceVisitor) add(field string, target ident.AUID) {
	v.refs = append(v.refs, Reference{Field: field, Target: target})
}

func (v *referenceVisitor) VisitClass(d *ClassDefinition) error {
	if d.ParentClass != nil {
		v.add("ParentClass", *d.ParentClass)
	}
	return nil
}

func (v *referenceVisitor) VisitProperty(d *PropertyDefinition) error {
	v.add("Type", d.Type)
	v.add("MemberOf", d.MemberOf)
	return nil
}

func (v *referenceVisitor) VisitPropertyAlias(d *PropertyAliasDefinition) error {
	v.add("Type", d.Type)
	v.add("MemberOf", d.MemberOf)
	v.add("OriginalProperty", d.OriginalProperty)
	return nil
}

func (v *referenceVisitor) VisitCharacterType(*CharacterTypeDefinition) error { return nil }

func (v *referenceVisitor) VisitEnumerationType(d *EnumerationTypeDefinition) error {
	v.add("ElementType", d.ElementType)
	return nil
}

func (v *referenceVisitor) VisitExtendibleEnumerationType(*ExtendibleEnumerationTypeDefinition) error {
	return nil
}

func (v *referenceVisitor) VisitFixedArrayType(d *FixedArrayTypeDefinition) error {
	v.add("ElementType", d.ElementType)
	return nil
}

func (v *referenceVisitor) VisitIndirectType(*IndirectTypeDefinition) error { return nil }
func (v *referenceVisitor) VisitIntegerType(*IntegerTypeDefinition) error   { return nil }
func (v *referenceVisitor) VisitOpaqueType(*OpaqueTypeDefinition) error     { return nil }

func (v *referenceVisitor) VisitRecordType(d *RecordTypeDefinition) error {
	for _, m := range d.Members {
		v.add("Members/"+m.Name, m.Type)
	}
	return nil
}

func (v *referenceVisitor) VisitRenameType(d *RenameTypeDefinition) error {
	v.add("RenamedType", d.RenamedType)
	return nil
}

func (v *referenceVisitor) VisitSetType(d *SetTypeDefinition) error {
	v.add("ElementType", d.ElementType)
	return nil
}

func (v *referenceVisitor) VisitStreamType(*StreamTypeDefinition) error { return nil }

func (v *referenceVisitor) VisitStringType(d *StringTypeDefinition) error {
	v.add("ElementType", d.ElementType)
	return nil
}

func (v *referenceVisitor) VisitStrongReferenceType(d *StrongReferenceTypeDefinition) error {
	v.add("ReferencedType", d.ReferencedType)
	return nil
}

func (v *referenceVisitor) VisitVariableArrayType(d *VariableArrayTypeDefinition) error {
	v.add("ElementType", d.ElementType)
	return nil
}

func (v *referenceVisitor) VisitWeakReferenceType(d *WeakReferenceTypeDefinition) error {
	v.add("ReferencedType", d.ReferencedType)
	for _, target := range d.TargetSet {
		v.add("TargetSet", target)
	}
	return nil
}
