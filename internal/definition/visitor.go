package definition

// Visitor has one method per definition kind.
type Visitor interface {
	VisitClass(d *ClassDefinition) error
	VisitProperty(d *PropertyDefinition) error
	VisitPropertyAlias(d *PropertyAliasDefinition) error
	VisitCharacterType(d *CharacterTypeDefinition) error
	VisitEnumerationType(d *EnumerationTypeDefinition) error
	VisitExtendibleEnumerationType(d *ExtendibleEnumerationTypeDefinition) error
	VisitFixedArrayType(d *FixedArrayTypeDefinition) error
	VisitIndirectType(d *IndirectTypeDefinition) error
	VisitIntegerType(d *IntegerTypeDefinition) error
	VisitOpaqueType(d *OpaqueTypeDefinition) error
	VisitRecordType(d *RecordTypeDefinition) error
	VisitRenameType(d *RenameTypeDefinition) error
	VisitSetType(d *SetTypeDefinition) error
	VisitStreamType(d *StreamTypeDefinition) error
	VisitStringType(d *StringTypeDefinition) error
	VisitStrongReferenceType(d *StrongReferenceTypeDefinition) error
	VisitVariableArrayType(d *VariableArrayTypeDefinition) error
	VisitWeakReferenceType(d *WeakReferenceTypeDefinition) error
}

func (d *ClassDefinition) Accept(v Visitor) error         { return v.VisitClass(d) }
func (d *PropertyDefinition) Accept(v Visitor) error      { return v.VisitProperty(d) }
func (d *PropertyAliasDefinition) Accept(v Visitor) error { return v.VisitPropertyAlias(d) }
func (d *CharacterTypeDefinition) Accept(v Visitor) error { return v.VisitCharacterType(d) }
func (d *EnumerationTypeDefinition) Accept(v Visitor) error {
	return v.VisitEnumerationType(d)
}
func (d *ExtendibleEnumerationTypeDefinition) Accept(v Visitor) error {
	return v.VisitExtendibleEnumerationType(d)
}
func (d *FixedArrayTypeDefinition) Accept(v Visitor) error { return v.VisitFixedArrayType(d) }
func (d *IndirectTypeDefinition) Accept(v Visitor) error   { return v.VisitIndirectType(d) }
func (d *IntegerTypeDefinition) Accept(v Visitor) error    { return v.VisitIntegerType(d) }
func (d *OpaqueTypeDefinition) Accept(v Visitor) error     { return v.VisitOpaqueType(d) }
func (d *RecordTypeDefinition) Accept(v Visitor) error     { return v.VisitRecordType(d) }
func (d *RenameTypeDefinition) Accept(v Visitor) error     { return v.VisitRenameType(d) }
func (d *SetTypeDefinition) Accept(v Visitor) error        { return v.VisitSetType(d) }
func (d *StreamTypeDefinition) Accept(v Visitor) error     { return v.VisitStreamType(d) }
func (d *StringTypeDefinition) Accept(v Visitor) error     { return v.VisitStringType(d) }
func (d *StrongReferenceTypeDefinition) Accept(v Visitor) error {
	return v.VisitStrongReferenceType(d)
}
func (d *VariableArrayTypeDefinition) Accept(v Visitor) error {
	return v.VisitVariableArrayType(d)
}
func (d *WeakReferenceTypeDefinition) Accept(v Visitor) error {
	return v.VisitWeakReferenceType(d)
}
