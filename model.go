package chisel

// EnumValueDoc is the native documentation attached to one enum variant.
type EnumValueDoc struct {
	NativeName string
	HTML       string
}

// EnumValue is one variant of a processed enum.
type EnumValue struct {
	Name  string
	Value int64
	Docs  []EnumValueDoc
	// IsDummy marks the synthetic second value added to enums that would
	// otherwise have a single variant.
	IsDummy bool
}

// TypeKind is the closed set of processed type shapes. Emitters must switch
// exhaustively over *EnumKind and *StructKind; there is no catch-all.
type TypeKind interface {
	isTypeKind()
}

// EnumKind describes an enum wrapper.
type EnumKind struct {
	Values      []EnumValue
	IsFlaggable bool
}

func (*EnumKind) isTypeKind() {}

// StructKind describes an opaque struct wrapper.
type StructKind struct {
	// SizeConstName names the compile-time size constant. Empty when the
	// native size is not statically knowable, in which case the type can
	// only be used behind a reference or pointer.
	SizeConstName string
	// IsDeletable is set when the native type has a public destructor.
	IsDeletable bool
	SlotWrapper *SlotWrapper
}

func (*StructKind) isTypeKind() {}

// SlotWrapper describes a reactive-callback carrier type.
type SlotWrapper struct {
	Arguments    []ResolvedType
	ReceiverID   string
	PublicName   string
	CallbackName string
}

// ProcessedTypeInfo is the exported descriptor of one generated wrapper type.
type ProcessedTypeInfo struct {
	NativeName        string
	NativeDoc         string
	TemplateArguments []NativeType // nil when the native type is not a template
	Kind              TypeKind
	HostName          Name
	Public            bool
}

// ReceiverKind discriminates signal and slot receiver declarations.
type ReceiverKind int

const (
	SignalReceiver ReceiverKind = iota
	SlotReceiver
)

// ReceiverDeclaration describes one signal or slot exposed by a wrapper type.
type ReceiverDeclaration struct {
	TypeName   string
	MethodName string
	Kind       ReceiverKind
	ReceiverID string
	Arguments  []HostType
}

// TypeDeclarationKind is the closed set of type declaration shapes.
type TypeDeclarationKind interface {
	isTypeDeclarationKind()
}

// WrapperDeclaration is a processed native type together with everything
// generated for it.
type WrapperDeclaration struct {
	Info            ProcessedTypeInfo
	Methods         []Method
	TraitImpls      []TraitImpl
	Receivers       []ReceiverDeclaration
	CrossReferences []CrossReference
}

func (*WrapperDeclaration) isTypeDeclarationKind() {}

// ParamsTraitDeclaration materializes the aggregation trait of a
// MultipleVariants method: the shared leading arguments plus one impl per
// divergent argument tail.
type ParamsTraitDeclaration struct {
	SharedArguments []MethodArgument
	ReturnType      *HostType
	Variants        []MethodVariant
	MethodScope     Scope
	MethodName      Name
	Unsafe          bool
}

func (*ParamsTraitDeclaration) isTypeDeclarationKind() {}

// TypeDeclaration is one type owned by a module.
type TypeDeclaration struct {
	Public bool
	Name   Name
	Kind   TypeDeclarationKind
}

// AssociatedType binds an associated type of a trait impl.
type AssociatedType struct {
	Name  string
	Value HostType
}

// TraitImplExtra carries trait-specific payload, e.g. the deleter symbol of
// a destructible-type binding.
type TraitImplExtra struct {
	DeleterName string
}

// TraitImpl is one trait implementation generated for a wrapper type.
type TraitImpl struct {
	TargetType      HostType
	AssociatedTypes []AssociatedType
	TraitType       HostType
	Extra           *TraitImplExtra
	Methods         []Method
}

// Module is one node of the generated namespace tree. The tree is a strict
// ownership hierarchy: children never point back at their parents.
type Module struct {
	Name       string
	Types      []TypeDeclaration
	Functions  []Method
	TraitImpls []TraitImpl
	Submodules []*Module
}

// CrossReferenceKind discriminates documentation link targets.
type CrossReferenceKind int

const (
	CrossReferenceType CrossReferenceKind = iota
	CrossReferenceMethod
)

// CrossReference is a resolved documentation link.
type CrossReference struct {
	Name Name
	Kind CrossReferenceKind
	// MethodScope is set for method references only.
	MethodScope *Scope
}
