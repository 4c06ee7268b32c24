package chisel

import (
	"github.com/huandu/go-clone"
	"github.com/pkg/errors"
)

// MethodArgument is one argument of a generated method.
type MethodArgument struct {
	Type ResolvedType
	Name string
	// CallSiteIndex is the position of this argument in the native call,
	// nil for arguments that exist only on the host side.
	CallSiteIndex *int
}

func (a MethodArgument) Equal(other MethodArgument) bool {
	if a.Name != other.Name || !a.Type.Equal(other.Type) {
		return false
	}
	if (a.CallSiteIndex == nil) != (other.CallSiteIndex == nil) {
		return false
	}
	return a.CallSiteIndex == nil || *a.CallSiteIndex == *other.CallSiteIndex
}

// MethodVariant is one concrete argument list wrapping one native method.
type MethodVariant struct {
	Arguments           []MethodArgument
	NativeMethod        NativeMethod
	ReturnType          ResolvedType
	ReturnCallSiteIndex *int
}

// DocItem is the documentation attached to a generated method, linking it
// back to the native method(s) it wraps.
type DocItem struct {
	HTML       string
	NativeName string
	HostFns    []string
	// Anchors are the unresolved documentation link placeholders; the
	// cross-reference pass fills CrossReferences from them.
	Anchors         []string
	CrossReferences []CrossReference
}

// ScopeKind discriminates where a method lives.
type ScopeKind int

const (
	ScopeFree ScopeKind = iota
	ScopeImpl
	ScopeTraitImpl
)

// Scope is the placement of a generated method.
type Scope struct {
	Kind ScopeKind
	// Target is the implementing type, ScopeImpl only.
	Target HostType
}

func ImplScope(target HostType) Scope {
	return Scope{Kind: ScopeImpl, Target: target}
}

func TraitImplScope() Scope {
	return Scope{Kind: ScopeTraitImpl}
}

func FreeScope() Scope {
	return Scope{Kind: ScopeFree}
}

// MethodArguments is the closed pair of method argument shapes:
// *SingleVariant or *MultipleVariants.
type MethodArguments interface {
	isMethodArguments()
}

// SingleVariant wraps exactly one native method.
type SingleVariant struct {
	Variant MethodVariant
}

func (*SingleVariant) isMethodArguments() {}

// MultipleVariants aggregates several native overloads behind one host
// method. The divergent argument tails are dispatched through a generated
// parameters trait.
type MultipleVariants struct {
	ParamsTraitName     string
	SharedArguments     []MethodArgument
	VariantArgumentName string
	NativeMethodName    string
	// Variants hold only the argument tail after SharedArguments.
	Variants []MethodVariant
}

func (*MultipleVariants) isMethodArguments() {}

// Method is one generated method, either a single variant or an aggregate.
type Method struct {
	Scope     Scope
	Unsafe    bool
	Name      Name
	Arguments MethodArguments
	Docs      []DocItem
}

// SingleMethod is the pre-assembly record: one variant, not yet grouped.
type SingleMethod struct {
	Scope   Scope
	Unsafe  bool
	Name    Name
	Variant MethodVariant
	Doc     *DocItem
}

// ToMethod converts the record to a single-variant method.
func (m SingleMethod) ToMethod() Method {
	var docs []DocItem
	if m.Doc != nil {
		docs = []DocItem{*m.Doc}
	}
	return Method{
		Scope:     m.Scope,
		Unsafe:    m.Unsafe,
		Name:      m.Name,
		Arguments: &SingleVariant{Variant: m.Variant},
		Docs:      docs,
	}
}

// sharedArgumentPrefix returns the longest leading argument run common to
// all variants.
func sharedArgumentPrefix(methods []SingleMethod) []MethodArgument {
	prefix := methods[0].Variant.Arguments
	for _, m := range methods[1:] {
		args := m.Variant.Arguments
		if len(args) < len(prefix) {
			prefix = prefix[:len(args)]
		}
		for i := range prefix {
			if !prefix[i].Equal(args[i]) {
				prefix = prefix[:i]
				break
			}
		}
	}
	return prefix
}

// Promote merges same-named single-variant records into one MultipleVariants
// aggregate. All records must agree on name, scope and unsafety. The inputs
// are deep-copied, so the aggregate never aliases its sources.
func Promote(methods []SingleMethod, paramsTraitName, variantArgumentName string) (Method, error) {
	if len(methods) == 0 {
		return Method{}, errors.New("promoting an empty variant family")
	}
	first := methods[0]
	for _, m := range methods[1:] {
		if !m.Name.Equal(first.Name) || m.Unsafe != first.Unsafe || m.Scope.Kind != first.Scope.Kind {
			return Method{}, errors.Errorf("promoting incompatible variants of %s", first.Name)
		}
	}

	shared := clone.Clone(sharedArgumentPrefix(methods)).([]MethodArgument)
	variants := make([]MethodVariant, 0, len(methods))
	var docs []DocItem
	for _, m := range methods {
		v := clone.Clone(m.Variant).(MethodVariant)
		v.Arguments = v.Arguments[len(shared):]
		variants = append(variants, v)
		if m.Doc != nil {
			docs = append(docs, *m.Doc)
		}
	}

	return Method{
		Scope:  first.Scope,
		Unsafe: first.Unsafe,
		Name:   first.Name,
		Arguments: &MultipleVariants{
			ParamsTraitName:     paramsTraitName,
			SharedArguments:     shared,
			VariantArgumentName: variantArgumentName,
			NativeMethodName:    first.Variant.NativeMethod.Name,
			Variants:            variants,
		},
		Docs: docs,
	}, nil
}

// Flatten expands a method back into its single-variant records. Promote
// followed by Flatten preserves every variant's argument list and native
// method link exactly.
func Flatten(m Method) ([]SingleMethod, error) {
	switch args := m.Arguments.(type) {
	case *SingleVariant:
		single := SingleMethod{
			Scope:   m.Scope,
			Unsafe:  m.Unsafe,
			Name:    m.Name,
			Variant: clone.Clone(args.Variant).(MethodVariant),
		}
		if len(m.Docs) > 0 {
			doc := m.Docs[0]
			single.Doc = &doc
		}
		return []SingleMethod{single}, nil
	case *MultipleVariants:
		out := make([]SingleMethod, 0, len(args.Variants))
		for i, tail := range args.Variants {
			v := clone.Clone(tail).(MethodVariant)
			full := clone.Clone(args.SharedArguments).([]MethodArgument)
			v.Arguments = append(full, v.Arguments...)
			single := SingleMethod{
				Scope:   m.Scope,
				Unsafe:  m.Unsafe,
				Name:    m.Name,
				Variant: v,
			}
			if len(m.Docs) == len(args.Variants) {
				doc := m.Docs[i]
				single.Doc = &doc
			}
			out = append(out, single)
		}
		return out, nil
	default:
		return nil, errors.Errorf("flattening method %s: unknown argument shape", m.Name)
	}
}
