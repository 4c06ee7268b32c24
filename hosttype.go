package chisel

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
)

// Name is a qualified host identifier, one path segment per element.
type Name []string

func (n Name) String() string {
	return strings.Join(n, "::")
}

// Last returns the final path segment.
func (n Name) Last() string {
	if len(n) == 0 {
		return ""
	}
	return n[len(n)-1]
}

// WithSuffix returns a copy of the name whose last segment carries the given
// caption suffix.
func (n Name) WithSuffix(suffix string) Name {
	out := make(Name, len(n))
	copy(out, n)
	out[len(out)-1] = out[len(out)-1] + "_" + suffix
	return out
}

func (n Name) Equal(other Name) bool {
	if len(n) != len(other) {
		return false
	}
	for i := range n {
		if n[i] != other[i] {
			return false
		}
	}
	return true
}

// Indirection is the closed set of host-side indirection modes. The receiver
// classifier matches over this enumeration and nothing else.
type Indirection int

const (
	IndirectionNone Indirection = iota
	IndirectionRef
	IndirectionPtr
	IndirectionPtrPtr
)

func (i Indirection) String() string {
	switch i {
	case IndirectionNone:
		return "none"
	case IndirectionRef:
		return "ref"
	case IndirectionPtr:
		return "ptr"
	case IndirectionPtrPtr:
		return "ptr_ptr"
	}
	return "unknown"
}

// HostTypeKind discriminates the closed set of host type shapes.
type HostTypeKind int

const (
	// UnitType is the empty return type.
	UnitType HostTypeKind = iota
	// NamedType is a (possibly generic) named type.
	NamedType
)

// HostType is the resolved host-language representation of a native type, as
// delivered by the type-mapping collaborator.
type HostType struct {
	Kind        HostTypeKind
	Name        Name       // NamedType only
	Args        []HostType // generic arguments
	Const       bool
	Indirection Indirection
}

// Unit returns the empty host type.
func Unit() HostType {
	return HostType{Kind: UnitType}
}

// Named builds a plain named host type without indirection.
func Named(parts ...string) HostType {
	return HostType{Kind: NamedType, Name: parts}
}

func (t HostType) Equal(other HostType) bool {
	if t.Kind != other.Kind ||
		t.Const != other.Const ||
		t.Indirection != other.Indirection ||
		!t.Name.Equal(other.Name) ||
		len(t.Args) != len(other.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// Caption produces the short, snake_case tag used by the ArgTypes strategy.
// The context is the qualified name the caption is relative to: leading path
// segments shared with the context are dropped so captions stay short within
// their own type or function.
func (t HostType) Caption(context Name) (string, error) {
	if t.Kind != NamedType || len(t.Name) == 0 {
		return "", errors.Wrap(ErrUnexpectedTypeShape, "captioning host type")
	}
	rest := t.Name
	for len(rest) > 1 && len(context) > 0 && rest[0] == context[0] {
		rest = rest[1:]
		context = context[1:]
	}
	parts := make([]string, 0, len(rest)+len(t.Args))
	for _, p := range rest {
		parts = append(parts, strcase.ToSnake(p))
	}
	for _, arg := range t.Args {
		c, err := arg.Caption(nil)
		if err != nil {
			return "", err
		}
		parts = append(parts, c)
	}
	return strings.Join(parts, "_"), nil
}

// ResolvedType pairs the host representation of an argument with the native
// type it was mapped from. The native side drives overload equivalence, the
// host side drives receiver classification and captions.
type ResolvedType struct {
	Host   HostType
	Native NativeType
}

func (t ResolvedType) Equal(other ResolvedType) bool {
	return t.Host.Equal(other.Host) && t.Native.Equal(other.Native)
}
