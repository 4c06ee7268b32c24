package chisel

import (
	"github.com/pkg/errors"
)

// SelfArgumentName is the reserved identifier marking a variant's receiver.
const SelfArgumentName = "self"

// SelfArgKind is the receiver ownership mode of one method variant.
type SelfArgKind int

const (
	SelfStatic SelfArgKind = iota
	SelfConstRef
	SelfMutRef
	SelfValue
)

func (k SelfArgKind) String() string {
	switch k {
	case SelfStatic:
		return "static"
	case SelfConstRef:
		return "const_ref"
	case SelfMutRef:
		return "mut_ref"
	case SelfValue:
		return "value"
	}
	return "unknown"
}

// DetectSelfArgKind classifies a variant's receiver from its argument list.
// The classification is a pure function of the list shape: a receiver-named
// first argument is classified by its resolved indirection and constness,
// anything else is static.
func DetectSelfArgKind(args []MethodArgument) (SelfArgKind, error) {
	if len(args) == 0 || args[0].Name != SelfArgumentName {
		return SelfStatic, nil
	}
	t := args[0].Type.Host
	if t.Kind != NamedType {
		return 0, errors.Wrap(ErrInvalidSelfArgument, "self argument is not a named type")
	}
	switch t.Indirection {
	case IndirectionRef:
		if t.Const {
			return SelfConstRef, nil
		}
		return SelfMutRef, nil
	case IndirectionNone:
		return SelfValue, nil
	default:
		return 0, errors.Wrapf(ErrInvalidSelfArgument, "self argument passed by %s", t.Indirection)
	}
}

// SelfArgKind classifies the record's receiver.
func (m SingleMethod) SelfArgKind() (SelfArgKind, error) {
	kind, err := DetectSelfArgKind(m.Variant.Arguments)
	if err != nil {
		return 0, errors.Wrapf(err, "method %s", m.Name)
	}
	return kind, nil
}
