package chisel

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CaptionStrategy selects how colliding variants are told apart by name.
type CaptionStrategy int

const (
	// NoCaption relies on the host language's own overload resolution.
	NoCaption CaptionStrategy = iota
	// UnsafeOnly tags unsafe variants and nothing else.
	UnsafeOnly
	// ArgTypes tags variants with their argument type captions.
	ArgTypes
	// ArgNames tags variants with their argument identifiers.
	ArgNames
	// Index tags variants with their zero-based discovery position.
	Index
)

func (s CaptionStrategy) String() string {
	switch s {
	case NoCaption:
		return "no_caption"
	case UnsafeOnly:
		return "unsafe_only"
	case ArgTypes:
		return "arg_types"
	case ArgNames:
		return "arg_names"
	case Index:
		return "index"
	}
	return "unknown"
}

// ParseCaptionStrategy parses a strategy name as written in config files.
func ParseCaptionStrategy(s string) (CaptionStrategy, error) {
	for _, strategy := range DefaultCaptionOrder() {
		if strategy.String() == s {
			return strategy, nil
		}
	}
	return 0, errors.Errorf("unknown caption strategy %q", s)
}

// DefaultCaptionOrder is the priority in which the assembler escalates
// through strategies until a family's names become unique.
func DefaultCaptionOrder() []CaptionStrategy {
	return []CaptionStrategy{NoCaption, UnsafeOnly, ArgTypes, ArgNames, Index}
}

// selfArgCaption is the receiver tag contributed to every strategy except
// UnsafeOnly. The const-reference receiver is the default form and stays
// untagged, as does a family with a single receiver kind. A mutable
// receiver is tagged only when a const-reference sibling exists.
func (m SingleMethod) selfArgCaption(allSelfKinds map[SelfArgKind]bool) (string, error) {
	kind, err := m.SelfArgKind()
	if err != nil {
		return "", err
	}
	if len(allSelfKinds) == 1 || kind == SelfConstRef {
		return "", nil
	}
	switch kind {
	case SelfStatic:
		return "static", nil
	case SelfMutRef:
		if allSelfKinds[SelfConstRef] {
			return "mut", nil
		}
		return "", nil
	default:
		return "", errors.Wrapf(ErrUnsupportedSelfArgCombination, "method %s", m.Name)
	}
}

// nonReceiverArguments returns the variant's arguments without the receiver.
func (m SingleMethod) nonReceiverArguments() []MethodArgument {
	args := m.Variant.Arguments
	if len(args) > 0 && args[0].Name == SelfArgumentName {
		return args[1:]
	}
	return args
}

// NameSuffix computes the disambiguating suffix of one variant within its
// family. allSelfKinds is the family's receiver kind set and index the
// variant's discovery-order position. An empty suffix means the variant
// needs no rename: the host language disambiguates it structurally.
func (m SingleMethod) NameSuffix(strategy CaptionStrategy, allSelfKinds map[SelfArgKind]bool, index int) (string, error) {
	if strategy == UnsafeOnly {
		if m.Unsafe {
			return "unsafe", nil
		}
		return "", nil
	}

	selfTag, err := m.selfArgCaption(allSelfKinds)
	if err != nil {
		return "", err
	}

	var tag string
	switch strategy {
	case NoCaption:
	case Index:
		tag = strconv.Itoa(index)
	case ArgNames:
		if len(m.Variant.Arguments) == 0 {
			tag = "no_args"
		} else {
			names := make([]string, 0, len(m.Variant.Arguments))
			for _, arg := range m.nonReceiverArguments() {
				names = append(names, arg.Name)
			}
			tag = strings.Join(names, "_")
		}
	case ArgTypes:
		context, err := m.captionContext()
		if err != nil {
			return "", err
		}
		if len(m.Variant.Arguments) == 0 {
			tag = "no_args"
		} else {
			captions := make([]string, 0, len(m.Variant.Arguments))
			for _, arg := range m.nonReceiverArguments() {
				c, err := arg.Type.Host.Caption(context)
				if err != nil {
					return "", errors.Wrapf(err, "method %s", m.Name)
				}
				captions = append(captions, c)
			}
			tag = strings.Join(captions, "_")
		}
	}

	parts := make([]string, 0, 2)
	if selfTag != "" {
		parts = append(parts, selfTag)
	}
	if tag != "" {
		parts = append(parts, tag)
	}
	return strings.Join(parts, "_"), nil
}

// captionContext is the name the ArgTypes strategy captions types against:
// the enclosing type for instance methods, the function's own name for free
// functions. Trait impl methods have no stable context.
func (m SingleMethod) captionContext() (Name, error) {
	switch m.Scope.Kind {
	case ScopeFree:
		return m.Name, nil
	case ScopeImpl:
		if m.Scope.Target.Kind != NamedType {
			return nil, errors.Wrapf(ErrUnexpectedTypeShape, "method %s", m.Name)
		}
		return m.Scope.Target.Name, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedCaptionContext, "method %s", m.Name)
	}
}
