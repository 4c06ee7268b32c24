// Package native models the immutable introspection snapshot this generator
// consumes: native types and methods with their host types already resolved
// by the type-mapping collaborator.
package native

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/chisel-gen/chisel"
)

// Snapshot is one generation pass's input, taken once and never mutated.
type Snapshot struct {
	Library   string
	Enums     []Enum
	Classes   []Class
	Functions []Function // free functions
}

// Enum is an introspected native enumeration.
type Enum struct {
	Name        string // fully qualified native name
	Doc         string
	Values      []EnumValue
	UsedInFlags bool
	Public      bool
}

// EnumValue is one native enum variant in declaration order.
type EnumValue struct {
	Name  string
	Value int64
	Doc   string
}

// Class is an introspected native class.
type Class struct {
	Name              string
	Doc               string
	TemplateArguments []chisel.NativeType // nil when not a template instantiation
	// Size is the native size in bytes, negative when not statically
	// knowable at generation time.
	Size                int
	HasPublicDestructor bool
	// DeleterSymbol is the FFI deleter, set when the destructor is public.
	DeleterSymbol string
	SlotWrapper   *SlotWrapper
	Methods       []Function
	Receivers     []Receiver
	Public        bool
}

// SlotWrapper marks a reactive-callback carrier type.
type SlotWrapper struct {
	Arguments    []chisel.ResolvedType
	ReceiverID   string
	PublicName   string
	CallbackName string
}

// ReceiverKind discriminates signals and slots.
type ReceiverKind int

const (
	Signal ReceiverKind = iota
	Slot
)

// Receiver is one signal or slot of a class.
type Receiver struct {
	MethodName string
	Kind       ReceiverKind
	ReceiverID string
	Arguments  []chisel.HostType
}

// Function is an introspected method or free function. Argument 0 carries
// the reserved receiver name for instance methods.
type Function struct {
	Name      string // declared native name, e.g. "setX" or "operator=="
	Symbol    string // FFI dispatch symbol
	Doc       string
	Anchors   []string // documentation link placeholders
	Unsafe    bool
	Arguments []Argument
	Returns   Return
}

// Argument is one function argument with its resolved host type.
type Argument struct {
	Name          string
	Type          chisel.ResolvedType
	CallSiteIndex *int
}

// Return is a function's resolved return type.
type Return struct {
	Type          chisel.ResolvedType
	CallSiteIndex *int
}

// LoadSnapshot reads a snapshot from its JSON form.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading snapshot")
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "unmarshalling snapshot")
	}
	return &s, nil
}
