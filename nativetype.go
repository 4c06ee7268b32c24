package chisel

// NativeIndirection is the closed set of native-side indirection modes.
type NativeIndirection int

const (
	NativeValue NativeIndirection = iota
	NativeRef
	NativePtr
	NativePtrPtr
)

// NativeType is the introspected native type of an argument, carried next to
// its resolved host type for overload-equivalence checks.
type NativeType struct {
	Base        string // fully qualified native name
	Args        []NativeType
	Const       bool
	Indirection NativeIndirection
}

func (t NativeType) Equal(other NativeType) bool {
	if t.Base != other.Base ||
		t.Const != other.Const ||
		t.Indirection != other.Indirection ||
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

// normalized folds the forms that map to the same host-side representation:
// a const reference is passed like a value, and top-level constness does not
// change the call shape.
func (t NativeType) normalized() NativeType {
	if t.Indirection == NativeRef && t.Const {
		t.Indirection = NativeValue
	}
	t.Const = false
	return t
}

// CanBeSameAs is the native overload-equivalence rule: it reports whether
// two native types would resolve to the same host-side argument shape, so
// that same-named variants using them cannot be told apart structurally.
func (t NativeType) CanBeSameAs(other NativeType) bool {
	a, b := t.normalized(), other.normalized()
	if a.Base != b.Base || a.Indirection != b.Indirection || len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !a.Args[i].CanBeSameAs(b.Args[i]) {
			return false
		}
	}
	return true
}

// NativeMethod is the opaque link from a generated variant back to the
// native method it wraps, retained for documentation and FFI dispatch.
type NativeMethod struct {
	Name   string // declared native name
	Symbol string // FFI dispatch symbol
	Doc    string
}
