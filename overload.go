package chisel

// AllocationPlaceMarker is the reserved name of the synthetic argument that
// distinguishes otherwise identical native constructors by allocation
// strategy.
const AllocationPlaceMarker = "allocation_place_marker"

// sameShape reports whether the two variants' argument lists are pairwise
// substitutable under the native overload-equivalence rule. A position where
// both arguments are the allocation-placement marker but the marker records
// differ breaks the match.
func sameShape(a, b []MethodArgument) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Type.Native.CanBeSameAs(b[i].Type.Native) {
			return false
		}
		if a[i].Name == AllocationPlaceMarker && b[i].Name == AllocationPlaceMarker && !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// CollidesWith reports whether two variants intended to share a host name
// cannot be told apart by the host language and therefore need a caption.
// Variants differing in unsafety or receiver kind resolve independently and
// never collide.
func (m SingleMethod) CollidesWith(other SingleMethod) (bool, error) {
	if m.Unsafe != other.Unsafe {
		return false, nil
	}
	kind, err := m.SelfArgKind()
	if err != nil {
		return false, err
	}
	otherKind, err := other.SelfArgKind()
	if err != nil {
		return false, err
	}
	if kind != otherKind {
		return false, nil
	}
	return sameShape(m.Variant.Arguments, other.Variant.Arguments), nil
}

// CanBeOverloadedWith reports whether the two variants can share one host
// method through the parameters-trait mechanism: identical unsafety and
// receiver kind, but structurally distinguishable argument lists.
func (m SingleMethod) CanBeOverloadedWith(other SingleMethod) (bool, error) {
	if m.Unsafe != other.Unsafe {
		return false, nil
	}
	kind, err := m.SelfArgKind()
	if err != nil {
		return false, err
	}
	otherKind, err := other.SelfArgKind()
	if err != nil {
		return false, err
	}
	if kind != otherKind {
		return false, nil
	}
	return !sameShape(m.Variant.Arguments, other.Variant.Arguments), nil
}
