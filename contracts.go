package chisel

// CrossReferenceResolver is supplied by the documentation collaborator: it
// maps an anchor string found in native documentation to the generated
// declaration it refers to.
//
//go:generate go run github.com/vektra/mockery/v2 --name CrossReferenceResolver --case underscore --with-expecter
type CrossReferenceResolver interface {
	Resolve(anchor string) (CrossReference, bool)
}

// TableResolver resolves anchors from a fixed lookup table.
type TableResolver map[string]CrossReference

func (t TableResolver) Resolve(anchor string) (CrossReference, bool) {
	ref, ok := t[anchor]
	return ref, ok
}
