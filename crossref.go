package chisel

// LinkCrossReferences rewrites the documentation link placeholders of every
// method in the tree using the supplied resolver. This is the only mutation
// permitted after assembly; structural fields are never touched. Anchors the
// resolver does not know are dropped.
func LinkCrossReferences(m *Module, resolver CrossReferenceResolver) {
	for i := range m.Functions {
		linkMethod(&m.Functions[i], resolver)
	}
	for i := range m.TraitImpls {
		linkTraitImpl(&m.TraitImpls[i], resolver)
	}
	for i := range m.Types {
		wrapper, ok := m.Types[i].Kind.(*WrapperDeclaration)
		if !ok {
			continue
		}
		for j := range wrapper.Methods {
			linkMethod(&wrapper.Methods[j], resolver)
		}
		for j := range wrapper.TraitImpls {
			linkTraitImpl(&wrapper.TraitImpls[j], resolver)
		}
	}
	for _, sub := range m.Submodules {
		LinkCrossReferences(sub, resolver)
	}
}

func linkTraitImpl(impl *TraitImpl, resolver CrossReferenceResolver) {
	for i := range impl.Methods {
		linkMethod(&impl.Methods[i], resolver)
	}
}

func linkMethod(m *Method, resolver CrossReferenceResolver) {
	for i := range m.Docs {
		doc := &m.Docs[i]
		resolved := make([]CrossReference, 0, len(doc.Anchors))
		for _, anchor := range doc.Anchors {
			if ref, ok := resolver.Resolve(anchor); ok {
				resolved = append(resolved, ref)
			}
		}
		doc.CrossReferences = resolved
	}
}
