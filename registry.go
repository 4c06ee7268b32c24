package chisel

// Registry is a flat fully-qualified-name index over an assembled tree. It
// replaces back-pointers inside the tree: anything that needs to reach a
// declaration looks it up here instead.
type Registry struct {
	decls map[string]*TypeDeclaration
}

// BuildRegistry indexes every type declaration of the tree. Build it once,
// after assembly completes; the tree must not change afterwards.
func BuildRegistry(root *Module) *Registry {
	r := &Registry{decls: map[string]*TypeDeclaration{}}
	r.index(root)
	return r
}

func (r *Registry) index(m *Module) {
	for i := range m.Types {
		decl := &m.Types[i]
		r.decls[decl.Name.String()] = decl
	}
	for _, sub := range m.Submodules {
		r.index(sub)
	}
}

// Lookup finds a declaration by its fully qualified host name.
func (r *Registry) Lookup(name string) (*TypeDeclaration, bool) {
	decl, ok := r.decls[name]
	return decl, ok
}

// Len returns the number of indexed declarations.
func (r *Registry) Len() int {
	return len(r.decls)
}
