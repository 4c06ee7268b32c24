// Package assemble builds the generated namespace tree from an introspection
// snapshot: type descriptors first, then methods and trait impls, then the
// module tree bottom-up.
package assemble

import (
	"context"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/chisel-gen/chisel"
	"github.com/chisel-gen/chisel/log"
	"github.com/chisel-gen/chisel/native"
)

// Config controls one assembly pass.
type Config struct {
	// ArtifactName is the root module name of the generated artifact.
	ArtifactName string
	// CaptionOrder is the strategy priority for overload disambiguation.
	// Defaults to chisel.DefaultCaptionOrder.
	CaptionOrder []chisel.CaptionStrategy
}

// Assembler turns one snapshot into a module tree. A single pass over an
// immutable snapshot; not safe for concurrent use and not meant to be.
type Assembler struct {
	snapshot  *native.Snapshot
	cfg       Config
	processed []chisel.ProcessedTypeInfo
}

func New(snapshot *native.Snapshot, cfg Config) *Assembler {
	if len(cfg.CaptionOrder) == 0 {
		cfg.CaptionOrder = chisel.DefaultCaptionOrder()
	}
	return &Assembler{snapshot: snapshot, cfg: cfg}
}

// ProcessedTypes returns the flat descriptor list of the last Build, in
// snapshot order, for the export manifest.
func (a *Assembler) ProcessedTypes() []chisel.ProcessedTypeInfo {
	return a.processed
}

// Build assembles the whole tree. Children are fully built before being
// attached to their owning module; the returned tree has no back-references.
func (a *Assembler) Build(ctx context.Context) (*chisel.Module, error) {
	ctx, span := otel.Tracer("").Start(ctx, "assemble.Build")
	defer span.End()

	a.processed = nil
	root := &chisel.Module{Name: strcase.ToSnake(a.cfg.ArtifactName)}
	tree := &treeBuilder{root: root}

	if err := a.buildEnums(ctx, tree); err != nil {
		return nil, err
	}
	if err := a.buildClasses(ctx, tree); err != nil {
		return nil, err
	}
	if err := a.buildFreeFunctions(ctx, tree); err != nil {
		return nil, err
	}

	log.Println("assembled", len(a.processed), "types from", a.snapshot.Library)
	return root, nil
}

func (a *Assembler) buildEnums(ctx context.Context, tree *treeBuilder) error {
	_, span := otel.Tracer("").Start(ctx, "assemble.buildEnums")
	defer span.End()

	for _, e := range a.snapshot.Enums {
		info := BuildEnumDescriptor(a.cfg.ArtifactName, e)
		a.processed = append(a.processed, info)

		namespaces, _ := splitQualified(e.Name)
		module := tree.ensure(namespaces)
		module.Types = append(module.Types, chisel.TypeDeclaration{
			Public: info.Public,
			Name:   info.HostName,
			Kind:   &chisel.WrapperDeclaration{Info: info},
		})
	}
	return nil
}

func (a *Assembler) buildClasses(ctx context.Context, tree *treeBuilder) error {
	_, span := otel.Tracer("").Start(ctx, "assemble.buildClasses")
	defer span.End()

	for _, c := range a.snapshot.Classes {
		info := BuildStructDescriptor(a.cfg.ArtifactName, c)
		a.processed = append(a.processed, info)

		decl, extraDecls, err := a.buildClassDeclaration(c, info)
		if err != nil {
			return errors.Wrapf(err, "building class %s", c.Name)
		}

		namespaces, _ := splitQualified(c.Name)
		module := tree.ensure(namespaces)
		module.Types = append(module.Types, decl)
		module.Types = append(module.Types, extraDecls...)
	}
	return nil
}

// buildClassDeclaration assembles one class: instance/static methods grouped
// into families, operator overloads as trait impls, destructible and slot
// wrapper bindings, and signal/slot receiver declarations.
func (a *Assembler) buildClassDeclaration(c native.Class, info chisel.ProcessedTypeInfo) (chisel.TypeDeclaration, []chisel.TypeDeclaration, error) {
	target := chisel.HostType{Kind: chisel.NamedType, Name: info.HostName}

	var plain []native.Function
	var impls []chisel.TraitImpl
	for _, fn := range c.Methods {
		if impl, ok := buildOperatorImpl(fn, target); ok {
			impls = append(impls, impl)
			continue
		}
		plain = append(plain, fn)
	}

	var methods []chisel.Method
	var extraDecls []chisel.TypeDeclaration
	for _, family := range groupByDeclaredName(plain, chisel.ImplScope(target), info.HostName) {
		built, decls, err := a.assembleFamily(family, info.Public)
		if err != nil {
			return chisel.TypeDeclaration{}, nil, err
		}
		methods = append(methods, built...)
		extraDecls = append(extraDecls, decls...)
	}

	if c.HasPublicDestructor {
		impls = append(impls, deletableImpl(target, c.DeleterSymbol))
	}
	if kind, ok := info.Kind.(*chisel.StructKind); ok && kind.SlotWrapper != nil {
		impls = append(impls, slotInvokerImpl(target, kind.SlotWrapper))
	}

	decl := chisel.TypeDeclaration{
		Public: info.Public,
		Name:   info.HostName,
		Kind: &chisel.WrapperDeclaration{
			Info:       info,
			Methods:    methods,
			TraitImpls: impls,
			Receivers:  buildReceivers(info.HostName, c.Receivers),
		},
	}
	return decl, extraDecls, nil
}

func (a *Assembler) buildFreeFunctions(ctx context.Context, tree *treeBuilder) error {
	_, span := otel.Tracer("").Start(ctx, "assemble.buildFreeFunctions")
	defer span.End()

	// Group by namespace first so each family lands in its owning module.
	var order []string
	byNamespace := map[string][]native.Function{}
	for _, fn := range a.snapshot.Functions {
		namespaces, _ := splitQualified(fn.Name)
		key := joinPath(namespaces)
		if _, seen := byNamespace[key]; !seen {
			order = append(order, key)
		}
		byNamespace[key] = append(byNamespace[key], fn)
	}

	for _, key := range order {
		namespaces := splitPath(key)
		module := tree.ensure(namespaces)

		baseName := chisel.Name{strcase.ToSnake(a.cfg.ArtifactName)}
		for _, ns := range namespaces {
			baseName = append(baseName, strcase.ToSnake(ns))
		}

		for _, family := range groupByDeclaredName(byNamespace[key], chisel.FreeScope(), baseName) {
			built, decls, err := a.assembleFamily(family, true)
			if err != nil {
				return errors.Wrap(err, "building free functions")
			}
			module.Functions = append(module.Functions, built...)
			module.Types = append(module.Types, decls...)
		}
	}
	return nil
}

// treeBuilder owns submodule creation. Modules are created on first use and
// named after their snake_cased namespace segment.
type treeBuilder struct {
	root *chisel.Module
}

func (b *treeBuilder) ensure(namespaces []string) *chisel.Module {
	module := b.root
	for _, ns := range namespaces {
		name := strcase.ToSnake(ns)
		var next *chisel.Module
		for _, sub := range module.Submodules {
			if sub.Name == name {
				next = sub
				break
			}
		}
		if next == nil {
			next = &chisel.Module{Name: name}
			module.Submodules = append(module.Submodules, next)
		}
		module = next
	}
	return module
}

func joinPath(parts []string) string {
	return strings.Join(parts, "::")
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, "::")
}
