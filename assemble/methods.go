package assemble

import (
	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"

	"github.com/chisel-gen/chisel"
	"github.com/chisel-gen/chisel/native"
)

// singleFromFunction converts one introspected function into a pre-assembly
// method record. baseName is the host path the method name is appended to.
func singleFromFunction(fn native.Function, scope chisel.Scope, baseName chisel.Name, declared string) chisel.SingleMethod {
	name := make(chisel.Name, len(baseName), len(baseName)+1)
	copy(name, baseName)
	name = append(name, strcase.ToSnake(declared))

	args := make([]chisel.MethodArgument, 0, len(fn.Arguments))
	for _, a := range fn.Arguments {
		args = append(args, chisel.MethodArgument{
			Type:          a.Type,
			Name:          a.Name,
			CallSiteIndex: a.CallSiteIndex,
		})
	}

	return chisel.SingleMethod{
		Scope:  scope,
		Unsafe: fn.Unsafe,
		Name:   name,
		Variant: chisel.MethodVariant{
			Arguments:           args,
			NativeMethod:        chisel.NativeMethod{Name: fn.Name, Symbol: fn.Symbol, Doc: fn.Doc},
			ReturnType:          fn.Returns.Type,
			ReturnCallSiteIndex: fn.Returns.CallSiteIndex,
		},
		Doc: &chisel.DocItem{
			HTML:       fn.Doc,
			NativeName: fn.Name,
			HostFns:    []string{name.Last()},
			Anchors:    fn.Anchors,
		},
	}
}

// groupByDeclaredName splits records into variant families, preserving
// discovery order of both families and members.
func groupByDeclaredName(fns []native.Function, scope chisel.Scope, baseName chisel.Name) [][]chisel.SingleMethod {
	var order []string
	families := map[string][]chisel.SingleMethod{}
	for _, fn := range fns {
		_, declared := splitQualified(fn.Name)
		if _, seen := families[declared]; !seen {
			order = append(order, declared)
		}
		families[declared] = append(families[declared], singleFromFunction(fn, scope, baseName, declared))
	}
	out := make([][]chisel.SingleMethod, 0, len(order))
	for _, declared := range order {
		out = append(out, families[declared])
	}
	return out
}

// partitionFamily splits a variant family into overload sets: members of one
// set are pairwise overloadable and can share a host name through the
// parameters trait; members of different sets need distinct names.
func partitionFamily(family []chisel.SingleMethod) ([][]chisel.SingleMethod, error) {
	var buckets [][]chisel.SingleMethod
	for _, m := range family {
		placed := false
		for i, bucket := range buckets {
			fits := true
			for _, member := range bucket {
				ok, err := member.CanBeOverloadedWith(m)
				if err != nil {
					return nil, err
				}
				if !ok {
					fits = false
					break
				}
			}
			if fits {
				buckets[i] = append(buckets[i], m)
				placed = true
				break
			}
		}
		if !placed {
			buckets = append(buckets, []chisel.SingleMethod{m})
		}
	}
	return buckets, nil
}

// assignCaptions renames the buckets of one family so their host names are
// unique. Strategies are tried in priority order; the first one yielding a
// unique suffix set wins. Strategies that have no captioning context for
// these methods are skipped; structural failures propagate.
func assignCaptions(buckets [][]chisel.SingleMethod, order []chisel.CaptionStrategy) error {
	allKinds := map[chisel.SelfArgKind]bool{}
	for _, bucket := range buckets {
		for _, m := range bucket {
			kind, err := m.SelfArgKind()
			if err != nil {
				return err
			}
			allKinds[kind] = true
		}
	}

	for _, strategy := range order {
		suffixes := make([]string, len(buckets))
		usable := true
		for i, bucket := range buckets {
			suffix, err := bucket[0].NameSuffix(strategy, allKinds, i)
			if err != nil {
				if errors.Is(err, chisel.ErrUnsupportedCaptionContext) {
					usable = false
					break
				}
				return err
			}
			suffixes[i] = suffix
		}
		if !usable || !allUnique(suffixes) {
			continue
		}
		for i, bucket := range buckets {
			if suffixes[i] == "" {
				continue
			}
			for j := range bucket {
				bucket[j].Name = bucket[j].Name.WithSuffix(suffixes[i])
			}
		}
		return nil
	}
	return errors.Errorf("variants of %s cannot be disambiguated by any caption strategy",
		buckets[0][0].Name)
}

func allUnique(suffixes []string) bool {
	seen := map[string]bool{}
	for _, s := range suffixes {
		if seen[s] {
			return false
		}
		seen[s] = true
	}
	return true
}

// assembleFamily turns one variant family into methods: single-variant
// records stay as they are, overload sets of more than one variant are
// promoted to a MultipleVariants aggregate with its parameters trait
// declaration.
func (a *Assembler) assembleFamily(family []chisel.SingleMethod, public bool) ([]chisel.Method, []chisel.TypeDeclaration, error) {
	buckets, err := partitionFamily(family)
	if err != nil {
		return nil, nil, errors.Wrap(err, "partitioning variant family")
	}
	if len(buckets) > 1 {
		if err := assignCaptions(buckets, a.cfg.CaptionOrder); err != nil {
			return nil, nil, errors.Wrap(err, "assigning captions")
		}
	}

	var methods []chisel.Method
	var decls []chisel.TypeDeclaration
	for _, bucket := range buckets {
		if len(bucket) == 1 {
			methods = append(methods, bucket[0].ToMethod())
			continue
		}
		traitName := strcase.ToCamel(bucket[0].Name.Last()) + "Args"
		m, err := chisel.Promote(bucket, traitName, "args")
		if err != nil {
			return nil, nil, errors.Wrap(err, "promoting variant family")
		}
		methods = append(methods, m)
		decls = append(decls, paramsTraitDeclaration(m, public))
	}
	return methods, decls, nil
}

// paramsTraitDeclaration materializes the aggregation trait of a promoted
// method as a type declaration owned by the same module.
func paramsTraitDeclaration(m chisel.Method, public bool) chisel.TypeDeclaration {
	mv := m.Arguments.(*chisel.MultipleVariants)

	var returnType *chisel.HostType
	shared := true
	for _, v := range mv.Variants {
		if !v.ReturnType.Equal(mv.Variants[0].ReturnType) {
			shared = false
			break
		}
	}
	if shared && len(mv.Variants) > 0 {
		r := mv.Variants[0].ReturnType.Host
		returnType = &r
	}

	name := make(chisel.Name, len(m.Name))
	copy(name, m.Name)
	name[len(name)-1] = mv.ParamsTraitName

	return chisel.TypeDeclaration{
		Public: public,
		Name:   name,
		Kind: &chisel.ParamsTraitDeclaration{
			SharedArguments: mv.SharedArguments,
			ReturnType:      returnType,
			Variants:        mv.Variants,
			MethodScope:     m.Scope,
			MethodName:      m.Name,
			Unsafe:          m.Unsafe,
		},
	}
}
