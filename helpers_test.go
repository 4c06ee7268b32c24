package chisel_test

import (
	"github.com/chisel-gen/chisel"
)

// selfArg builds a receiver argument with the given indirection/constness.
func selfArg(target string, indirection chisel.Indirection, isConst bool) chisel.MethodArgument {
	nativeIndirection := chisel.NativeValue
	switch indirection {
	case chisel.IndirectionRef:
		nativeIndirection = chisel.NativeRef
	case chisel.IndirectionPtr:
		nativeIndirection = chisel.NativePtr
	}
	return chisel.MethodArgument{
		Name: chisel.SelfArgumentName,
		Type: chisel.ResolvedType{
			Host: chisel.HostType{
				Kind:        chisel.NamedType,
				Name:        chisel.Name{target},
				Const:       isConst,
				Indirection: indirection,
			},
			Native: chisel.NativeType{
				Base:        target,
				Const:       isConst,
				Indirection: nativeIndirection,
			},
		},
	}
}

func constSelf(target string) chisel.MethodArgument {
	return selfArg(target, chisel.IndirectionRef, true)
}

func mutSelf(target string) chisel.MethodArgument {
	return selfArg(target, chisel.IndirectionRef, false)
}

// arg builds a plain by-value argument of a named type.
func arg(name, base string) chisel.MethodArgument {
	return chisel.MethodArgument{
		Name: name,
		Type: chisel.ResolvedType{
			Host:   chisel.Named(base),
			Native: chisel.NativeType{Base: base},
		},
	}
}

func freeMethod(name string, args ...chisel.MethodArgument) chisel.SingleMethod {
	return chisel.SingleMethod{
		Scope: chisel.FreeScope(),
		Name:  chisel.Name{name},
		Variant: chisel.MethodVariant{
			Arguments:    args,
			NativeMethod: chisel.NativeMethod{Name: name, Symbol: "ffi_" + name},
		},
	}
}

func implMethod(target, name string, args ...chisel.MethodArgument) chisel.SingleMethod {
	return chisel.SingleMethod{
		Scope: chisel.ImplScope(chisel.Named(target)),
		Name:  chisel.Name{target, name},
		Variant: chisel.MethodVariant{
			Arguments:    args,
			NativeMethod: chisel.NativeMethod{Name: name, Symbol: "ffi_" + name},
		},
	}
}

func kindSet(kinds ...chisel.SelfArgKind) map[chisel.SelfArgKind]bool {
	set := map[chisel.SelfArgKind]bool{}
	for _, k := range kinds {
		set[k] = true
	}
	return set
}
