package assemble

import (
	"github.com/chisel-gen/chisel"
	"github.com/chisel-gen/chisel/native"
)

func valueType(base string) chisel.ResolvedType {
	return chisel.ResolvedType{
		Host:   chisel.Named(base),
		Native: chisel.NativeType{Base: base},
	}
}

func refType(parts ...string) chisel.ResolvedType {
	return chisel.ResolvedType{
		Host: chisel.HostType{
			Kind:        chisel.NamedType,
			Name:        parts,
			Const:       true,
			Indirection: chisel.IndirectionRef,
		},
		Native: chisel.NativeType{
			Base:        parts[len(parts)-1],
			Const:       true,
			Indirection: chisel.NativeRef,
		},
	}
}

func mutRefType(parts ...string) chisel.ResolvedType {
	t := refType(parts...)
	t.Host.Const = false
	t.Native.Const = false
	return t
}

func nativeSelf(constRef bool, parts ...string) native.Argument {
	t := mutRefType(parts...)
	if constRef {
		t = refType(parts...)
	}
	return native.Argument{Name: chisel.SelfArgumentName, Type: t}
}

func nativeArg(name, base string) native.Argument {
	return native.Argument{Name: name, Type: valueType(base)}
}

func nativeFn(name, symbol string, args ...native.Argument) native.Function {
	return native.Function{
		Name:      name,
		Symbol:    symbol,
		Arguments: args,
		Returns:   native.Return{Type: chisel.ResolvedType{Host: chisel.Unit()}},
	}
}

func returning(fn native.Function, base string) native.Function {
	fn.Returns = native.Return{Type: valueType(base)}
	return fn
}
