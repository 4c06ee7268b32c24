package assemble

import (
	"fmt"

	"github.com/iancoleman/strcase"

	"github.com/chisel-gen/chisel"
	"github.com/chisel-gen/chisel/native"
)

type operatorTrait struct {
	trait     string
	method    string
	hasOutput bool
}

// operatorTraits maps recognized native operator names to host operator
// traits. Unary minus is special-cased in operatorFor.
var operatorTraits = map[string]operatorTrait{
	"operator+":  {"Add", "add", true},
	"operator-":  {"Sub", "sub", true},
	"operator*":  {"Mul", "mul", true},
	"operator/":  {"Div", "div", true},
	"operator%":  {"Rem", "rem", true},
	"operator<<": {"Shl", "shl", true},
	"operator>>": {"Shr", "shr", true},
	"operator==": {"Eq", "eq", false},
	"operator<":  {"Lt", "lt", false},
	"operator>":  {"Gt", "gt", false},
	"operator!":  {"Not", "not", true},
	"operator[]": {"Index", "index", true},
}

// operatorFor resolves the trait for a native operator method, taking arity
// into account: "operator-" with only a receiver is a negation.
func operatorFor(fn native.Function) (operatorTrait, bool) {
	if fn.Name == "operator-" && len(fn.Arguments) <= 1 {
		return operatorTrait{"Neg", "neg", true}, true
	}
	op, ok := operatorTraits[fn.Name]
	return op, ok
}

// isOperator reports whether the function is a recognized operator overload.
func isOperator(fn native.Function) bool {
	_, ok := operatorFor(fn)
	return ok
}

// buildOperatorImpl wraps one operator overload into a trait impl on the
// target type.
func buildOperatorImpl(fn native.Function, target chisel.HostType) (chisel.TraitImpl, bool) {
	op, ok := operatorFor(fn)
	if !ok {
		return chisel.TraitImpl{}, false
	}

	single := singleFromFunction(fn, chisel.TraitImplScope(), nil, op.method)
	method := single.ToMethod()

	traitType := chisel.Named(op.trait)
	for _, arg := range fn.Arguments {
		if arg.Name == chisel.SelfArgumentName {
			continue
		}
		traitType.Args = append(traitType.Args, arg.Type.Host)
	}

	var associated []chisel.AssociatedType
	if op.hasOutput {
		associated = []chisel.AssociatedType{{Name: "Output", Value: fn.Returns.Type.Host}}
	}

	return chisel.TraitImpl{
		TargetType:      target,
		AssociatedTypes: associated,
		TraitType:       traitType,
		Methods:         []chisel.Method{method},
	}, true
}

// deletableImpl binds a destructible type to its native deleter symbol.
func deletableImpl(target chisel.HostType, deleterSymbol string) chisel.TraitImpl {
	return chisel.TraitImpl{
		TargetType: target,
		TraitType:  chisel.Named("Deletable"),
		Extra:      &chisel.TraitImplExtra{DeleterName: deleterSymbol},
	}
}

// slotInvokerImpl binds a reactive-callback wrapper type to its invocation
// trait: one trait method taking the wrapper's argument types and returning
// nothing.
func slotInvokerImpl(target chisel.HostType, wrapper *chisel.SlotWrapper) chisel.TraitImpl {
	selfType := target
	selfType.Indirection = chisel.IndirectionRef

	args := []chisel.MethodArgument{{
		Type: chisel.ResolvedType{Host: selfType},
		Name: chisel.SelfArgumentName,
	}}
	for i, t := range wrapper.Arguments {
		index := i
		args = append(args, chisel.MethodArgument{
			Type:          t,
			Name:          fmt.Sprintf("arg%d", i),
			CallSiteIndex: &index,
		})
	}

	method := chisel.Method{
		Scope: chisel.TraitImplScope(),
		Name:  chisel.Name{strcase.ToSnake(wrapper.CallbackName)},
		Arguments: &chisel.SingleVariant{Variant: chisel.MethodVariant{
			Arguments:    args,
			NativeMethod: chisel.NativeMethod{Name: wrapper.CallbackName, Symbol: wrapper.ReceiverID},
			ReturnType:   chisel.ResolvedType{Host: chisel.Unit()},
		}},
	}

	return chisel.TraitImpl{
		TargetType: target,
		TraitType:  chisel.Named("SlotInvoker"),
		Methods:    []chisel.Method{method},
	}
}
