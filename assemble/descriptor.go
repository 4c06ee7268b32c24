package assemble

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/chisel-gen/chisel"
	"github.com/chisel-gen/chisel/native"
)

// splitQualified splits a native name into its namespace path and last
// segment.
func splitQualified(name string) ([]string, string) {
	parts := strings.Split(name, "::")
	return parts[:len(parts)-1], parts[len(parts)-1]
}

// hostTypeName maps a qualified native type name onto the host namespace
// tree: artifact root, snake_case namespace segments, PascalCase type name.
func hostTypeName(artifact, nativeName string) chisel.Name {
	namespaces, last := splitQualified(nativeName)
	name := chisel.Name{strcase.ToSnake(artifact)}
	for _, ns := range namespaces {
		name = append(name, strcase.ToSnake(ns))
	}
	return append(name, strcase.ToCamel(last))
}

// BuildEnumDescriptor converts one native enumeration into its processed
// descriptor. Values keep declaration order. An enumeration with exactly one
// native variant is padded with a synthetic dummy value so the generated
// representation is never a degenerate one-element enum.
func BuildEnumDescriptor(artifact string, e native.Enum) chisel.ProcessedTypeInfo {
	values := make([]chisel.EnumValue, 0, len(e.Values)+1)
	for _, v := range e.Values {
		value := chisel.EnumValue{
			Name:  strcase.ToCamel(v.Name),
			Value: v.Value,
		}
		if v.Doc != "" {
			value.Docs = []chisel.EnumValueDoc{{NativeName: v.Name, HTML: v.Doc}}
		}
		values = append(values, value)
	}
	if len(values) == 1 {
		values = append(values, chisel.EnumValue{
			Name:    "Invalid",
			Value:   values[0].Value + 1,
			IsDummy: true,
		})
	}
	return chisel.ProcessedTypeInfo{
		NativeName: e.Name,
		NativeDoc:  e.Doc,
		Kind:       &chisel.EnumKind{Values: values, IsFlaggable: e.UsedInFlags},
		HostName:   hostTypeName(artifact, e.Name),
		Public:     e.Public,
	}
}

// BuildStructDescriptor converts one native class into an opaque struct
// descriptor. The size constant is recorded only when the native size is
// statically knowable; otherwise the type is reference-only.
func BuildStructDescriptor(artifact string, c native.Class) chisel.ProcessedTypeInfo {
	hostName := hostTypeName(artifact, c.Name)

	sizeConst := ""
	if c.Size >= 0 {
		sizeConst = strcase.ToScreamingSnake(hostName.Last()) + "_SIZE"
	}

	var slotWrapper *chisel.SlotWrapper
	if c.SlotWrapper != nil {
		slotWrapper = &chisel.SlotWrapper{
			Arguments:    c.SlotWrapper.Arguments,
			ReceiverID:   c.SlotWrapper.ReceiverID,
			PublicName:   c.SlotWrapper.PublicName,
			CallbackName: c.SlotWrapper.CallbackName,
		}
	}

	return chisel.ProcessedTypeInfo{
		NativeName:        c.Name,
		NativeDoc:         c.Doc,
		TemplateArguments: c.TemplateArguments,
		Kind: &chisel.StructKind{
			SizeConstName: sizeConst,
			IsDeletable:   c.HasPublicDestructor,
			SlotWrapper:   slotWrapper,
		},
		HostName: hostName,
		Public:   c.Public,
	}
}

// buildReceivers converts a class's signal and slot descriptors.
func buildReceivers(typeName chisel.Name, receivers []native.Receiver) []chisel.ReceiverDeclaration {
	if len(receivers) == 0 {
		return nil
	}
	out := make([]chisel.ReceiverDeclaration, 0, len(receivers))
	for _, r := range receivers {
		kind := chisel.SignalReceiver
		if r.Kind == native.Slot {
			kind = chisel.SlotReceiver
		}
		out = append(out, chisel.ReceiverDeclaration{
			TypeName:   typeName.String(),
			MethodName: strcase.ToSnake(r.MethodName),
			Kind:       kind,
			ReceiverID: r.ReceiverID,
			Arguments:  r.Arguments,
		})
	}
	return out
}
