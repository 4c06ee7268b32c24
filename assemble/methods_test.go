package assemble

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chisel-gen/chisel"
	"github.com/chisel-gen/chisel/native"
)

func TestGroupByDeclaredName(t *testing.T) {
	fns := []native.Function{
		nativeFn("qt::clamp", "ffi_clamp_i", nativeArg("value", "int")),
		nativeFn("qt::bound", "ffi_bound", nativeArg("value", "int")),
		nativeFn("qt::clamp", "ffi_clamp_d", nativeArg("value", "double")),
	}

	families := groupByDeclaredName(fns, chisel.FreeScope(), chisel.Name{"moqt", "qt"})
	require.Len(t, families, 2)
	require.Len(t, families[0], 2)
	require.Equal(t, chisel.Name{"moqt", "qt", "clamp"}, families[0][0].Name)
	require.Equal(t, "ffi_clamp_d", families[0][1].Variant.NativeMethod.Symbol)
	require.Len(t, families[1], 1)
	require.Equal(t, chisel.Name{"moqt", "qt", "bound"}, families[1][0].Name)
}

func TestSingleFromFunctionBuildsDoc(t *testing.T) {
	fn := nativeFn("QPoint::setX", "ffi_QPoint_setX", nativeSelf(false, "moqt", "QPoint"), nativeArg("x", "int"))
	fn.Doc = "<p>Sets x.</p>"
	fn.Anchors = []string{"QPoint::x"}

	single := singleFromFunction(fn, chisel.ImplScope(chisel.Named("moqt", "QPoint")), chisel.Name{"moqt", "QPoint"}, "setX")
	require.Equal(t, chisel.Name{"moqt", "QPoint", "set_x"}, single.Name)
	require.Len(t, single.Variant.Arguments, 2)
	require.Equal(t, chisel.SelfArgumentName, single.Variant.Arguments[0].Name)
	require.NotNil(t, single.Doc)
	require.Equal(t, []string{"set_x"}, single.Doc.HostFns)
	require.Equal(t, []string{"QPoint::x"}, single.Doc.Anchors)
}

func TestPartitionFamilySeparatesCollidingVariants(t *testing.T) {
	scope := chisel.ImplScope(chisel.Named("moqt", "QPoint"))
	base := chisel.Name{"moqt", "QPoint"}
	family := []chisel.SingleMethod{
		singleFromFunction(nativeFn("QPoint::setX", "s1", nativeSelf(false, "moqt", "QPoint"), nativeArg("x", "int")), scope, base, "setX"),
		singleFromFunction(nativeFn("QPoint::setX", "s2", nativeSelf(false, "moqt", "QPoint"), nativeArg("x", "double")), scope, base, "setX"),
		singleFromFunction(nativeFn("QPoint::setX", "s3", nativeSelf(false, "moqt", "QPoint"), nativeArg("value", "int")), scope, base, "setX"),
	}

	buckets, err := partitionFamily(family)
	require.NoError(t, err)
	// int and double coexist in one overload set; the second int variant
	// collides with the first and needs its own name.
	require.Len(t, buckets, 2)
	require.Len(t, buckets[0], 2)
	require.Len(t, buckets[1], 1)
	require.Equal(t, "s3", buckets[1][0].Variant.NativeMethod.Symbol)
}

func TestAssignCaptionsEscalatesToArgNames(t *testing.T) {
	scope := chisel.ImplScope(chisel.Named("moqt", "QPoint"))
	base := chisel.Name{"moqt", "QPoint"}
	buckets := [][]chisel.SingleMethod{
		{singleFromFunction(nativeFn("QPoint::setX", "s1", nativeSelf(false, "moqt", "QPoint"), nativeArg("x", "int")), scope, base, "setX")},
		{singleFromFunction(nativeFn("QPoint::setX", "s2", nativeSelf(false, "moqt", "QPoint"), nativeArg("value", "int")), scope, base, "setX")},
	}

	// Argument types agree, so the type strategy cannot tell the buckets
	// apart; argument names can.
	err := assignCaptions(buckets, chisel.DefaultCaptionOrder())
	require.NoError(t, err)
	require.Equal(t, chisel.Name{"moqt", "QPoint", "set_x_x"}, buckets[0][0].Name)
	require.Equal(t, chisel.Name{"moqt", "QPoint", "set_x_value"}, buckets[1][0].Name)
}

func TestAssignCaptionsFallsBackToIndex(t *testing.T) {
	scope := chisel.ImplScope(chisel.Named("moqt", "QPoint"))
	base := chisel.Name{"moqt", "QPoint"}
	buckets := [][]chisel.SingleMethod{
		{singleFromFunction(nativeFn("QPoint::setX", "s1", nativeSelf(false, "moqt", "QPoint"), nativeArg("x", "int")), scope, base, "setX")},
		{singleFromFunction(nativeFn("QPoint::setX", "s2", nativeSelf(false, "moqt", "QPoint"), nativeArg("x", "int")), scope, base, "setX")},
	}

	err := assignCaptions(buckets, chisel.DefaultCaptionOrder())
	require.NoError(t, err)
	require.Equal(t, chisel.Name{"moqt", "QPoint", "set_x_0"}, buckets[0][0].Name)
	require.Equal(t, chisel.Name{"moqt", "QPoint", "set_x_1"}, buckets[1][0].Name)
}

func TestAssembleFamilyPromotesOverloadSets(t *testing.T) {
	a := New(&native.Snapshot{}, Config{ArtifactName: "moqt"})
	scope := chisel.ImplScope(chisel.Named("moqt", "QPoint"))
	base := chisel.Name{"moqt", "QPoint"}
	family := []chisel.SingleMethod{
		singleFromFunction(returning(nativeFn("QPoint::setX", "s1", nativeSelf(false, "moqt", "QPoint"), nativeArg("x", "int")), "int"), scope, base, "setX"),
		singleFromFunction(returning(nativeFn("QPoint::setX", "s2", nativeSelf(false, "moqt", "QPoint"), nativeArg("x", "double")), "int"), scope, base, "setX"),
	}

	methods, decls, err := a.assembleFamily(family, true)
	require.NoError(t, err)
	require.Len(t, methods, 1)
	require.Len(t, decls, 1)

	mv, ok := methods[0].Arguments.(*chisel.MultipleVariants)
	require.True(t, ok)
	require.Equal(t, "SetXArgs", mv.ParamsTraitName)
	require.Equal(t, "args", mv.VariantArgumentName)
	require.Len(t, mv.SharedArguments, 1)
	require.Len(t, mv.Variants, 2)

	require.Equal(t, chisel.Name{"moqt", "QPoint", "SetXArgs"}, decls[0].Name)
	trait, ok := decls[0].Kind.(*chisel.ParamsTraitDeclaration)
	require.True(t, ok)
	require.Equal(t, methods[0].Name, trait.MethodName)
	require.NotNil(t, trait.ReturnType)
	require.Equal(t, chisel.Named("int"), *trait.ReturnType)
}

func TestAssembleFamilyLeavesSingleVariantsAlone(t *testing.T) {
	a := New(&native.Snapshot{}, Config{ArtifactName: "moqt"})
	family := []chisel.SingleMethod{
		singleFromFunction(nativeFn("qt::qVersion", "ffi_qVersion"), chisel.FreeScope(), chisel.Name{"moqt", "qt"}, "qVersion"),
	}

	methods, decls, err := a.assembleFamily(family, true)
	require.NoError(t, err)
	require.Len(t, methods, 1)
	require.Empty(t, decls)
	_, ok := methods[0].Arguments.(*chisel.SingleVariant)
	require.True(t, ok)
}
