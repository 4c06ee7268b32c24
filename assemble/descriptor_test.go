package assemble

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chisel-gen/chisel"
	"github.com/chisel-gen/chisel/native"
)

func TestHostTypeName(t *testing.T) {
	require.Equal(t, chisel.Name{"moqt", "qt", "GlobalColor"}, hostTypeName("moqt", "qt::GlobalColor"))
	require.Equal(t, chisel.Name{"moqt", "QPoint"}, hostTypeName("moqt", "QPoint"))
}

func TestBuildEnumDescriptorKeepsDeclarationOrder(t *testing.T) {
	e := native.Enum{
		Name: "Qt::AspectRatioMode",
		Values: []native.EnumValue{
			{Name: "IgnoreAspectRatio", Value: 0},
			{Name: "KeepAspectRatio", Value: 1, Doc: "<p>keeps it</p>"},
		},
		UsedInFlags: true,
		Public:      true,
	}

	info := BuildEnumDescriptor("moqt", e)
	require.Equal(t, chisel.Name{"moqt", "qt", "AspectRatioMode"}, info.HostName)
	require.True(t, info.Public)

	kind, ok := info.Kind.(*chisel.EnumKind)
	require.True(t, ok)
	require.True(t, kind.IsFlaggable)
	require.Len(t, kind.Values, 2)
	require.Equal(t, "IgnoreAspectRatio", kind.Values[0].Name)
	require.Equal(t, int64(1), kind.Values[1].Value)
	require.Len(t, kind.Values[1].Docs, 1)
	require.Equal(t, "KeepAspectRatio", kind.Values[1].Docs[0].NativeName)
	require.False(t, kind.Values[0].IsDummy)
	require.False(t, kind.Values[1].IsDummy)
}

func TestBuildEnumDescriptorPadsSingleVariantEnum(t *testing.T) {
	e := native.Enum{
		Name:   "Qt::Lonely",
		Values: []native.EnumValue{{Name: "OnlyOne", Value: 7}},
	}

	info := BuildEnumDescriptor("moqt", e)
	kind := info.Kind.(*chisel.EnumKind)
	require.Len(t, kind.Values, 2)
	require.Equal(t, int64(7), kind.Values[0].Value)
	require.False(t, kind.Values[0].IsDummy)
	require.True(t, kind.Values[1].IsDummy)
	require.Equal(t, int64(8), kind.Values[1].Value)
}

func TestBuildStructDescriptor(t *testing.T) {
	c := native.Class{
		Name:                "QPoint",
		Size:                8,
		HasPublicDestructor: true,
		Public:              true,
	}

	info := BuildStructDescriptor("moqt", c)
	require.Equal(t, chisel.Name{"moqt", "QPoint"}, info.HostName)

	kind, ok := info.Kind.(*chisel.StructKind)
	require.True(t, ok)
	require.Equal(t, "Q_POINT_SIZE", kind.SizeConstName)
	require.True(t, kind.IsDeletable)
	require.Nil(t, kind.SlotWrapper)
}

func TestBuildStructDescriptorWithoutKnownSize(t *testing.T) {
	c := native.Class{Name: "QPaintDevice", Size: -1}

	info := BuildStructDescriptor("moqt", c)
	kind := info.Kind.(*chisel.StructKind)
	require.Equal(t, "", kind.SizeConstName)
	require.False(t, kind.IsDeletable)
}

func TestBuildReceivers(t *testing.T) {
	receivers := []native.Receiver{
		{MethodName: "valueChanged", Kind: native.Signal, ReceiverID: "sig:valueChanged", Arguments: []chisel.HostType{chisel.Named("int")}},
		{MethodName: "setValue", Kind: native.Slot, ReceiverID: "slot:setValue"},
	}

	decls := buildReceivers(chisel.Name{"moqt", "QSlider"}, receivers)
	require.Len(t, decls, 2)
	require.Equal(t, "moqt::QSlider", decls[0].TypeName)
	require.Equal(t, "value_changed", decls[0].MethodName)
	require.Equal(t, chisel.SignalReceiver, decls[0].Kind)
	require.Equal(t, chisel.SlotReceiver, decls[1].Kind)

	require.Nil(t, buildReceivers(chisel.Name{"moqt", "QSlider"}, nil))
}
