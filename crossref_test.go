package chisel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chisel-gen/chisel"
	"github.com/chisel-gen/chisel/mocks"
)

func docMethod(name string, anchors ...string) chisel.Method {
	m := freeMethod(name).ToMethod()
	m.Docs = []chisel.DocItem{{NativeName: name, Anchors: anchors}}
	return m
}

func TestLinkCrossReferences(t *testing.T) {
	pointRef := chisel.CrossReference{
		Name: chisel.Name{"qt_core", "QPoint"},
		Kind: chisel.CrossReferenceType,
	}

	resolver := mocks.NewCrossReferenceResolver(t)
	resolver.EXPECT().Resolve("QPoint").Return(pointRef, true)
	resolver.EXPECT().Resolve("QMissing").Return(chisel.CrossReference{}, false)

	root := &chisel.Module{
		Name:      "qt_core",
		Functions: []chisel.Method{docMethod("version", "QPoint", "QMissing")},
	}

	chisel.LinkCrossReferences(root, resolver)

	refs := root.Functions[0].Docs[0].CrossReferences
	require.Equal(t, []chisel.CrossReference{pointRef}, refs)
}

func TestLinkCrossReferencesWalksTheWholeTree(t *testing.T) {
	methodRef := chisel.CrossReference{
		Name:        chisel.Name{"qt_core", "QPoint", "x"},
		Kind:        chisel.CrossReferenceMethod,
		MethodScope: &chisel.Scope{Kind: chisel.ScopeImpl, Target: chisel.Named("qt_core", "QPoint")},
	}

	wrapper := &chisel.WrapperDeclaration{
		Methods: []chisel.Method{docMethod("x", "QPoint::x")},
		TraitImpls: []chisel.TraitImpl{{
			TargetType: chisel.Named("qt_core", "QPoint"),
			TraitType:  chisel.Named("Eq"),
			Methods:    []chisel.Method{docMethod("eq", "QPoint::x")},
		}},
	}
	root := &chisel.Module{
		Name: "artifact",
		Submodules: []*chisel.Module{{
			Name: "qt_core",
			Types: []chisel.TypeDeclaration{{
				Public: true,
				Name:   chisel.Name{"artifact", "qt_core", "QPoint"},
				Kind:   wrapper,
			}},
		}},
	}

	chisel.LinkCrossReferences(root, chisel.TableResolver{"QPoint::x": methodRef})

	require.Equal(t, []chisel.CrossReference{methodRef}, wrapper.Methods[0].Docs[0].CrossReferences)
	require.Equal(t, []chisel.CrossReference{methodRef}, wrapper.TraitImpls[0].Methods[0].Docs[0].CrossReferences)
}

func TestTableResolver(t *testing.T) {
	table := chisel.TableResolver{
		"QPoint": {Name: chisel.Name{"QPoint"}, Kind: chisel.CrossReferenceType},
	}

	ref, ok := table.Resolve("QPoint")
	require.True(t, ok)
	require.Equal(t, chisel.Name{"QPoint"}, ref.Name)

	_, ok = table.Resolve("QMissing")
	require.False(t, ok)
}
