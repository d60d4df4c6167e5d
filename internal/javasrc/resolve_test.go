package javasrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScope_ResolveName(t *testing.T) {
	outer := &Class{Name: "Outer", QualifiedName: "com.example.Outer"}
	inner := &Class{Name: "Inner", QualifiedName: "com.example.Outer.Inner", outer: outer}
	outer.Nested = []*Class{inner}

	s := &scope{
		pkg: "com.example",
		imports: []*importDecl{
			{Name: "org.apache.tiles.request.Request"},
			{Name: "com.other", OnDemand: true},
			{Name: "java.util", OnDemand: true},
			{Name: "org.junit.Assert", Static: true, OnDemand: true},
		},
		known: map[string]bool{
			"com.example.Sibling": true,
			"com.other.Helper":    true,
		},
		class:      inner,
		typeParams: map[string]bool{"T": true},
	}

	tests := []struct {
		name string
		want string
	}{
		{"int", "int"},
		{"void", "void"},
		{"T", "T"},
		{"Request", "org.apache.tiles.request.Request"},
		{"Inner", "com.example.Outer.Inner"},
		{"Outer", "com.example.Outer"},
		{"Sibling", "com.example.Sibling"},
		{"Helper", "com.other.Helper"},
		{"List", "java.util.List"},
		{"String", "java.lang.String"},
		{"java.util.Date", "java.util.Date"},
		{"Map.Entry", "java.util.Map.Entry"},
		{"Unknown", "com.example.Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.resolveName(tt.name))
		})
	}
}

func TestScope_ResolveRefDimensions(t *testing.T) {
	s := &scope{known: map[string]bool{}}
	ref := &typeRef{
		Parts: []*typePart{{Name: "String"}},
		Dims:  []string{"[", "["},
	}

	assert.Equal(t, "java.lang.String[][]", s.resolveRef(ref, 0))
	assert.Equal(t, "java.lang.String[][][]", s.resolveRef(ref, 1))
	assert.Equal(t, "", s.resolveRef(nil, 0))
}

func TestScope_DefaultPackage(t *testing.T) {
	s := &scope{known: map[string]bool{}}
	assert.Equal(t, "Thing", s.resolveName("Thing"))
	assert.Equal(t, "java.lang.Object", s.resolveName("Object"))
}

func TestScope_WithTypeParams(t *testing.T) {
	base := &scope{typeParams: map[string]bool{"S": true}}
	next := base.withTypeParams(&typeParams{Params: []*typeParam{{Name: "T"}}})

	assert.True(t, next.typeParams["S"])
	assert.True(t, next.typeParams["T"])
	assert.False(t, base.typeParams["T"])
	assert.Same(t, base, base.withTypeParams(nil))
}
