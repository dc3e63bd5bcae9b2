package lambari

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexengraf/lambari/pkg/diag"
	"github.com/hexengraf/lambari/pkg/types"
)

func TestDeclarationRender(t *testing.T) {
	a, buf := testAnalyzer()

	d := a.Declaration(types.Of(types.Int))
	d.Add("x")
	d.AddInit("y", intConst(a, "5"))

	assert.Empty(t, buf.String())
	assert.False(t, d.Failed())
	require.Equal(t, "int x;\nint y = 5;", d.Render(0))
}

func TestDeclarationRedeclaration(t *testing.T) {
	a, buf := testAnalyzer()

	d := a.Declaration(types.Of(types.Int))
	d.Add("x")

	e := a.Declaration(types.Of(types.Float))
	e.Add("x")

	assert.Equal(t,
		"[Line 1] semantic error: re-declaration of variable x\n",
		buf.String())
	assert.Equal(t, 1, a.Diags.Count(diag.MultipleDefinition))
	assert.True(t, e.Failed())
	assert.False(t, d.Failed())

	typ, ok := a.Scope.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, types.Of(types.Int), typ, "first declaration stays in scope")

	assert.Equal(t, "float x;", e.Render(0), "the attempt is still recorded for rendering")
}

func TestDeclarationInitializerMustMatchExactly(t *testing.T) {
	a, buf := testAnalyzer()

	// coercion does not apply to declarations
	d := a.Declaration(types.Of(types.Float))
	d.AddInit("f", intConst(a, "1"))

	assert.Equal(t,
		"[Line 1] semantic error: attribution operation expected float but received integer\n",
		buf.String())
	assert.True(t, d.Failed())
}

func TestDeclarationFromLiteral(t *testing.T) {
	a, buf := testAnalyzer()

	d := a.Declaration(types.Of(types.Bool))
	d.AddLiteral("flag", types.Literal{Text: "true", Type: types.Of(types.Bool)})

	assert.Empty(t, buf.String())
	assert.Equal(t, "bool flag = true;", d.Render(0))
}

func TestDeclarationIndented(t *testing.T) {
	a, _ := testAnalyzer()

	d := a.Declaration(types.Of(types.Int))
	d.Add("x")
	d.Add("y")

	assert.Equal(t, "    int x;\n    int y;", d.Render(1))
}

func TestVarDecl(t *testing.T) {
	t.Run("without initializer", func(t *testing.T) {
		a, buf := testAnalyzer()

		d := a.VarDecl(types.Of(types.Int), "x", nil)

		assert.Empty(t, buf.String())
		assert.Equal(t, "int x;", d.Render(0))
		assert.Equal(t, types.Of(types.Int), d.Type())
	})

	t.Run("with initializer", func(t *testing.T) {
		a, _ := testAnalyzer()

		d := a.VarDecl(types.Of(types.Float), "f", floatConst(a, "1.5"))

		assert.False(t, d.Failed())
		assert.Equal(t, "float f = 1.5;", d.Render(0))
	})

	t.Run("initializer type mismatch", func(t *testing.T) {
		a, _ := testAnalyzer()

		d := a.VarDecl(types.Of(types.Int), "x", boolConst(a, "true"))

		assert.True(t, d.Failed())
		assert.Equal(t, 1, a.Diags.Count(diag.IncompatibleAssignment))
	})

	t.Run("redeclaration", func(t *testing.T) {
		a, _ := testAnalyzer()

		a.VarDecl(types.Of(types.Int), "x", nil)
		d := a.VarDecl(types.Of(types.Int), "x", nil)

		assert.True(t, d.Failed())
		assert.Equal(t, 1, a.Diags.Count(diag.MultipleDefinition))
	})
}

func TestArrayDecl(t *testing.T) {
	a, buf := testAnalyzer()

	d := a.ArrayDecl(types.Of(types.Int), "values", "10")

	assert.Empty(t, buf.String())
	assert.Equal(t, "int values[10];", d.Render(0))
	assert.Equal(t, types.ArrayOf(types.Int), d.Type())

	typ, ok := a.Scope.Lookup("values")
	require.True(t, ok)
	assert.Equal(t, types.ArrayOf(types.Int), typ)

	dup := a.ArrayDecl(types.Of(types.Int), "values", "20")
	assert.True(t, dup.Failed())
	assert.Equal(t, 1, a.Diags.Count(diag.MultipleDefinition))
}
