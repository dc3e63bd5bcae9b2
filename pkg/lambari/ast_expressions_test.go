package lambari

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexengraf/lambari/pkg/diag"
	"github.com/hexengraf/lambari/pkg/types"
)

func TestVariable(t *testing.T) {
	t.Run("declared", func(t *testing.T) {
		a, buf := testAnalyzer()
		a.VarDecl(types.Of(types.Float), "f", nil)

		v := a.Variable("f")

		assert.Empty(t, buf.String())
		assert.False(t, v.Failed())
		assert.Equal(t, types.Of(types.Float), v.Type())
		assert.Equal(t, "f", v.Render(0))
	})

	t.Run("undeclared", func(t *testing.T) {
		a, buf := testAnalyzer()

		v := a.Variable("ghost")

		assert.Equal(t,
			"[Line 1] semantic error: undeclared variable ghost\n",
			buf.String())
		assert.True(t, v.Failed())
		assert.Equal(t, types.Of(types.Any), v.Type())
		assert.Equal(t, "ghost", v.Render(0), "still renders its name")
	})
}

func TestConstant(t *testing.T) {
	a, buf := testAnalyzer()

	c := a.Constant(types.Of(types.Int), "42")

	assert.Empty(t, buf.String())
	assert.False(t, c.Failed())
	assert.Equal(t, types.Of(types.Int), c.Type())
	assert.Equal(t, "42", c.Render(0))

	lit := a.Literal(types.Literal{Text: "1.5", Type: types.Of(types.Float)})
	assert.Equal(t, types.Of(types.Float), lit.Type())
	assert.Equal(t, "1.5", lit.Render(0))
}

func TestArrayIndex(t *testing.T) {
	t.Run("well-typed access", func(t *testing.T) {
		a, buf := testAnalyzer()
		a.ArrayDecl(types.Of(types.Int), "arr", "10")

		idx := a.ArrayIndex("arr", intConst(a, "0"))

		assert.Empty(t, buf.String())
		assert.False(t, idx.Failed())
		assert.Equal(t, types.Of(types.Int), idx.Type(), "element type")
		assert.Equal(t, "arr[0]", idx.Render(0))
	})

	t.Run("non-int index", func(t *testing.T) {
		a, buf := testAnalyzer()
		a.ArrayDecl(types.Of(types.Int), "arr", "10")

		idx := a.ArrayIndex("arr", boolConst(a, "true"))

		assert.Equal(t,
			"[Line 1] semantic error: index operator expects integer but received boolean\n",
			buf.String())
		assert.Equal(t, 1, a.Diags.Count(diag.IncompatibleIndex))
		assert.True(t, idx.Failed())
	})

	t.Run("indexing a scalar", func(t *testing.T) {
		a, _ := testAnalyzer()
		a.VarDecl(types.Of(types.Int), "notarray", nil)

		idx := a.ArrayIndex("notarray", intConst(a, "0"))

		assert.Equal(t, 1, a.Diags.Count(diag.NonArrayIndex))
		assert.Equal(t, 1, a.Diags.Total())
		assert.True(t, idx.Failed())
	})

	t.Run("unknown name", func(t *testing.T) {
		a, _ := testAnalyzer()

		idx := a.ArrayIndex("ghost", intConst(a, "0"))

		assert.Equal(t, 1, a.Diags.Count(diag.UndeclaredVariable))
		assert.True(t, idx.Failed())
	})

	t.Run("failed index cascades silently", func(t *testing.T) {
		a, _ := testAnalyzer()
		a.ArrayDecl(types.Of(types.Int), "arr", "10")

		bad := a.Variable("missing")
		idx := a.ArrayIndex("arr", bad)

		assert.True(t, idx.Failed())
		assert.Equal(t, 1, a.Diags.Total(), "only the child's diagnostic")
	})
}

func TestAddress(t *testing.T) {
	a, buf := testAnalyzer()
	a.VarDecl(types.Of(types.Int), "x", nil)

	addr := a.Address(a.Variable("x"))

	assert.Empty(t, buf.String())
	assert.False(t, addr.Failed())
	assert.Equal(t, types.PointerTo(types.Of(types.Int)), addr.Type())
	assert.Equal(t, "&x", addr.Render(0))
}

func TestReference(t *testing.T) {
	a, _ := testAnalyzer()
	a.VarDecl(types.Of(types.Float), "f", nil)

	ref := a.Reference(a.Variable("f"))

	assert.False(t, ref.Failed())
	assert.Equal(t, types.ReferenceTo(types.Of(types.Float)), ref.Type())
	assert.Equal(t, "*f", ref.Render(0))
}

func TestAddressPropagatesFailureSilently(t *testing.T) {
	a, _ := testAnalyzer()

	addr := a.Address(a.Variable("missing"))

	assert.True(t, addr.Failed())
	assert.Equal(t, 1, a.Diags.Total())
}
