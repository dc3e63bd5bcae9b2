package lambari

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"

	"github.com/hexengraf/lambari/pkg/types"
)

// buildSampleProgram drives the constructors the way a parser's action
// stack would: declarations, a function definition with its own scope
// level, a counted loop, and a conditional with a nested declaration.
func buildSampleProgram(t *testing.T, a *Analyzer) *Block {
	t.Helper()

	prog := a.Block()

	decl := a.Declaration(types.Of(types.Int))
	decl.Add("i")
	decl.AddInit("total", a.Constant(types.Of(types.Int), "0"))
	prog.Add(decl)

	fun := a.Fun(types.Of(types.Float), "average")
	params := a.ParamList()
	params.Add(types.Of(types.Float), "sum")
	params.Add(types.Of(types.Int), "count")

	a.Scope.Enter()
	require.NoError(t, a.Scope.Declare("sum", types.Of(types.Float)))
	require.NoError(t, a.Scope.Declare("count", types.Of(types.Int)))
	body := a.Block()
	body.Add(a.Return(a.Operation(types.Divide, a.Variable("sum"), a.Variable("count"))))
	a.Scope.Leave()

	fun.Bind(params, body)
	prog.Add(fun)

	init := a.Assignment(a.Variable("i"), a.Constant(types.Of(types.Int), "0"))
	test := a.Comparison(types.LessThan, a.Variable("i"), a.Constant(types.Of(types.Int), "10"))
	update := a.Assignment(a.Variable("i"),
		a.Operation(types.Plus, a.Variable("i"), a.Constant(types.Of(types.Int), "1")))
	loopBody := a.Block()
	loopBody.Add(a.Assignment(a.Variable("total"),
		a.Operation(types.Plus, a.Variable("total"), a.Variable("i"))))
	prog.Add(a.Loop(init, test, update, loopBody))

	cond := a.Comparison(types.GreaterThan, a.Variable("total"), a.Constant(types.Of(types.Int), "0"))

	a.Scope.Enter()
	accepted := a.Block()
	args := a.ExpressionList()
	args.Add(a.Variable("total"))
	args.Add(a.Constant(types.Of(types.Int), "10"))
	avg := a.Declaration(types.Of(types.Float))
	avg.AddInit("avg", a.FunCall("average", args))
	accepted.Add(avg)
	a.Scope.Leave()

	prog.Add(a.Conditional(cond, accepted, nil))

	return prog
}

func TestProgramRender(t *testing.T) {
	a, buf := testAnalyzer()

	prog := buildSampleProgram(t, a)
	a.Finish()

	require.Empty(t, buf.String(), "the sample program is semantically clean")
	require.False(t, prog.Failed())

	golden.Assert(t, prog.Render(0)+"\n", "program.golden")
}

func TestProgramRenderIdempotence(t *testing.T) {
	a, _ := testAnalyzer()

	prog := buildSampleProgram(t, a)
	require.Equal(t, prog.Render(0), prog.Render(0))
}
