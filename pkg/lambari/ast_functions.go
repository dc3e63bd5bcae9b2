package lambari

import (
	"strings"

	"github.com/hexengraf/lambari/pkg/scope"
	"github.com/hexengraf/lambari/pkg/types"
)

// ParamList is an ordered sequence of typed, named parameters. Duplicate
// names are not checked here; binding them into a scope level is the
// driver's job.
type ParamList struct {
	params []scope.Param
}

var _ Node = (*ParamList)(nil)

func (a *Analyzer) ParamList() *ParamList {
	return &ParamList{}
}

func (p *ParamList) Add(typ types.Type, name string) {
	p.params = append(p.params, scope.Param{Name: name, Type: typ})
}

func (p *ParamList) Len() int {
	return len(p.params)
}

// Params exposes the pairs for signature registration and comparison.
func (p *ParamList) Params() []scope.Param {
	return p.params
}

func (p *ParamList) Render(int) string {
	parts := make([]string, 0, len(p.params))
	for _, param := range p.params {
		parts = append(parts, param.Type.String()+" "+param.Name)
	}
	return strings.Join(parts, ", ")
}

func (p *ParamList) Failed() bool     { return false }
func (p *ParamList) Type() types.Type { return types.Of(types.Void) }

// Fun is built incrementally: the constructor records name and return type,
// Bind attaches the signature (and body, when present) and registers the
// function in scope, and Inject appends statements to the body. A Fun bound
// without a body is a forward declaration; whether it is ever completed is
// decided by the driver through Analyzer.Finish.
type Fun struct {
	an     *Analyzer
	name   string
	ret    types.Type
	params *ParamList
	body   Node
	fail   bool
}

var _ Node = (*Fun)(nil)

func (a *Analyzer) Fun(ret types.Type, name string) *Fun {
	return &Fun{an: a, ret: ret, name: name}
}

// Bind attaches the signature and optional body, and registers the
// function. A colliding registration emits MultipleDefinitionFn; completing
// an earlier forward declaration with the same signature is not a
// collision.
func (f *Fun) Bind(params *ParamList, body Node) {
	f.params = params
	f.body = body
	sig := scope.Signature{
		Params:  params.Params(),
		Return:  f.ret,
		Defined: body != nil,
	}
	if err := f.an.Scope.DeclareFunction(f.name, sig); err != nil {
		f.an.Diags.MultipleDefinitionFn(f.name)
		f.fail = true
	}
}

// Inject appends a statement to the body, creating one if the function had
// none yet.
func (f *Fun) Inject(stmt Node) {
	switch body := f.body.(type) {
	case nil:
		b := &Block{}
		b.Add(stmt)
		f.body = b
	case *Block:
		body.Add(stmt)
	default:
		b := &Block{}
		b.Add(body)
		b.Add(stmt)
		f.body = b
	}
}

// HasBody reports whether the function is a definition rather than a
// forward declaration.
func (f *Fun) HasBody() bool {
	return f.body != nil
}

func (f *Fun) Render(depth int) string {
	ind := indent(depth)
	head := ind + f.ret.String() + " " + f.name + "("
	if f.params != nil {
		head += f.params.Render(0)
	}
	head += ")"
	if f.body == nil {
		return head + ";"
	}
	return head + " " + renderBody(f.body, depth)
}

func (f *Fun) Failed() bool {
	if f.fail {
		return true
	}
	return f.body != nil && f.body.Failed()
}

func (f *Fun) Type() types.Type { return f.ret }

// ExpressionList is an ordered, appendable comma-list of expressions, used
// for call arguments among other things. It fails when any member fails.
type ExpressionList struct {
	exprs []Node
	fail  bool
}

var _ Node = (*ExpressionList)(nil)

func (a *Analyzer) ExpressionList() *ExpressionList {
	return &ExpressionList{}
}

func (l *ExpressionList) Add(expr Node) {
	if expr.Failed() {
		l.fail = true
	}
	l.exprs = append(l.exprs, expr)
}

func (l *ExpressionList) Size() int {
	return len(l.exprs)
}

func (l *ExpressionList) At(i int) Node {
	return l.exprs[i]
}

func (l *ExpressionList) Render(int) string {
	parts := make([]string, 0, len(l.exprs))
	for _, expr := range l.exprs {
		parts = append(parts, expr.Render(0))
	}
	return strings.Join(parts, ", ")
}

func (l *ExpressionList) Failed() bool     { return l.fail }
func (l *ExpressionList) Type() types.Type { return types.Of(types.Void) }

// FunCall resolves the callee's signature and checks arity, then each
// argument position for an exact or int-to-float-coercible match. The
// configured policy decides whether checking stops at the first mismatched
// position or reports every one. The call's type is the declared return
// type, or Any when the callee is unknown or the arity is wrong.
type FunCall struct {
	name string
	args *ExpressionList
	typ  types.Type
	fail bool
}

var _ Node = (*FunCall)(nil)

func (a *Analyzer) FunCall(name string, args *ExpressionList) *FunCall {
	c := &FunCall{name: name, args: args, typ: types.Of(types.Any)}
	sig, ok := a.Scope.LookupFunction(name)
	if !ok {
		a.Diags.UndeclaredVariable(name)
		c.fail = true
		return c
	}
	if args.Size() != len(sig.Params) {
		a.Diags.WrongParamCount(name, len(sig.Params), args.Size())
		c.fail = true
		return c
	}
	c.typ = sig.Return
	for i, param := range sig.Params {
		arg := args.At(i)
		if arg.Failed() {
			c.fail = true
			continue
		}
		at := arg.Type()
		if types.Matches(param.Type, at) || types.CanCoerce(param.Type, at) {
			continue
		}
		a.Diags.IncompatibleParam(param.Name, param.Type, at)
		c.fail = true
		if a.Config.ParamCheck == ParamCheckFirst {
			break
		}
	}
	return c
}

func (c *FunCall) Render(int) string {
	return c.name + "(" + c.args.Render(0) + ")"
}

func (c *FunCall) Failed() bool     { return c.fail }
func (c *FunCall) Type() types.Type { return c.typ }
