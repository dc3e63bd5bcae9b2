package lambari

import "github.com/hexengraf/lambari/pkg/types"

// Variable resolves a name against the symbol scope at construction time.
// An unknown name yields type Any and a single UndeclaredVariable
// diagnostic; the node still renders its name so the surrounding text stays
// readable.
type Variable struct {
	name string
	typ  types.Type
	fail bool
}

var _ Node = (*Variable)(nil)

func (a *Analyzer) Variable(name string) *Variable {
	v := &Variable{name: name}
	typ, ok := a.Scope.Lookup(name)
	if !ok {
		a.Diags.UndeclaredVariable(name)
		v.typ = types.Of(types.Any)
		v.fail = true
		return v
	}
	v.typ = typ
	return v
}

func (v *Variable) Render(int) string { return v.name }
func (v *Variable) Failed() bool      { return v.fail }
func (v *Variable) Type() types.Type  { return v.typ }

// ArrayIndex is an element access. The name must resolve to an array
// binding and the index expression must be an int; its result type is the
// array's element type.
type ArrayIndex struct {
	name  string
	index Node
	typ   types.Type
	fail  bool
}

var _ Node = (*ArrayIndex)(nil)

func (a *Analyzer) ArrayIndex(name string, index Node) *ArrayIndex {
	n := &ArrayIndex{name: name, index: index, typ: types.Of(types.Any)}
	arr, ok := a.Scope.Lookup(name)
	switch {
	case !ok:
		a.Diags.UndeclaredVariable(name)
		n.fail = true
	case arr.Shape != types.Array:
		a.Diags.NonArrayIndex()
		n.fail = true
	default:
		n.typ = arr.Elem()
	}
	if index.Failed() {
		n.fail = true
	} else if index.Type() != types.Of(types.Int) {
		a.Diags.IncompatibleIndex(types.Of(types.Int), index.Type())
		n.fail = true
	}
	return n
}

func (n *ArrayIndex) Render(int) string {
	return n.name + "[" + n.index.Render(0) + "]"
}
func (n *ArrayIndex) Failed() bool     { return n.fail }
func (n *ArrayIndex) Type() types.Type { return n.typ }

// Address wraps an lvalue and yields its pointer-flavored type. It adds no
// diagnostics of its own; a failed lvalue propagates silently.
type Address struct {
	lvalue Node
	typ    types.Type
	fail   bool
}

var _ Node = (*Address)(nil)

func (a *Analyzer) Address(lvalue Node) *Address {
	return &Address{
		lvalue: lvalue,
		typ:    types.PointerTo(lvalue.Type()),
		fail:   lvalue.Failed(),
	}
}

func (n *Address) Render(int) string { return "&" + n.lvalue.Render(0) }
func (n *Address) Failed() bool      { return n.fail }
func (n *Address) Type() types.Type  { return n.typ }

// Reference wraps an lvalue and yields its reference-flavored type, used by
// later checks and by the renderer only.
type Reference struct {
	lvalue Node
	typ    types.Type
	fail   bool
}

var _ Node = (*Reference)(nil)

func (a *Analyzer) Reference(lvalue Node) *Reference {
	return &Reference{
		lvalue: lvalue,
		typ:    types.ReferenceTo(lvalue.Type()),
		fail:   lvalue.Failed(),
	}
}

func (n *Reference) Render(int) string { return "*" + n.lvalue.Render(0) }
func (n *Reference) Failed() bool      { return n.fail }
func (n *Reference) Type() types.Type  { return n.typ }
