package lambari

import (
	"strings"

	"github.com/hexengraf/lambari/pkg/types"
)

// Operation is the generic n-ary operator node. Its type defaults to the
// first child's type; every further child is folded through the
// compatibility check: equal types are accepted, an int operand against a
// float accumulator (in either position) is accepted with a coercion marker
// for the renderer, and anything else fails the node with a single
// IncompatibleOperands diagnostic. Once the node carries an error no
// further diagnostics are emitted, but children are still accumulated for
// rendering.
type Operation struct {
	op       types.Operator
	spell    string
	typ      types.Type
	fail     bool
	children []Node
	coerced  []bool
}

var _ Node = (*Operation)(nil)

func (a *Analyzer) Operation(op types.Operator, first Node, rest ...Node) *Operation {
	o := &Operation{op: op, spell: op.Symbol(), typ: first.Type()}
	o.accumulate(a, first)
	for _, child := range rest {
		o.accumulate(a, child)
	}
	return o
}

// TypedOperation overrides the expected type instead of adopting the first
// child's.
func (a *Analyzer) TypedOperation(op types.Operator, typ types.Type, children ...Node) *Operation {
	o := &Operation{op: op, spell: op.Symbol(), typ: typ}
	for _, child := range children {
		o.accumulate(a, child)
	}
	return o
}

func (o *Operation) accumulate(a *Analyzer, child Node) {
	idx := len(o.children)
	o.children = append(o.children, child)
	o.coerced = append(o.coerced, false)
	if child.Failed() {
		o.fail = true
	}
	if o.fail {
		return
	}
	ct := child.Type()
	switch {
	case types.Matches(o.typ, ct):
	case types.CanCoerce(o.typ, ct):
		o.coerced[idx] = true
	case types.CanCoerce(ct, o.typ):
		// the accumulated type widens; earlier int operands now need casts
		for i, prev := range o.children[:idx] {
			if prev.Type() == types.Of(types.Int) {
				o.coerced[i] = true
			}
		}
		o.typ = ct
	default:
		a.Diags.IncompatibleOperands(o.op, o.typ, ct)
		o.typ = types.Of(types.Any)
		o.fail = true
	}
}

func (o *Operation) setType(typ types.Type) {
	o.typ = typ
}

// NeedsCoercion reports whether the renderer will insert a cast for any
// operand.
func (o *Operation) NeedsCoercion() bool {
	for _, c := range o.coerced {
		if c {
			return true
		}
	}
	return false
}

func (o *Operation) renderChild(i int) string {
	text := o.children[i].Render(0)
	if o.coerced[i] {
		return "[" + types.Of(types.Float).String() + "] " + text
	}
	return text
}

func (o *Operation) Render(int) string {
	var b strings.Builder
	b.WriteString("(")
	if len(o.children) == 1 {
		if o.spell != "" {
			b.WriteString(o.spell)
			b.WriteString(" ")
		}
		b.WriteString(o.renderChild(0))
	} else {
		for i := range o.children {
			if i > 0 {
				b.WriteString(" " + o.spell + " ")
			}
			b.WriteString(o.renderChild(i))
		}
	}
	b.WriteString(")")
	return b.String()
}

func (o *Operation) Failed() bool     { return o.fail }
func (o *Operation) Type() types.Type { return o.typ }

// Comparison applies the usual operand compatibility rule but always yields
// a boolean.
func (a *Analyzer) Comparison(op types.Operator, first Node, rest ...Node) *Operation {
	o := a.Operation(op, first, rest...)
	o.setType(types.Of(types.Bool))
	return o
}

// BoolOperation requires boolean operands and yields a boolean.
func (a *Analyzer) BoolOperation(op types.Operator, children ...Node) *Operation {
	return a.TypedOperation(op, types.Of(types.Bool), children...)
}

// Parenthesis is the identity wrapper; it renders with no operator glyph.
func (a *Analyzer) Parenthesis(operand Node) *Operation {
	return a.Operation(types.Par, operand)
}

// UnaryMinus is arithmetic negation, spelled -u in target code.
func (a *Analyzer) UnaryMinus(operand Node) *Operation {
	return a.Operation(types.UnaryMinus, operand)
}

// Cast is an explicit type override. It never fails on operand
// compatibility; it renders the target type in bracket notation before the
// operand.
func (a *Analyzer) Cast(target types.Type, operand Node) *Operation {
	o := a.Operation(types.Cast, operand)
	o.setType(target)
	o.spell = "[" + target.String() + "]"
	return o
}
