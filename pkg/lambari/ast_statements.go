package lambari

import (
	"strings"

	"github.com/hexengraf/lambari/pkg/types"
)

// Assignment is a statement, not a value-producing expression. A failed
// child propagates silently; otherwise the value must match or coerce to
// the target's type.
type Assignment struct {
	target Node
	value  Node
	fail   bool
}

var _ Node = (*Assignment)(nil)

func (a *Analyzer) Assignment(target, value Node) *Assignment {
	s := &Assignment{target: target, value: value}
	if target.Failed() || value.Failed() {
		s.fail = true
		return s
	}
	tt, vt := target.Type(), value.Type()
	if !types.Matches(tt, vt) && !types.CanCoerce(tt, vt) {
		a.Diags.IncompatibleAssignment(tt, vt)
		s.fail = true
	}
	return s
}

func (s *Assignment) Render(depth int) string {
	return indent(depth) + s.target.Render(0) + " = " + s.value.Render(0) + ";"
}

func (s *Assignment) Failed() bool     { return s.fail }
func (s *Assignment) Type() types.Type { return types.Of(types.Void) }

// Block is an ordered statement sequence. It emits no diagnostics of its
// own; per-line errors were already reported, and rendering is never
// blocked by them.
type Block struct {
	lines []Node
}

var _ Node = (*Block)(nil)

func (a *Analyzer) Block() *Block {
	return &Block{}
}

func (b *Block) Add(line Node) {
	b.lines = append(b.lines, line)
}

func (b *Block) Render(depth int) string {
	rendered := make([]string, 0, len(b.lines))
	for _, line := range b.lines {
		text := line.Render(depth)
		if text == "" {
			continue
		}
		rendered = append(rendered, text)
	}
	return strings.Join(rendered, "\n")
}

func (b *Block) Failed() bool {
	for _, line := range b.lines {
		if line.Failed() {
			return true
		}
	}
	return false
}

func (b *Block) Type() types.Type { return types.Of(types.Void) }

// Conditional checks that its condition is boolean; a non-boolean condition
// emits IncompatibleTest unless the condition already failed. The else
// branch is optional and omitted from the rendering when absent.
type Conditional struct {
	condition Node
	accepted  Node
	rejected  Node
	fail      bool
}

var _ Node = (*Conditional)(nil)

func (a *Analyzer) Conditional(condition, accepted, rejected Node) *Conditional {
	c := &Conditional{condition: condition, accepted: accepted, rejected: rejected}
	if condition.Failed() {
		c.fail = true
	} else if condition.Type() != types.Of(types.Bool) {
		a.Diags.IncompatibleTest(condition.Type())
		c.fail = true
	}
	if accepted != nil && accepted.Failed() {
		c.fail = true
	}
	if rejected != nil && rejected.Failed() {
		c.fail = true
	}
	return c
}

func (c *Conditional) Render(depth int) string {
	ind := indent(depth)
	out := ind + "if (" + c.condition.Render(0) + ") " + renderBody(c.accepted, depth)
	if c.rejected != nil {
		out += " else " + renderBody(c.rejected, depth)
	}
	return out
}

func (c *Conditional) Failed() bool     { return c.fail }
func (c *Conditional) Type() types.Type { return types.Of(types.Void) }

// Loop is the counted loop. The test must be boolean under the same rule as
// Conditional; init and update carry no constraint beyond their own
// internal validation and are rendered verbatim inside the template.
type Loop struct {
	init   Node
	test   Node
	update Node
	body   Node
	fail   bool
}

var _ Node = (*Loop)(nil)

func (a *Analyzer) Loop(init, test, update, body Node) *Loop {
	l := &Loop{init: init, test: test, update: update, body: body}
	if test.Failed() {
		l.fail = true
	} else if test.Type() != types.Of(types.Bool) {
		a.Diags.IncompatibleTest(test.Type())
		l.fail = true
	}
	for _, n := range []Node{init, update, body} {
		if n != nil && n.Failed() {
			l.fail = true
		}
	}
	return l
}

func (l *Loop) Render(depth int) string {
	ind := indent(depth)
	return ind + "for (" + inlineStatement(l.init) + "; " + l.test.Render(0) + "; " +
		inlineStatement(l.update) + ") " + renderBody(l.body, depth)
}

func (l *Loop) Failed() bool     { return l.fail }
func (l *Loop) Type() types.Type { return types.Of(types.Void) }

// Return carries its operand's type, or Void when the operand is absent.
// Checking the enclosing function's return type is the function-level
// validator's job, not Return's.
type Return struct {
	operand Node
	fail    bool
}

var _ Node = (*Return)(nil)

func (a *Analyzer) Return(operand Node) *Return {
	r := &Return{operand: operand}
	if operand != nil && operand.Failed() {
		r.fail = true
	}
	return r
}

func (r *Return) Render(depth int) string {
	out := indent(depth) + "return"
	if r.operand != nil {
		out += " " + r.operand.Render(0)
	}
	return out + ";"
}

func (r *Return) Failed() bool { return r.fail }

func (r *Return) Type() types.Type {
	if r.operand == nil {
		return types.Of(types.Void)
	}
	return r.operand.Type()
}
