package lambari

import "github.com/hexengraf/lambari/pkg/types"

// Constant is a literal leaf. Literals are well-typed by construction, so a
// Constant never fails and never emits a diagnostic.
type Constant struct {
	typ  types.Type
	text string
}

var _ Node = (*Constant)(nil)

func (a *Analyzer) Constant(typ types.Type, text string) *Constant {
	return &Constant{typ: typ, text: text}
}

// Literal wraps a scanner literal as a Constant node.
func (a *Analyzer) Literal(lit types.Literal) *Constant {
	return &Constant{typ: lit.Type, text: lit.Text}
}

func (c *Constant) Render(int) string { return c.text }
func (c *Constant) Failed() bool      { return false }
func (c *Constant) Type() types.Type  { return c.typ }
