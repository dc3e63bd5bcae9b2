// Package lambari is the semantic core of the lambari compiler front end.
// Every AST node validates itself at construction time against the symbol
// scope and the coercion rules, records semantic errors without aborting,
// and renders itself into target code at a given indentation depth.
package lambari

import (
	"strings"

	"github.com/hexengraf/lambari/pkg/types"
)

// Node is the capability set shared by every AST construct: it renders to
// target text at a nesting depth, reports whether it carries an unrecovered
// semantic error, and reports its static type. Nodes are built bottom-up,
// exactly once, and never mutated after construction except through their
// own builder methods.
type Node interface {
	Render(depth int) string
	Failed() bool
	Type() types.Type
}

const indentUnit = "    "

func indent(depth int) string {
	return strings.Repeat(indentUnit, depth)
}

// renderBody renders a statement node as a braced block whose closing brace
// sits at the given depth. An empty or nil body renders as an empty block.
func renderBody(body Node, depth int) string {
	inner := ""
	if body != nil {
		inner = body.Render(depth + 1)
	}
	if inner != "" {
		inner += "\n"
	}
	return "{\n" + inner + indent(depth) + "}"
}

// inlineStatement renders a statement for use inside a single-line template,
// dropping the trailing semicolon.
func inlineStatement(n Node) string {
	return strings.TrimSuffix(n.Render(0), ";")
}

// Nop is the empty statement. It renders to nothing and carries no type.
type Nop struct{}

var _ Node = Nop{}

func (Nop) Render(int) string { return "" }
func (Nop) Failed() bool      { return false }
func (Nop) Type() types.Type  { return types.Of(types.Void) }
