package lambari

import (
	"strings"

	"github.com/hexengraf/lambari/pkg/types"
)

type binding struct {
	name string
	init Node
}

// Declaration is a container of zero or more bindings of one type, added
// one at a time as the parser reduces a declaration list. Each binding is
// inserted into the symbol scope; a name already present at the current
// level keeps its original type, emits MultipleDefinition, and is still
// recorded for rendering. An initializer must match the declared type
// exactly; coercion is not applied in declarations.
type Declaration struct {
	an       *Analyzer
	typ      types.Type
	kind     string
	bindings []binding
	fail     bool
}

var _ Node = (*Declaration)(nil)

func (a *Analyzer) Declaration(typ types.Type) *Declaration {
	return &Declaration{an: a, typ: typ, kind: "var"}
}

// SetKind overrides the declaration keyword, reserved for target-specific
// declaration sugar.
func (d *Declaration) SetKind(label string) {
	d.kind = label
}

func (d *Declaration) Add(name string) {
	d.bind(name, nil)
}

func (d *Declaration) AddInit(name string, init Node) {
	d.bind(name, init)
}

func (d *Declaration) AddLiteral(name string, lit types.Literal) {
	d.bind(name, d.an.Literal(lit))
}

func (d *Declaration) bind(name string, init Node) {
	if err := d.an.Scope.Declare(name, d.typ); err != nil {
		d.an.Diags.MultipleDefinition(name)
		d.fail = true
	}
	if init != nil {
		if init.Failed() {
			d.fail = true
		} else if !types.Matches(d.typ, init.Type()) {
			d.an.Diags.IncompatibleAssignment(d.typ, init.Type())
			d.fail = true
		}
	}
	d.bindings = append(d.bindings, binding{name: name, init: init})
}

func (d *Declaration) Render(depth int) string {
	ind := indent(depth)
	lines := make([]string, 0, len(d.bindings))
	for _, b := range d.bindings {
		line := ind + d.typ.String() + " " + b.name
		if b.init != nil {
			line += " = " + b.init.Render(0)
		}
		lines = append(lines, line+";")
	}
	return strings.Join(lines, "\n")
}

func (d *Declaration) Failed() bool     { return d.fail }
func (d *Declaration) Type() types.Type { return d.typ }

// VarDecl is the single-binding declaration, with the same insertion and
// initializer rules as Declaration.
type VarDecl struct {
	typ  types.Type
	name string
	init Node
	fail bool
}

var _ Node = (*VarDecl)(nil)

func (a *Analyzer) VarDecl(typ types.Type, name string, init Node) *VarDecl {
	d := &VarDecl{typ: typ, name: name, init: init}
	if err := a.Scope.Declare(name, typ); err != nil {
		a.Diags.MultipleDefinition(name)
		d.fail = true
	}
	if init != nil {
		if init.Failed() {
			d.fail = true
		} else if !types.Matches(typ, init.Type()) {
			a.Diags.IncompatibleAssignment(typ, init.Type())
			d.fail = true
		}
	}
	return d
}

func (d *VarDecl) Render(depth int) string {
	line := indent(depth) + d.typ.String() + " " + d.name
	if d.init != nil {
		line += " = " + d.init.Render(0)
	}
	return line + ";"
}

func (d *VarDecl) Failed() bool     { return d.fail }
func (d *VarDecl) Type() types.Type { return d.typ }

// ArrayDecl binds an array of the element type. The size expression is
// rendered verbatim; no bounds checking happens at this layer.
type ArrayDecl struct {
	elem types.Type
	name string
	size string
	fail bool
}

var _ Node = (*ArrayDecl)(nil)

func (a *Analyzer) ArrayDecl(elem types.Type, name, size string) *ArrayDecl {
	d := &ArrayDecl{elem: elem, name: name, size: size}
	if err := a.Scope.Declare(name, types.ArrayOf(elem.Prim)); err != nil {
		a.Diags.MultipleDefinition(name)
		d.fail = true
	}
	return d
}

func (d *ArrayDecl) Render(depth int) string {
	return indent(depth) + d.elem.String() + " " + d.name + "[" + d.size + "];"
}

func (d *ArrayDecl) Failed() bool     { return d.fail }
func (d *ArrayDecl) Type() types.Type { return types.ArrayOf(d.elem.Prim) }
