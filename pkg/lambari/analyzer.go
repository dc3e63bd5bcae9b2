package lambari

import (
	"github.com/hexengraf/lambari/pkg/diag"
	"github.com/hexengraf/lambari/pkg/scope"
)

// Analyzer is the validation context threaded through every node
// constructor: the symbol scope, the diagnostic reporter, and the semantic
// configuration. The parser builds nodes through its methods in strict
// lexical order; nothing here is global.
type Analyzer struct {
	Scope  *scope.Table
	Diags  *diag.Reporter
	Config Config
}

func New(table *scope.Table, diags *diag.Reporter) *Analyzer {
	return &Analyzer{
		Scope:  table,
		Diags:  diags,
		Config: DefaultConfig(),
	}
}

// Finish runs the end-of-build checks that no single node can decide on its
// own: every function that was forward-declared but never completed gets a
// DeclaredButNeverDefined diagnostic, in declaration order.
func (a *Analyzer) Finish() {
	for _, name := range a.Scope.Undefined() {
		a.Diags.DeclaredButNeverDefined(name)
	}
}
